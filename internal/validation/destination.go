package validation

import (
	"net/url"
	"strings"
)

var blockedSchemes = map[string]bool{
	"javascript": true,
	"data":       true,
	"file":       true,
	"vbscript":   true,
	"about":      true,
	"blob":       true,
}

var allowedSchemes = map[string]bool{
	"http":  true,
	"https": true,
}

type URLValidator struct {
	maxLength       int
	maxBatchSize    int
	allowPrivateIPs bool
	ipValidator     *IPValidator
}

func NewURLValidator(maxLength, maxBatchSize int, allowPrivateIPs bool) *URLValidator {
	return &URLValidator{
		maxLength:       maxLength,
		maxBatchSize:    maxBatchSize,
		allowPrivateIPs: allowPrivateIPs,
		ipValidator:     NewIPValidator(),
	}
}

// ValidateDestination checks that raw is an absolute http(s) URL with a host.
func (v *URLValidator) ValidateDestination(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return ErrEmptyDestination
	}

	if v.maxLength > 0 && len(raw) > v.maxLength {
		return ErrTooLong
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return ErrInvalidFormat
	}

	scheme := strings.ToLower(parsed.Scheme)
	if blockedSchemes[scheme] {
		return ErrUnsafeScheme
	}
	if !allowedSchemes[scheme] || parsed.Host == "" {
		return ErrInvalidFormat
	}

	if !v.allowPrivateIPs {
		if err := v.ipValidator.ValidateHost(parsed.Host); err != nil {
			return err
		}
	}

	return nil
}

func (v *URLValidator) ValidateBatch(destinations []string) error {
	if len(destinations) == 0 {
		return ErrEmptyBatch
	}

	if v.maxBatchSize > 0 && len(destinations) > v.maxBatchSize {
		return ErrBatchTooLarge
	}

	var batchErrors []IndexedError
	for i, d := range destinations {
		if err := v.ValidateDestination(d); err != nil {
			batchErrors = append(batchErrors, IndexedError{Index: i, Err: err})
		}
	}

	if len(batchErrors) > 0 {
		return &BatchValidationError{Errors: batchErrors}
	}
	return nil
}
