package validation

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDestination    = errors.New("destination is required")
	ErrInvalidFormat       = errors.New("destination must be an absolute http or https url")
	ErrUnsafeScheme        = errors.New("destination scheme not allowed")
	ErrTooLong             = errors.New("destination exceeds maximum length")
	ErrPrivateIPNotAllowed = errors.New("private ip addresses not allowed")
	ErrBatchTooLarge       = errors.New("batch size exceeds maximum")
	ErrEmptyBatch          = errors.New("destinations are required")
)

type BatchValidationError struct {
	Errors []IndexedError
}

type IndexedError struct {
	Index int
	Err   error
}

func (e *BatchValidationError) Error() string {
	return fmt.Sprintf("batch validation failed: %d invalid destination(s)", len(e.Errors))
}

// Unwrap exposes the individual causes to errors.Is.
func (e *BatchValidationError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, ie := range e.Errors {
		errs[i] = ie.Err
	}
	return errs
}
