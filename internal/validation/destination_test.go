package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/validation"
)

func TestURLValidator_ValidateDestination(t *testing.T) {
	v := validation.NewURLValidator(2048, 100, false)

	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		{"valid http", "http://example.com", nil},
		{"valid https", "https://example.org/a", nil},
		{"valid with query", "https://example.com/path?q=1", nil},
		{"valid with fragment", "https://example.com/path#section", nil},
		{"valid with port", "https://example.com:8080/path", nil},
		{"uppercase scheme", "HTTPS://example.com", nil},

		{"empty string", "", validation.ErrEmptyDestination},
		{"whitespace only", "   ", validation.ErrEmptyDestination},

		{"no scheme", "example.com", validation.ErrInvalidFormat},
		{"no host", "http://", validation.ErrInvalidFormat},
		{"relative path", "/just/a/path", validation.ErrInvalidFormat},
		{"ftp scheme", "ftp://example.com", validation.ErrInvalidFormat},
		{"unparseable", "http://[::1", validation.ErrInvalidFormat},

		{"javascript scheme", "javascript:alert(1)", validation.ErrUnsafeScheme},
		{"data scheme", "data:text/html,<script>", validation.ErrUnsafeScheme},
		{"file scheme", "file:///etc/passwd", validation.ErrUnsafeScheme},
		{"vbscript scheme", "vbscript:msgbox(1)", validation.ErrUnsafeScheme},
		{"about scheme", "about:blank", validation.ErrUnsafeScheme},
		{"blob scheme", "blob:http://example.com/uuid", validation.ErrUnsafeScheme},

		{"loopback", "http://127.0.0.1/path", validation.ErrPrivateIPNotAllowed},
		{"private 10.x", "http://10.0.0.1/", validation.ErrPrivateIPNotAllowed},
		{"private 192.168.x", "http://192.168.1.1/", validation.ErrPrivateIPNotAllowed},
		{"ipv6 loopback", "http://[::1]/", validation.ErrPrivateIPNotAllowed},

		{"localhost hostname", "http://localhost/", nil},
		{"internal hostname", "http://internal-server/", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateDestination(tt.url)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestURLValidator_Length(t *testing.T) {
	v := validation.NewURLValidator(100, 100, false)

	require.NoError(t, v.ValidateDestination("https://example.com"))

	long := "https://example.com/" + strings.Repeat("a", 100)
	assert.ErrorIs(t, v.ValidateDestination(long), validation.ErrTooLong)
}

func TestURLValidator_AllowPrivateIPs(t *testing.T) {
	v := validation.NewURLValidator(2048, 100, true)

	for _, u := range []string{
		"http://127.0.0.1/",
		"http://10.0.0.1/",
		"http://192.168.1.1/",
		"http://[::1]/",
	} {
		assert.NoError(t, v.ValidateDestination(u), u)
	}
}

func TestURLValidator_ValidateBatch(t *testing.T) {
	v := validation.NewURLValidator(2048, 3, false)

	t.Run("empty batch", func(t *testing.T) {
		assert.ErrorIs(t, v.ValidateBatch([]string{}), validation.ErrEmptyBatch)
	})

	t.Run("batch too large", func(t *testing.T) {
		err := v.ValidateBatch([]string{
			"https://example.com/1",
			"https://example.com/2",
			"https://example.com/3",
			"https://example.com/4",
		})
		assert.ErrorIs(t, err, validation.ErrBatchTooLarge)
	})

	t.Run("valid batch", func(t *testing.T) {
		assert.NoError(t, v.ValidateBatch([]string{
			"https://example.com/1",
			"https://example.com/2",
			"https://example.com/3",
		}))
	})

	t.Run("batch with invalid destinations", func(t *testing.T) {
		err := v.ValidateBatch([]string{
			"https://example.com/1",
			"javascript:alert(1)",
			"https://example.com/3",
		})

		var batchErr *validation.BatchValidationError
		require.ErrorAs(t, err, &batchErr)
		require.Len(t, batchErr.Errors, 1)
		assert.Equal(t, 1, batchErr.Errors[0].Index)
		assert.ErrorIs(t, err, validation.ErrUnsafeScheme)
	})
}
