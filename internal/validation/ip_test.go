package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shortlink/internal/validation"
)

func TestIPValidator_ValidateHost(t *testing.T) {
	v := validation.NewIPValidator()

	allowed := []string{
		"example.com",
		"example.com:8080",
		"localhost",
		"8.8.8.8",
		"8.8.8.8:80",
		"[2001:4860:4860::8888]",
		"[2001:4860:4860::8888]:443",
		"[::ffff:8.8.8.8]",
		"100.128.0.1",
	}
	for _, host := range allowed {
		t.Run("allow "+host, func(t *testing.T) {
			assert.NoError(t, v.ValidateHost(host))
		})
	}

	rejected := []string{
		"127.0.0.1",
		"127.0.0.1:8080",
		"[::1]",
		"[::1]:8080",
		"10.0.0.1",
		"172.16.0.1",
		"172.31.255.255",
		"192.168.1.1",
		"169.254.1.1",
		"100.64.0.1",
		"100.127.255.255",
		"192.0.0.1",
		"192.0.2.1",
		"198.51.100.1",
		"203.0.113.1",
		"0.0.0.0",
		"[::]",
		"224.0.0.1",
		"[::ffff:127.0.0.1]",
		"[::ffff:192.168.1.1]",
	}
	for _, host := range rejected {
		t.Run("reject "+host, func(t *testing.T) {
			assert.ErrorIs(t, v.ValidateHost(host), validation.ErrPrivateIPNotAllowed)
		})
	}
}
