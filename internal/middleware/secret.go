package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
)

// headerSecret reports whether the request carries secret in header. An empty
// secret never matches.
func headerSecret(header, secret string) func(c echo.Context) bool {
	want := []byte(secret)
	return func(c echo.Context) bool {
		if len(want) == 0 {
			return false
		}
		got := c.Request().Header.Get(header)
		return subtle.ConstantTimeCompare([]byte(got), want) == 1
	}
}
