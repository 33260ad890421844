package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"shortlink/internal/domain"
)

const ownerContextKey = "shortlink.owner"

var errInvalidToken = domain.ErrorResponse{Error: "invalid bearer token", Code: "UNAUTHORIZED"}

// Owner verifies an optional HS256 bearer token on /api routes and exposes its
// subject as the request owner. Requests without an Authorization header pass
// through untouched, and redirects never look at it. With an empty secret the
// middleware is a no-op.
func Owner(secret string, logger *slog.Logger) echo.MiddlewareFunc {
	key := []byte(secret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if secret == "" || !strings.HasPrefix(c.Request().URL.Path, "/api/") {
				return next(c)
			}
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			sub, err := subject(parser, key, header)
			if err != nil {
				logger.Warn("rejected bearer token",
					slog.String("ip", c.RealIP()),
					slog.String("error", err.Error()))
				return c.JSON(http.StatusUnauthorized, errInvalidToken)
			}

			c.Set(ownerContextKey, sub)
			return next(c)
		}
	}
}

func subject(parser *jwt.Parser, key []byte, header string) (string, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return "", errors.New("authorization header is not a bearer token")
	}

	token, err := parser.Parse(raw, func(*jwt.Token) (any, error) { return key, nil })
	if err != nil {
		return "", err
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("token has no subject")
	}
	return sub, nil
}

// OwnerFrom returns the owner set by a verified token, if any.
func OwnerFrom(c echo.Context) (string, bool) {
	owner, ok := c.Get(ownerContextKey).(string)
	return owner, ok && owner != ""
}
