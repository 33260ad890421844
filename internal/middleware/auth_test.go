package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/middleware"
)

const jwtSecret = "test-signing-key"

func signed(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func ownerEcho(secret string) *echo.Echo {
	e := echo.New()
	e.Use(middleware.Owner(secret, slog.New(slog.NewTextHandler(io.Discard, nil))))
	e.GET("/api/stats", func(c echo.Context) error {
		owner, ok := middleware.OwnerFrom(c)
		if !ok {
			return c.String(http.StatusOK, "anonymous")
		}
		return c.String(http.StatusOK, owner)
	})
	e.GET("/:code", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "https://example.com/"+c.Param("code"))
	})
	return e
}

func TestOwner(t *testing.T) {
	valid := signed(t, jwt.SigningMethodHS256, []byte(jwtSecret), jwt.MapClaims{
		"sub": "team-42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	expired := signed(t, jwt.SigningMethodHS256, []byte(jwtSecret), jwt.MapClaims{
		"sub": "team-42",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	wrongKey := signed(t, jwt.SigningMethodHS256, []byte("other-key"), jwt.MapClaims{"sub": "team-42"})
	noSubject := signed(t, jwt.SigningMethodHS256, []byte(jwtSecret), jwt.MapClaims{"scope": "read"})
	wrongAlg := signed(t, jwt.SigningMethodHS512, []byte(jwtSecret), jwt.MapClaims{"sub": "team-42"})

	tests := []struct {
		name       string
		secret     string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "no header", secret: jwtSecret, wantStatus: http.StatusOK, wantBody: "anonymous"},
		{name: "valid token", secret: jwtSecret, header: "Bearer " + valid, wantStatus: http.StatusOK, wantBody: "team-42"},
		{name: "disabled ignores header", secret: "", header: "Bearer garbage", wantStatus: http.StatusOK, wantBody: "anonymous"},
		{name: "expired", secret: jwtSecret, header: "Bearer " + expired, wantStatus: http.StatusUnauthorized},
		{name: "wrong key", secret: jwtSecret, header: "Bearer " + wrongKey, wantStatus: http.StatusUnauthorized},
		{name: "missing subject", secret: jwtSecret, header: "Bearer " + noSubject, wantStatus: http.StatusUnauthorized},
		{name: "unexpected algorithm", secret: jwtSecret, header: "Bearer " + wrongAlg, wantStatus: http.StatusUnauthorized},
		{name: "basic auth", secret: jwtSecret, header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			ownerEcho(tt.secret).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"invalid bearer token","code":"UNAUTHORIZED"}`, rec.Body.String())
			} else {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestOwner_RedirectsIgnoreAuthorization(t *testing.T) {
	for _, header := range []string{"Bearer garbage", "Basic dXNlcjpwYXNz"} {
		req := httptest.NewRequest(http.MethodGet, "/Ab3dE9fX", nil)
		req.Header.Set(echo.HeaderAuthorization, header)
		rec := httptest.NewRecorder()
		ownerEcho(jwtSecret).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code, header)
		assert.Equal(t, "https://example.com/Ab3dE9fX", rec.Header().Get(echo.HeaderLocation))
	}
}
