package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"shortlink/internal/middleware"
)

func TestPprofAuth(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		header string
		want   int
	}{
		{name: "open when no secret", want: http.StatusOK},
		{name: "matching secret", secret: "letmein", header: "letmein", want: http.StatusOK},
		{name: "prefix of secret", secret: "letmein", header: "letme", want: http.StatusUnauthorized},
		{name: "missing header", secret: "letmein", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			middleware.RegisterPprof(e.Group("/debug/pprof", middleware.PprofAuth(tt.secret)))

			req := httptest.NewRequest(http.MethodGet, "/debug/pprof/heap", nil)
			if tt.header != "" {
				req.Header.Set("X-Pprof-Secret", tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"unauthorized","code":"UNAUTHORIZED"}`, rec.Body.String())
			}
		})
	}
}

func TestRegisterPprof_Endpoints(t *testing.T) {
	e := echo.New()
	middleware.RegisterPprof(e.Group("/debug/pprof"))

	for _, ep := range []string{"/", "/goroutine", "/allocs", "/threadcreate", "/cmdline"} {
		req := httptest.NewRequest(http.MethodGet, "/debug/pprof"+ep, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, ep)
	}
}
