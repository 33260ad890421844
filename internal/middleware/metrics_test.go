package middleware_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shortlink/internal/metrics"
	"shortlink/internal/middleware"
	"shortlink/internal/middleware/mocks"
)

func serveWithMetrics(t *testing.T, method, route, target string, h echo.HandlerFunc) metrics.RequestMetric {
	t.Helper()

	rec := mocks.NewMockRequestRecorder(t)
	var captured metrics.RequestMetric
	rec.EXPECT().RecordRequest(mock.Anything).
		Run(func(m metrics.RequestMetric) { captured = m }).
		Return().Once()

	e := echo.New()
	e.Use(middleware.Metrics(rec))
	e.Add(method, route, h)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(method, target, nil))

	return captured
}

func TestMetrics_RecordsRouteTemplate(t *testing.T) {
	m := serveWithMetrics(t, http.MethodGet, "/:code", "/Ab3dE9fX", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "https://example.com")
	})

	assert.Equal(t, metrics.RequestMetric{
		Method:   http.MethodGet,
		Route:    "/:code",
		Status:   http.StatusFound,
		Duration: m.Duration,
	}, m)
	assert.GreaterOrEqual(t, m.Duration.Nanoseconds(), int64(0))
}

func TestMetrics_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		handler    echo.HandlerFunc
		wantRoute  string
		wantStatus int
	}{
		{
			name:       "plain error becomes 500",
			target:     "/api/create",
			handler:    func(echo.Context) error { return errors.New("store offline") },
			wantRoute:  "/api/create",
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "wrapped http error carries its status",
			target: "/api/create",
			handler: func(echo.Context) error {
				return fmt.Errorf("bind: %w", echo.NewHTTPError(http.StatusRequestEntityTooLarge, "too big"))
			},
			wantRoute:  "/api/create",
			wantStatus: http.StatusRequestEntityTooLarge,
		},
		{
			name:   "committed response keeps written status",
			target: "/api/create",
			handler: func(c echo.Context) error {
				if err := c.NoContent(http.StatusAccepted); err != nil {
					return err
				}
				return errors.New("late failure")
			},
			wantRoute:  "/api/create",
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "unknown path is collapsed",
			target:     "/api/create/extra/segments",
			wantRoute:  "unmatched",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := tt.handler
			if handler == nil {
				handler = func(c echo.Context) error { return c.NoContent(http.StatusOK) }
			}

			m := serveWithMetrics(t, http.MethodPost, "/api/create", tt.target, handler)

			assert.True(t, m.Failed)
			assert.Equal(t, tt.wantRoute, m.Route)
			assert.Equal(t, tt.wantStatus, m.Status)
		})
	}
}
