package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"shortlink/internal/metrics"
)

//go:generate go tool mockery

// unmatchedRoute labels requests the router could not place, so scans of
// random paths do not mint a new series per path.
const unmatchedRoute = "unmatched"

type RequestRecorder interface {
	RecordRequest(m metrics.RequestMetric)
}

// Metrics reports one RequestMetric per request once the handler chain
// returns. Errors are still passed on to the server error handler.
func Metrics(recorder RequestRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			started := time.Now()
			err := next(c)
			recorder.RecordRequest(observe(c, err, time.Since(started)))
			return err
		}
	}
}

func observe(c echo.Context, err error, took time.Duration) metrics.RequestMetric {
	m := metrics.RequestMetric{
		Method:   c.Request().Method,
		Route:    route(c, err),
		Status:   c.Response().Status,
		Duration: took,
		Failed:   err != nil,
	}
	if err != nil && !c.Response().Committed {
		m.Status = pendingStatus(err)
	}
	return m
}

func route(c echo.Context, err error) string {
	if c.Path() == "" || errors.Is(err, echo.ErrNotFound) {
		return unmatchedRoute
	}
	return c.Path()
}

// pendingStatus is the status the error handler will write for err.
func pendingStatus(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
