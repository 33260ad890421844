package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/metrics"
)

func TestRecorder_HTTP(t *testing.T) {
	r := metrics.NewRecorder()

	r.RecordRequest(metrics.RequestMetric{Method: http.MethodGet, Route: "/:code", Status: 302, Duration: 1500 * time.Microsecond})
	r.RecordRequest(metrics.RequestMetric{Method: http.MethodGet, Route: "/:code", Status: 302, Duration: 2 * time.Millisecond})
	r.RecordRequest(metrics.RequestMetric{Method: http.MethodPost, Route: "/api/create", Status: 500, Failed: true})

	expected := `
# HELP shortlink_http_requests_total HTTP requests by method, route and status.
# TYPE shortlink_http_requests_total counter
shortlink_http_requests_total{method="GET",route="/:code",status="302"} 2
shortlink_http_requests_total{method="POST",route="/api/create",status="500"} 1
# HELP shortlink_http_unhandled_errors_total Requests whose error reached the server error handler, by route.
# TYPE shortlink_http_unhandled_errors_total counter
shortlink_http_unhandled_errors_total{route="/api/create"} 1
`
	err := testutil.GatherAndCompare(r.Gatherer(), strings.NewReader(expected),
		"shortlink_http_requests_total", "shortlink_http_unhandled_errors_total")
	assert.NoError(t, err)
}

func TestRecorder_CacheAndClicks(t *testing.T) {
	r := metrics.NewRecorder()

	r.CacheLookup(true)
	r.CacheLookup(true)
	r.CacheLookup(false)
	r.ClicksFlushed(7)
	r.ClicksDropped(2)
	r.CodeCollision()
	r.LinkCreated(false)
	r.LinkCreated(true)
	r.ClickTaskFailed("increment")
	r.LookupLatency(3 * time.Millisecond)

	expected := `
# HELP shortlink_cache_lookups_total Resolution cache lookups by result.
# TYPE shortlink_cache_lookups_total counter
shortlink_cache_lookups_total{result="hit"} 2
shortlink_cache_lookups_total{result="miss"} 1
# HELP shortlink_clicks_dropped_total Click events dropped because the buffer was full.
# TYPE shortlink_clicks_dropped_total counter
shortlink_clicks_dropped_total 2
# HELP shortlink_clicks_flushed_total Click events handed to analytics sinks.
# TYPE shortlink_clicks_flushed_total counter
shortlink_clicks_flushed_total 7
# HELP shortlink_code_collisions_total Generated codes that were already taken.
# TYPE shortlink_code_collisions_total counter
shortlink_code_collisions_total 1
`
	err := testutil.GatherAndCompare(r.Gatherer(), strings.NewReader(expected),
		"shortlink_cache_lookups_total",
		"shortlink_clicks_dropped_total",
		"shortlink_clicks_flushed_total",
		"shortlink_code_collisions_total",
	)
	assert.NoError(t, err)
}

func TestRecorder_InfraGauges(t *testing.T) {
	r := metrics.NewRecorder()

	r.RecordInfra(metrics.InfraMetric{
		CacheEntries:  42,
		CacheHits:     30,
		CacheMisses:   10,
		CacheHitRatio: 0.75,
		PoolMax:       20,
	})

	expected := `
# HELP shortlink_cache_entries Entries currently held by the resolution cache.
# TYPE shortlink_cache_entries gauge
shortlink_cache_entries 42
# HELP shortlink_cache_lookups_observed Lifetime resolution cache lookups by result, as counted by the cache itself.
# TYPE shortlink_cache_lookups_observed gauge
shortlink_cache_lookups_observed{result="hit"} 30
shortlink_cache_lookups_observed{result="miss"} 10
`
	err := testutil.GatherAndCompare(r.Gatherer(), strings.NewReader(expected),
		"shortlink_cache_entries", "shortlink_cache_lookups_observed")
	assert.NoError(t, err)
}

func TestRecorder_Handler(t *testing.T) {
	r := metrics.NewRecorder()
	r.CacheLookup(true)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `shortlink_cache_lookups_total{result="hit"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
