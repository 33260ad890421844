package seed_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/bench/seed"
	"shortlink/internal/domain"
)

func TestRun(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/api/create/batch", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-Rate-Limit-Bypass"))

		var req domain.CreateLinkBatchRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		resp := domain.LinkBatchResponse{}
		for _, d := range req.Destinations {
			var n int
			_, _ = fmt.Sscanf(d, "https://example.com/seed/%d", &n)
			resp.Links = append(resp.Links, domain.LinkResponse{Code: fmt.Sprintf("code%04d", n)})
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	codes, err := seed.Run(t.Context(), seed.Options{
		BaseURL:      srv.URL,
		Count:        25,
		BatchSize:    10,
		BypassSecret: "secret",
		Timeout:      time.Second,
	})

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	require.Len(t, codes, 25)
	assert.Equal(t, "code0000", codes[0])
	assert.Equal(t, "code0024", codes[24])
}

func TestRun_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"storage unavailable","code":"STORAGE_UNAVAILABLE"}`))
	}))
	defer srv.Close()

	_, err := seed.Run(t.Context(), seed.Options{BaseURL: srv.URL, Count: 5, Timeout: time.Second})

	require.ErrorContains(t, err, "STORAGE_UNAVAILABLE")
}
