package attack

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"sync/atomic"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const bypassHeader = "X-Rate-Limit-Bypass"

var destinationCounter atomic.Uint64

func baseHeader(bypassSecret string) http.Header {
	header := http.Header{}
	if bypassSecret != "" {
		header.Set(bypassHeader, bypassSecret)
	}
	return header
}

// CreateTargeter posts a never-seen destination on every call so each request
// takes the full create path instead of the dedup shortcut.
func CreateTargeter(baseURL, bypassSecret string) vegeta.Targeter {
	header := baseHeader(bypassSecret)
	header.Set("Content-Type", "application/json")
	url := baseURL + "/api/create"

	return func(t *vegeta.Target) error {
		t.Method = http.MethodPost
		t.URL = url
		t.Header = header
		t.Body = fmt.Appendf(nil, `{"destination":"https://example.com/bench/%d"}`, destinationCounter.Add(1))
		return nil
	}
}

func RedirectTargeter(baseURL string, codes []string, bypassSecret string) vegeta.Targeter {
	header := baseHeader(bypassSecret)

	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.URL = baseURL + "/" + codes[rand.IntN(len(codes))]
		t.Header = header
		return nil
	}
}

func AnalyticsTargeter(baseURL string, codes []string, bypassSecret string) vegeta.Targeter {
	header := baseHeader(bypassSecret)

	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.URL = baseURL + "/api/analytics/" + codes[rand.IntN(len(codes))]
		t.Header = header
		return nil
	}
}

// MixedTargeter sends roughly createRatio of requests to create and the rest
// to redirects over the seeded codes.
func MixedTargeter(baseURL string, codes []string, createRatio float64, bypassSecret string) vegeta.Targeter {
	create := CreateTargeter(baseURL, bypassSecret)
	redirect := RedirectTargeter(baseURL, codes, bypassSecret)

	return func(t *vegeta.Target) error {
		if rand.Float64() < createRatio {
			return create(t)
		}
		return redirect(t)
	}
}
