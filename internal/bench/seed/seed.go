// Package seed creates links through the batch endpoint so that redirect and
// analytics attacks have codes to hit.
package seed

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"shortlink/internal/domain"
)

const bypassHeader = "X-Rate-Limit-Bypass"

type Options struct {
	BaseURL            string
	Count              int
	BatchSize          int
	BypassSecret       string
	InsecureSkipVerify bool
	Timeout            time.Duration
	Progress           io.Writer
}

// Run seeds opts.Count links and returns their codes in creation order.
func Run(ctx context.Context, opts Options) ([]string, error) {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 100
	}
	if opts.Progress == nil {
		opts.Progress = io.Discard
	}

	numWorkers := runtime.NumCPU() * 2
	fmt.Fprintf(opts.Progress, "Seeding %d links (batch size: %d, workers: %d)...\n", opts.Count, opts.BatchSize, numWorkers)

	client := &http.Client{
		Timeout: opts.Timeout,
		Transport: &http.Transport{
			TLSClientConfig:     &tls.Config{InsecureSkipVerify: opts.InsecureSkipVerify}, //nolint:gosec // self-signed bench targets
			MaxIdleConns:        numWorkers * 2,
			MaxIdleConnsPerHost: numWorkers * 2,
			IdleConnTimeout:     90 * time.Second,
			ForceAttemptHTTP2:   true,
		},
	}

	numBatches := (opts.Count + opts.BatchSize - 1) / opts.BatchSize
	results := make([][]string, numBatches)
	var progress atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)

	for i := range numBatches {
		start := i * opts.BatchSize
		size := min(opts.BatchSize, opts.Count-start)

		g.Go(func() error {
			codes, err := createBatch(gctx, client, opts, start, size)
			if err != nil {
				return fmt.Errorf("failed to create batch at %d: %w", start, err)
			}
			results[i] = codes
			fmt.Fprintf(opts.Progress, "\rProgress: %d/%d", progress.Add(int64(len(codes))), opts.Count)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	codes := make([]string, 0, opts.Count)
	for _, batch := range results {
		codes = append(codes, batch...)
	}

	fmt.Fprintf(opts.Progress, "\nSeeding complete: %d codes\n", len(codes))
	return codes, nil
}

func createBatch(ctx context.Context, client *http.Client, opts Options, start, size int) ([]string, error) {
	destinations := make([]string, size)
	for i := range size {
		destinations[i] = fmt.Sprintf("https://example.com/seed/%d", start+i)
	}

	body, err := json.Marshal(domain.CreateLinkBatchRequest{Destinations: destinations})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, opts.BaseURL+"/api/create/batch", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if opts.BypassSecret != "" {
		req.Header.Set(bypassHeader, opts.BypassSecret)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		var apiErr domain.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, apiErr.Code)
	}

	var result domain.LinkBatchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	codes := make([]string, len(result.Links))
	for i, l := range result.Links {
		codes[i] = l.Code
	}
	return codes, nil
}
