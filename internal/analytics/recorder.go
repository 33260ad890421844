// Package analytics buffers click events off the redirect path and writes
// them to one or more sinks in batches. Delivery is best-effort: events are
// dropped when the buffer is full and lost if a sink write fails.
package analytics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"shortlink/internal/config"
	"shortlink/internal/domain"
)

type Recorder struct {
	sinks        []ClickSink
	instruments  Instruments
	logger       *slog.Logger
	cfg          config.AnalyticsConfig
	clickCh      chan domain.ClickEvent
	wg           sync.WaitGroup
	startOnce    sync.Once
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewRecorder(cfg config.AnalyticsConfig, instruments Instruments, logger *slog.Logger, sinks ...ClickSink) *Recorder {
	cfg.BufferSize = max(1, cfg.BufferSize)
	cfg.FlushThreshold = max(1, cfg.FlushThreshold)
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = 1000
	}

	return &Recorder{
		sinks:       sinks,
		instruments: instruments,
		logger:      logger,
		cfg:         cfg,
		clickCh:     make(chan domain.ClickEvent, cfg.BufferSize),
		shutdownCh:  make(chan struct{}),
	}
}

// Record enqueues e without blocking.
func (r *Recorder) Record(e domain.ClickEvent) {
	select {
	case r.clickCh <- e:
	default:
		r.instruments.ClicksDropped(1)
		r.logger.Warn("click buffer full, dropping event", slog.String("code", e.Code))
	}
}

func (r *Recorder) Start(ctx context.Context) {
	r.startOnce.Do(func() {
		r.wg.Add(1)
		go r.run(ctx, time.Duration(r.cfg.FlushInterval)*time.Millisecond)

		r.logger.Info("click recorder started",
			slog.Int("buffer_size", r.cfg.BufferSize),
			slog.Int("flush_interval_ms", r.cfg.FlushInterval),
			slog.Int("sinks", len(r.sinks)))
	})
}

// Close flushes whatever is buffered and stops the flush loop. Events recorded
// after Close are dropped or left unflushed.
func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

func (r *Recorder) run(ctx context.Context, interval time.Duration) {
	defer r.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	batch := make([]domain.ClickEvent, 0, r.cfg.FlushThreshold)

	for {
		select {
		case <-ctx.Done():
			r.drainAndFlush(batch)
			return
		case <-r.shutdownCh:
			r.drainAndFlush(batch)
			return
		case e := <-r.clickCh:
			batch = append(batch, e)
			if len(batch) >= r.cfg.FlushThreshold {
				r.write(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				r.write(ctx, batch)
				batch = batch[:0]
			}
		}
	}
}

func (r *Recorder) drainAndFlush(batch []domain.ClickEvent) {
	for {
		select {
		case e := <-r.clickCh:
			batch = append(batch, e)
		default:
			if len(batch) > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				r.write(ctx, batch)
				cancel()
			}
			return
		}
	}
}

func (r *Recorder) write(ctx context.Context, batch []domain.ClickEvent) {
	for _, sink := range r.sinks {
		if err := sink.AppendClicks(ctx, batch); err != nil {
			r.instruments.ClickFlushFailed()
			r.logger.Error("failed to write click batch",
				slog.Int("size", len(batch)),
				slog.String("error", err.Error()))
		}
	}
	r.instruments.ClicksFlushed(len(batch))
}
