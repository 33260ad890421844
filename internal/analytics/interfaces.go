package analytics

//go:generate go tool mockery

import (
	"context"

	"shortlink/internal/domain"
)

type ClickSink interface {
	AppendClicks(ctx context.Context, events []domain.ClickEvent) error
}

type Instruments interface {
	ClicksFlushed(n int)
	ClicksDropped(n int)
	ClickFlushFailed()
}

// Publisher is the subset of *nats.Conn used for click fan-out.
type Publisher interface {
	Publish(subject string, data []byte) error
	FlushWithContext(ctx context.Context) error
}
