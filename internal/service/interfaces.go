package service

//go:generate go tool mockery

import (
	"context"
	"time"

	"shortlink/internal/domain"
)

type LinkStore interface {
	FindByCode(ctx context.Context, code string) (*domain.ShortLink, error)
	FindByDestination(ctx context.Context, destination string) (*domain.ShortLink, error)
	Insert(ctx context.Context, link *domain.ShortLink) error
	IncrementClicks(ctx context.Context, code string, at time.Time) error
	ListLinks(ctx context.Context, ownerID string, limit int) ([]domain.ShortLink, error)
	CountLinks(ctx context.Context, ownerID string) (int64, error)
	SumClickCounts(ctx context.Context, ownerID string) (int64, error)
}

type ClickStore interface {
	RecentClicks(ctx context.Context, code string, limit int) ([]domain.ClickEvent, error)
	RecentClicksByOwner(ctx context.Context, ownerID string, limit int) ([]domain.ClickEvent, error)
	ClickSummary(ctx context.Context, code string) (domain.ClickSummary, error)
	CountClicks(ctx context.Context, ownerID string) (int64, error)
}

type Cache interface {
	Get(code string) (domain.CacheEntry, bool)
	Set(code string, entry domain.CacheEntry)
	IncrementClicks(code string)
	Len() int
}

type ReportCache interface {
	Get(code string) (*domain.AnalyticsReport, bool)
	Set(code string, report *domain.AnalyticsReport)
	Delete(code string)
}

type CodeGenerator interface {
	Generate() (string, error)
}

type QREncoder interface {
	Encode(content string) (string, error)
}

type EventIDEncoder interface {
	Encode(id int64) (string, error)
}

type ClickRecorder interface {
	Record(event domain.ClickEvent)
}

type URLValidator interface {
	ValidateDestination(destination string) error
	ValidateBatch(destinations []string) error
}

type Instruments interface {
	CacheLookup(hit bool)
	LookupLatency(d time.Duration)
	LinkCreated(dedup bool)
	CodeCollision()
	ClickTaskFailed(step string)
}
