package handler

//go:generate go tool mockery

import (
	"context"

	"shortlink/internal/domain"
)

type LinkService interface {
	Create(ctx context.Context, destination, ownerID string) (*domain.ShortLink, error)
	CreateBatch(ctx context.Context, destinations []string, ownerID string) ([]domain.ShortLink, error)
	Resolve(ctx context.Context, code string, client domain.ClientInfo) (*domain.Resolution, error)
	Analytics(ctx context.Context, code string) (*domain.AnalyticsReport, error)
	OwnerAnalytics(ctx context.Context, ownerID string) (*domain.OwnerAnalyticsReport, error)
	Stats(ctx context.Context, ownerID string) (*domain.Stats, error)
	ListLinks(ctx context.Context, ownerID string, limit int) ([]domain.ShortLink, error)
	ShortURL(code string) string
}
