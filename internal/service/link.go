package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc/panics"
	"golang.org/x/sync/errgroup"

	"shortlink/internal/domain"
	"shortlink/internal/repository"
	"shortlink/internal/shortener"
)

var (
	ErrInvalidDestination = errors.New("invalid destination")
	ErrCodeSpaceExhausted = errors.New("code space exhausted")
	ErrNotFound           = errors.New("link not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrOwnerRequired      = errors.New("owner id required")
)

// ownerRecentClicks bounds the cross-link click list of an owner report.
const ownerRecentClicks = 20

type Options struct {
	BaseURL           string
	MaxCreateAttempts int
	StoreTimeout      time.Duration
	TaskTimeout       time.Duration
	RecentClicksLimit int
}

type Deps struct {
	Links       LinkStore
	Clicks      ClickStore
	Cache       Cache
	Reports     ReportCache
	Codes       CodeGenerator
	QR          QREncoder
	EventIDs    EventIDEncoder
	Recorder    ClickRecorder
	Validator   URLValidator
	Instruments Instruments
	Logger      *slog.Logger
}

type LinkService struct {
	Deps
	opts  Options
	tasks sync.WaitGroup
	now   func() time.Time
}

func NewLinkService(deps Deps, opts Options) *LinkService {
	if opts.MaxCreateAttempts <= 0 {
		opts.MaxCreateAttempts = 10
	}
	if opts.StoreTimeout <= 0 {
		opts.StoreTimeout = 3 * time.Second
	}
	if opts.TaskTimeout <= 0 {
		opts.TaskTimeout = 5 * time.Second
	}
	if opts.RecentClicksLimit <= 0 {
		opts.RecentClicksLimit = 10
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")

	if deps.Instruments == nil {
		deps.Instruments = noopInstruments{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	return &LinkService{Deps: deps, opts: opts, now: time.Now}
}

// ShortURL is the public URL a code resolves under.
func (s *LinkService) ShortURL(code string) string {
	return s.opts.BaseURL + "/" + code
}

// Create returns the link for destination, minting a new code only when the
// destination has never been shortened.
func (s *LinkService) Create(ctx context.Context, destination, ownerID string) (*domain.ShortLink, error) {
	if err := s.Validator.ValidateDestination(destination); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDestination, err)
	}
	return s.create(ctx, destination, ownerID)
}

// CreateBatch validates every destination up front and then creates them in
// order. A storage failure part-way leaves the earlier links in place.
func (s *LinkService) CreateBatch(ctx context.Context, destinations []string, ownerID string) ([]domain.ShortLink, error) {
	if err := s.Validator.ValidateBatch(destinations); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDestination, err)
	}

	links := make([]domain.ShortLink, 0, len(destinations))
	for i, d := range destinations {
		link, err := s.create(ctx, d, ownerID)
		if err != nil {
			return nil, fmt.Errorf("failed to create link %d: %w", i, err)
		}
		links = append(links, *link)
	}
	return links, nil
}

func (s *LinkService) create(ctx context.Context, destination, ownerID string) (*domain.ShortLink, error) {
	existing, err := s.findByDestination(ctx, destination)
	if err == nil {
		s.Instruments.LinkCreated(true)
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, storageError(err)
	}

	for attempt := 1; attempt <= s.opts.MaxCreateAttempts; attempt++ {
		code, err := s.Codes.Generate()
		if err != nil {
			return nil, fmt.Errorf("failed to generate code: %w", err)
		}

		_, err = s.findByCode(ctx, code)
		if err == nil {
			s.collision(code, attempt)
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, storageError(err)
		}

		link := &domain.ShortLink{
			Code:        code,
			Destination: destination,
			CreatedAt:   s.now().UTC().Truncate(time.Millisecond),
			OwnerID:     ownerID,
			QRPayload:   s.qrPayload(code),
		}

		err = s.insert(ctx, link)
		switch {
		case err == nil:
			s.Cache.Set(code, domain.CacheEntry{
				Destination: link.Destination,
				ClickCount:  0,
				CreatedAt:   link.CreatedAt,
			})
			s.Instruments.LinkCreated(false)
			return link, nil
		case errors.Is(err, repository.ErrDuplicateCode):
			s.collision(code, attempt)
		case errors.Is(err, repository.ErrDuplicateDestination):
			// A concurrent create for the same destination won the insert.
			winner, err := s.findByDestination(ctx, destination)
			if err != nil {
				return nil, storageError(err)
			}
			s.Instruments.LinkCreated(true)
			return winner, nil
		default:
			return nil, storageError(err)
		}
	}

	s.Logger.Error("code space exhausted",
		slog.Int("attempts", s.opts.MaxCreateAttempts),
		slog.String("destination", destination))
	return nil, ErrCodeSpaceExhausted
}

func (s *LinkService) collision(code string, attempt int) {
	s.Instruments.CodeCollision()
	s.Logger.Warn("generated code already taken",
		slog.String("code", code),
		slog.Int("attempt", attempt))
}

func (s *LinkService) qrPayload(code string) string {
	payload, err := s.QR.Encode(s.ShortURL(code))
	if err != nil {
		s.Logger.Warn("failed to encode qr payload",
			slog.String("code", code),
			slog.String("error", err.Error()))
		return ""
	}
	return payload
}

// Resolve looks code up in the cache and then the store. Click accounting
// runs in the background and never affects the returned result.
func (s *LinkService) Resolve(ctx context.Context, code string, client domain.ClientInfo) (*domain.Resolution, error) {
	if !shortener.IsValidCode(code) {
		return nil, ErrNotFound
	}

	start := s.now()

	entry, hit := s.Cache.Get(code)
	s.Instruments.CacheLookup(hit)
	if !hit {
		link, err := s.findByCode(ctx, code)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrNotFound
			}
			return nil, storageError(err)
		}
		entry = domain.CacheEntry{
			Destination: link.Destination,
			ClickCount:  link.ClickCount,
			CreatedAt:   link.CreatedAt,
		}
		s.Cache.Set(code, entry)
	}

	latency := max(0, s.now().Sub(start))
	s.Instruments.LookupLatency(latency)

	s.spawnClickTask(domain.ClickEvent{
		Code:                  code,
		Timestamp:             start.UTC(),
		ClientAddress:         client.Address,
		ClientAgent:           client.Agent,
		RedirectLatencyMillis: latency.Milliseconds(),
	})

	return &domain.Resolution{
		Destination: entry.Destination,
		Latency:     latency,
		CacheHit:    hit,
	}, nil
}

func (s *LinkService) spawnClickTask(event domain.ClickEvent) {
	s.tasks.Add(1)
	go func() {
		defer s.tasks.Done()

		var pc panics.Catcher
		pc.Try(func() { s.recordClick(event) })
		if r := pc.Recovered(); r != nil {
			s.Instruments.ClickTaskFailed("panic")
			s.Logger.Error("click task panicked",
				slog.String("code", event.Code),
				slog.String("error", r.String()))
		}
	}()
}

func (s *LinkService) recordClick(event domain.ClickEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), s.opts.TaskTimeout)
	defer cancel()

	if err := s.Links.IncrementClicks(ctx, event.Code, event.Timestamp); err != nil {
		s.Instruments.ClickTaskFailed("increment")
		s.Logger.Warn("failed to increment click count",
			slog.String("code", event.Code),
			slog.String("error", err.Error()))
	} else if s.Reports != nil {
		s.Reports.Delete(event.Code)
	}
	s.Cache.IncrementClicks(event.Code)
	s.Recorder.Record(event)
}

// Wait blocks until every background click task started so far has finished.
func (s *LinkService) Wait() {
	s.tasks.Wait()
}

func (s *LinkService) Analytics(ctx context.Context, code string) (*domain.AnalyticsReport, error) {
	if !shortener.IsValidCode(code) {
		return nil, ErrNotFound
	}
	if s.Reports != nil {
		if report, ok := s.Reports.Get(code); ok {
			return report, nil
		}
	}

	link, err := s.findByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageError(err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.StoreTimeout)
	defer cancel()

	var (
		summary domain.ClickSummary
		recent  []domain.ClickEvent
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = s.Clicks.ClickSummary(gctx, code)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.Clicks.RecentClicks(gctx, code, s.opts.RecentClicksLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storageError(err)
	}

	report := &domain.AnalyticsReport{
		Code:               link.Code,
		Destination:        link.Destination,
		TotalClicks:        link.ClickCount,
		AvgRedirectLatency: int64(math.Round(summary.AvgLatencyMillis)),
		CreatedAt:          link.CreatedAt,
		LastAccessedAt:     link.LastAccessedAt,
		RecentClicks:       make([]domain.RecentClick, 0, len(recent)),
	}
	for _, e := range recent {
		id, err := s.EventIDs.Encode(e.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to encode click id: %w", err)
		}
		report.RecentClicks = append(report.RecentClicks, domain.RecentClick{
			ID:                    id,
			Timestamp:             e.Timestamp,
			ClientAddress:         e.ClientAddress,
			ClientAgent:           e.ClientAgent,
			RedirectLatencyMillis: e.RedirectLatencyMillis,
		})
	}

	if s.Reports != nil {
		s.Reports.Set(code, report)
	}
	return report, nil
}

// OwnerAnalytics summarises every link of ownerID: totals, the newest clicks
// across all of them and a per-link list capped like ListLinks.
func (s *LinkService) OwnerAnalytics(ctx context.Context, ownerID string) (*domain.OwnerAnalyticsReport, error) {
	if ownerID == "" {
		return nil, ErrOwnerRequired
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.StoreTimeout)
	defer cancel()

	report := &domain.OwnerAnalyticsReport{OwnerID: ownerID}
	var (
		recent []domain.ClickEvent
		links  []domain.ShortLink
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		report.TotalLinks, err = s.Links.CountLinks(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		report.TotalClicks, err = s.Clicks.CountClicks(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		report.TotalLinkClicks, err = s.Links.SumClickCounts(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.Clicks.RecentClicksByOwner(gctx, ownerID, ownerRecentClicks)
		return err
	})
	g.Go(func() error {
		var err error
		links, err = s.Links.ListLinks(gctx, ownerID, repository.MaxListLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storageError(err)
	}

	report.RecentClicks = make([]domain.RecentClick, 0, len(recent))
	for _, e := range recent {
		id, err := s.EventIDs.Encode(e.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to encode click id: %w", err)
		}
		report.RecentClicks = append(report.RecentClicks, domain.RecentClick{
			ID:                    id,
			Code:                  e.Code,
			Timestamp:             e.Timestamp,
			ClientAddress:         e.ClientAddress,
			ClientAgent:           e.ClientAgent,
			RedirectLatencyMillis: e.RedirectLatencyMillis,
		})
	}

	report.Links = make([]domain.LinkSummary, len(links))
	for i, l := range links {
		report.Links[i] = domain.LinkSummary{
			Code:           l.Code,
			ShortURL:       s.ShortURL(l.Code),
			Destination:    l.Destination,
			ClickCount:     l.ClickCount,
			CreatedAt:      l.CreatedAt,
			LastAccessedAt: l.LastAccessedAt,
		}
	}
	return report, nil
}

// Stats counts links and recorded clicks, scoped to ownerID when it is set.
func (s *LinkService) Stats(ctx context.Context, ownerID string) (*domain.Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.StoreTimeout)
	defer cancel()

	stats := &domain.Stats{IsOwnerScoped: ownerID != ""}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.TotalLinks, err = s.Links.CountLinks(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalClicks, err = s.Clicks.CountClicks(gctx, ownerID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storageError(err)
	}

	stats.CacheSize = s.Cache.Len()
	return stats, nil
}

func (s *LinkService) ListLinks(ctx context.Context, ownerID string, limit int) ([]domain.ShortLink, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.StoreTimeout)
	defer cancel()

	links, err := s.Links.ListLinks(ctx, ownerID, limit)
	if err != nil {
		return nil, storageError(err)
	}
	return links, nil
}

func (s *LinkService) findByCode(ctx context.Context, code string) (*domain.ShortLink, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.StoreTimeout)
	defer cancel()
	return s.Links.FindByCode(ctx, code)
}

func (s *LinkService) findByDestination(ctx context.Context, destination string) (*domain.ShortLink, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.StoreTimeout)
	defer cancel()
	return s.Links.FindByDestination(ctx, destination)
}

func (s *LinkService) insert(ctx context.Context, link *domain.ShortLink) error {
	ctx, cancel := context.WithTimeout(ctx, s.opts.StoreTimeout)
	defer cancel()
	return s.Links.Insert(ctx, link)
}

func storageError(err error) error {
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}

type noopInstruments struct{}

func (noopInstruments) CacheLookup(bool)            {}
func (noopInstruments) LookupLatency(time.Duration) {}
func (noopInstruments) LinkCreated(bool)            {}
func (noopInstruments) CodeCollision()              {}
func (noopInstruments) ClickTaskFailed(string)      {}
