// Package memory is a process-local store with the same uniqueness and
// increment semantics as the SQL stores. Data is lost on restart.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"shortlink/internal/domain"
	"shortlink/internal/repository"
)

type Store struct {
	mu            sync.RWMutex
	links         map[string]*domain.ShortLink
	byDestination map[string]string
	clicks        []domain.ClickEvent
	nextClickID   int64
}

func New() *Store {
	return &Store{
		links:         make(map[string]*domain.ShortLink),
		byDestination: make(map[string]string),
	}
}

func (s *Store) Close() error { return nil }

func (s *Store) FindByCode(ctx context.Context, code string) (*domain.ShortLink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	link, ok := s.links[code]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return clone(link), nil
}

func (s *Store) FindByDestination(ctx context.Context, destination string) (*domain.ShortLink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	code, ok := s.byDestination[destination]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return clone(s.links[code]), nil
}

func (s *Store) Insert(ctx context.Context, link *domain.ShortLink) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.links[link.Code]; ok {
		return repository.ErrDuplicateCode
	}
	if _, ok := s.byDestination[link.Destination]; ok {
		return repository.ErrDuplicateDestination
	}

	s.links[link.Code] = clone(link)
	s.byDestination[link.Destination] = link.Code
	return nil
}

func (s *Store) IncrementClicks(ctx context.Context, code string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	link, ok := s.links[code]
	if !ok {
		return repository.ErrNotFound
	}
	link.ClickCount++
	link.LastAccessedAt = &at
	return nil
}

func (s *Store) ListLinks(ctx context.Context, ownerID string, limit int) ([]domain.ShortLink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	links := make([]domain.ShortLink, 0, len(s.links))
	for _, l := range s.links {
		if ownerID == "" || l.OwnerID == ownerID {
			links = append(links, *clone(l))
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(links, func(a, b domain.ShortLink) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.Code, b.Code)
	})
	return links[:min(len(links), repository.ClampLimit(limit))], nil
}

func (s *Store) CountLinks(ctx context.Context, ownerID string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if ownerID == "" {
		return int64(len(s.links)), nil
	}
	var n int64
	for _, l := range s.links {
		if l.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (s *Store) SumClickCounts(ctx context.Context, ownerID string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, l := range s.links {
		if ownerID == "" || l.OwnerID == ownerID {
			n += l.ClickCount
		}
	}
	return n, nil
}

func (s *Store) AppendClicks(ctx context.Context, events []domain.ClickEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range events {
		s.nextClickID++
		e.ID = s.nextClickID
		e.RedirectLatencyMillis = max(0, e.RedirectLatencyMillis)
		s.clicks = append(s.clicks, e)
	}
	return nil
}

func (s *Store) RecentClicks(ctx context.Context, code string, limit int) ([]domain.ClickEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.recentClicks(func(e domain.ClickEvent) bool { return e.Code == code }, limit), nil
}

// RecentClicksByOwner returns the newest clicks across every link of ownerID.
func (s *Store) RecentClicksByOwner(ctx context.Context, ownerID string, limit int) ([]domain.ClickEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.recentClicks(func(e domain.ClickEvent) bool {
		l, ok := s.links[e.Code]
		return ok && l.OwnerID == ownerID
	}, limit), nil
}

func (s *Store) recentClicks(match func(domain.ClickEvent) bool, limit int) []domain.ClickEvent {
	s.mu.RLock()
	var events []domain.ClickEvent
	for _, e := range s.clicks {
		if match(e) {
			events = append(events, e)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(events, func(a, b domain.ClickEvent) int {
		if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events
}

func (s *Store) ClickSummary(ctx context.Context, code string) (domain.ClickSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.ClickSummary{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum domain.ClickSummary
	var total int64
	for _, e := range s.clicks {
		if e.Code == code {
			sum.Total++
			total += e.RedirectLatencyMillis
		}
	}
	if sum.Total > 0 {
		sum.AvgLatencyMillis = float64(total) / float64(sum.Total)
	}
	return sum, nil
}

func (s *Store) CountClicks(ctx context.Context, ownerID string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if ownerID == "" {
		return int64(len(s.clicks)), nil
	}
	var n int64
	for _, e := range s.clicks {
		if l, ok := s.links[e.Code]; ok && l.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func clone(l *domain.ShortLink) *domain.ShortLink {
	c := *l
	if l.LastAccessedAt != nil {
		t := *l.LastAccessedAt
		c.LastAccessedAt = &t
	}
	return &c
}
