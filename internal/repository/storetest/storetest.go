// Package storetest holds behaviour checks shared by every link store.
package storetest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/domain"
	"shortlink/internal/repository"
)

type Store interface {
	FindByCode(ctx context.Context, code string) (*domain.ShortLink, error)
	FindByDestination(ctx context.Context, destination string) (*domain.ShortLink, error)
	Insert(ctx context.Context, link *domain.ShortLink) error
	IncrementClicks(ctx context.Context, code string, at time.Time) error
	ListLinks(ctx context.Context, ownerID string, limit int) ([]domain.ShortLink, error)
	CountLinks(ctx context.Context, ownerID string) (int64, error)
	SumClickCounts(ctx context.Context, ownerID string) (int64, error)
	AppendClicks(ctx context.Context, events []domain.ClickEvent) error
	RecentClicks(ctx context.Context, code string, limit int) ([]domain.ClickEvent, error)
	RecentClicksByOwner(ctx context.Context, ownerID string, limit int) ([]domain.ClickEvent, error)
	ClickSummary(ctx context.Context, code string) (domain.ClickSummary, error)
	CountClicks(ctx context.Context, ownerID string) (int64, error)
}

// Run exercises store semantics against a fresh store from newStore for each
// subtest.
func Run(t *testing.T, newStore func(t *testing.T) Store) {
	t.Run("insert and find", func(t *testing.T) { testInsertAndFind(t, newStore(t)) })
	t.Run("not found", func(t *testing.T) { testNotFound(t, newStore(t)) })
	t.Run("unique code", func(t *testing.T) { testUniqueCode(t, newStore(t)) })
	t.Run("unique destination", func(t *testing.T) { testUniqueDestination(t, newStore(t)) })
	t.Run("concurrent increments", func(t *testing.T) { testConcurrentIncrements(t, newStore(t)) })
	t.Run("clicks", func(t *testing.T) { testClicks(t, newStore(t)) })
	t.Run("owner scoping", func(t *testing.T) { testOwnerScoping(t, newStore(t)) })
	t.Run("owner clicks", func(t *testing.T) { testOwnerClicks(t, newStore(t)) })
}

func newLink(code, destination, owner string, createdAt time.Time) *domain.ShortLink {
	return &domain.ShortLink{
		Code:        code,
		Destination: destination,
		CreatedAt:   createdAt,
		OwnerID:     owner,
		QRPayload:   "data:image/png;base64,AAAA",
	}
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func testInsertAndFind(t *testing.T, s Store) {
	ctx := context.Background()
	created := now()

	require.NoError(t, s.Insert(ctx, newLink("Ab3dE9fX", "https://example.org/a", "", created)))

	byCode, err := s.FindByCode(ctx, "Ab3dE9fX")
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/a", byCode.Destination)
	assert.Equal(t, "data:image/png;base64,AAAA", byCode.QRPayload)
	assert.Zero(t, byCode.ClickCount)
	assert.Nil(t, byCode.LastAccessedAt)
	assert.Empty(t, byCode.OwnerID)
	assert.WithinDuration(t, created, byCode.CreatedAt, time.Millisecond)

	byDest, err := s.FindByDestination(ctx, "https://example.org/a")
	require.NoError(t, err)
	assert.Equal(t, "Ab3dE9fX", byDest.Code)
}

func testNotFound(t *testing.T, s Store) {
	ctx := context.Background()

	_, err := s.FindByCode(ctx, "missing1")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = s.FindByDestination(ctx, "https://example.org/missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = s.IncrementClicks(ctx, "missing1", now())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func testUniqueCode(t *testing.T, s Store) {
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, newLink("dupCode1", "https://example.org/1", "", now())))
	err := s.Insert(ctx, newLink("dupCode1", "https://example.org/2", "", now()))
	assert.ErrorIs(t, err, repository.ErrDuplicateCode)

	link, err := s.FindByCode(ctx, "dupCode1")
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/1", link.Destination)
}

func testUniqueDestination(t *testing.T, s Store) {
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, newLink("first001", "https://example.org/same", "", now())))
	err := s.Insert(ctx, newLink("second01", "https://example.org/same", "", now()))
	assert.ErrorIs(t, err, repository.ErrDuplicateDestination)

	_, err = s.FindByCode(ctx, "second01")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func testConcurrentIncrements(t *testing.T, s Store) {
	ctx := context.Background()
	require.NoError(t, s.Insert(ctx, newLink("hotcode1", "https://example.org/hot", "", now())))

	const k = 50
	var wg sync.WaitGroup
	errs := make(chan error, k)
	for range k {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.IncrementClicks(ctx, "hotcode1", time.Now())
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	link, err := s.FindByCode(ctx, "hotcode1")
	require.NoError(t, err)
	assert.Equal(t, int64(k), link.ClickCount)
	assert.NotNil(t, link.LastAccessedAt)
}

func testClicks(t *testing.T, s Store) {
	ctx := context.Background()
	require.NoError(t, s.Insert(ctx, newLink("clicked1", "https://example.org/c", "", now())))

	base := now().Add(-time.Hour)
	events := make([]domain.ClickEvent, 0, 12)
	for i := range 12 {
		events = append(events, domain.ClickEvent{
			Code:                  "clicked1",
			Timestamp:             base.Add(time.Duration(i) * time.Minute),
			ClientAddress:         fmt.Sprintf("203.0.113.%d", i),
			ClientAgent:           "test-agent",
			RedirectLatencyMillis: int64(i),
		})
	}
	events = append(events, domain.ClickEvent{Code: "other001", Timestamp: base, RedirectLatencyMillis: 100})
	require.NoError(t, s.AppendClicks(ctx, events))
	require.NoError(t, s.AppendClicks(ctx, nil))

	recent, err := s.RecentClicks(ctx, "clicked1", 10)
	require.NoError(t, err)
	require.Len(t, recent, 10)
	assert.Equal(t, "203.0.113.11", recent[0].ClientAddress)
	assert.Equal(t, "203.0.113.2", recent[9].ClientAddress)
	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i].Timestamp.After(recent[i-1].Timestamp), "clicks must be newest first")
		assert.NotZero(t, recent[i].ID)
	}

	summary, err := s.ClickSummary(ctx, "clicked1")
	require.NoError(t, err)
	assert.Equal(t, int64(12), summary.Total)
	assert.InDelta(t, 5.5, summary.AvgLatencyMillis, 0.001)

	empty, err := s.ClickSummary(ctx, "nothing1")
	require.NoError(t, err)
	assert.Zero(t, empty.Total)
	assert.Zero(t, empty.AvgLatencyMillis)

	total, err := s.CountClicks(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(13), total)
}

func testOwnerScoping(t *testing.T, s Store) {
	ctx := context.Background()
	base := now()

	require.NoError(t, s.Insert(ctx, newLink("alice001", "https://example.org/a1", "alice", base.Add(-2*time.Second))))
	require.NoError(t, s.Insert(ctx, newLink("alice002", "https://example.org/a2", "alice", base.Add(-time.Second))))
	require.NoError(t, s.Insert(ctx, newLink("bob00001", "https://example.org/b1", "bob", base)))
	require.NoError(t, s.Insert(ctx, newLink("anon0001", "https://example.org/n1", "", base)))

	require.NoError(t, s.AppendClicks(ctx, []domain.ClickEvent{
		{Code: "alice001", Timestamp: base},
		{Code: "alice002", Timestamp: base},
		{Code: "bob00001", Timestamp: base},
	}))

	all, err := s.CountLinks(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(4), all)

	alice, err := s.CountLinks(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(2), alice)

	aliceClicks, err := s.CountClicks(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(2), aliceClicks)

	links, err := s.ListLinks(ctx, "alice", 10)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "alice002", links[0].Code)
	assert.Equal(t, "alice001", links[1].Code)
	assert.Equal(t, "alice", links[0].OwnerID)

	limited, err := s.ListLinks(ctx, "", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func testOwnerClicks(t *testing.T, s Store) {
	ctx := context.Background()
	base := now().Add(-time.Hour)

	require.NoError(t, s.Insert(ctx, newLink("carol001", "https://example.org/c1", "carol", base)))
	require.NoError(t, s.Insert(ctx, newLink("carol002", "https://example.org/c2", "carol", base)))
	require.NoError(t, s.Insert(ctx, newLink("dave0001", "https://example.org/d1", "dave", base)))

	for range 3 {
		require.NoError(t, s.IncrementClicks(ctx, "carol001", base))
	}
	require.NoError(t, s.IncrementClicks(ctx, "carol002", base))
	require.NoError(t, s.IncrementClicks(ctx, "dave0001", base))

	require.NoError(t, s.AppendClicks(ctx, []domain.ClickEvent{
		{Code: "carol001", Timestamp: base.Add(1 * time.Minute), ClientAddress: "203.0.113.1"},
		{Code: "dave0001", Timestamp: base.Add(2 * time.Minute), ClientAddress: "203.0.113.9"},
		{Code: "carol002", Timestamp: base.Add(3 * time.Minute), ClientAddress: "203.0.113.2"},
		{Code: "carol001", Timestamp: base.Add(4 * time.Minute), ClientAddress: "203.0.113.3"},
	}))

	recent, err := s.RecentClicksByOwner(ctx, "carol", 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "203.0.113.3", recent[0].ClientAddress)
	assert.Equal(t, "carol001", recent[0].Code)
	assert.Equal(t, "203.0.113.2", recent[1].ClientAddress)
	assert.Equal(t, "carol002", recent[1].Code)
	assert.Equal(t, "203.0.113.1", recent[2].ClientAddress)

	limited, err := s.RecentClicksByOwner(ctx, "carol", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	none, err := s.RecentClicksByOwner(ctx, "erin", 10)
	require.NoError(t, err)
	assert.Empty(t, none)

	carol, err := s.SumClickCounts(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, int64(4), carol)

	all, err := s.SumClickCounts(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(5), all)

	nobody, err := s.SumClickCounts(ctx, "erin")
	require.NoError(t, err)
	assert.Zero(t, nobody)
}
