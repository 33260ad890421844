package service_test

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/analytics"
	"shortlink/internal/cache"
	"shortlink/internal/config"
	"shortlink/internal/domain"
	"shortlink/internal/qrcode"
	"shortlink/internal/repository/memory"
	"shortlink/internal/service"
	"shortlink/internal/shortener"
	"shortlink/internal/validation"
)

type flow struct {
	svc      *service.LinkService
	store    *memory.Store
	cache    *cache.LinkCache
	recorder *analytics.Recorder
	reports  *cache.ReportCache
}

type flowOptions struct {
	capacity int
	ttl      time.Duration
	codes    service.CodeGenerator
	// reportTTL enables the analytics report cache when positive.
	reportTTL time.Duration
}

func newFlow(t *testing.T, opts flowOptions) *flow {
	t.Helper()
	if opts.capacity == 0 {
		opts.capacity = 100
	}
	if opts.ttl == 0 {
		opts.ttl = time.Hour
	}
	if opts.codes == nil {
		opts.codes = shortener.NewGenerator()
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.New()
	linkCache := cache.New(opts.capacity, opts.ttl)
	eventIDs, err := shortener.NewEventIDs()
	require.NoError(t, err)

	recorder := analytics.NewRecorder(
		config.AnalyticsConfig{BufferSize: 1000, FlushThreshold: 1000, FlushInterval: 60_000},
		noopClickInstruments{}, logger, store)
	recorder.Start(t.Context())
	t.Cleanup(recorder.Close)

	reports, err := cache.NewReportCache(20, opts.reportTTL)
	require.NoError(t, err)
	t.Cleanup(reports.Close)

	svc := service.NewLinkService(service.Deps{
		Links:     store,
		Clicks:    store,
		Cache:     linkCache,
		Codes:     opts.codes,
		QR:        qrcode.NewEncoder(64),
		EventIDs:  eventIDs,
		Recorder:  recorder,
		Reports:   reports,
		Validator: validation.NewURLValidator(2048, 100, false),
		Logger:    logger,
	}, service.Options{BaseURL: "https://sho.rt"})

	return &flow{svc: svc, store: store, cache: linkCache, recorder: recorder, reports: reports}
}

type noopClickInstruments struct{}

func (noopClickInstruments) ClicksFlushed(int) {}
func (noopClickInstruments) ClicksDropped(int) {}
func (noopClickInstruments) ClickFlushFailed() {}

type fixedCodes []string

func (f *fixedCodes) Generate() (string, error) {
	code := (*f)[0]
	*f = (*f)[1:]
	return code, nil
}

func TestFlow_CreateThenResolve(t *testing.T) {
	f := newFlow(t, flowOptions{})

	link, err := f.svc.Create(t.Context(), "https://example.com/docs", "")
	require.NoError(t, err)
	assert.True(t, shortener.IsValidCode(link.Code))
	assert.Contains(t, link.QRPayload, "data:image/png;base64,")

	res, err := f.svc.Resolve(t.Context(), link.Code, domain.ClientInfo{Address: "10.0.0.1"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/docs", res.Destination)
	assert.True(t, res.CacheHit)
	f.svc.Wait()
}

func TestFlow_CreateIsIdempotentPerDestination(t *testing.T) {
	f := newFlow(t, flowOptions{})

	first, err := f.svc.Create(t.Context(), "https://example.com/same", "a")
	require.NoError(t, err)
	second, err := f.svc.Create(t.Context(), "https://example.com/same", "b")
	require.NoError(t, err)

	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, "a", second.OwnerID)

	total, err := f.store.CountLinks(t.Context(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestFlow_ConcurrentCreatesOfSameDestination(t *testing.T) {
	f := newFlow(t, flowOptions{})

	const n = 20
	codes := make([]string, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			link, err := f.svc.Create(t.Context(), "https://example.com/race", "")
			if assert.NoError(t, err) {
				codes[i] = link.Code
			}
		}()
	}
	wg.Wait()

	for _, c := range codes {
		assert.Equal(t, codes[0], c)
	}
}

func TestFlow_ConcurrentResolvesCountEveryClick(t *testing.T) {
	f := newFlow(t, flowOptions{})
	link, err := f.svc.Create(t.Context(), "https://example.com/hot", "")
	require.NoError(t, err)

	const k = 50
	var wg sync.WaitGroup
	for range k {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Resolve(t.Context(), link.Code, domain.ClientInfo{})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	f.svc.Wait()
	f.recorder.Close()

	stored, err := f.store.FindByCode(t.Context(), link.Code)
	require.NoError(t, err)
	assert.Equal(t, int64(k), stored.ClickCount)
	assert.NotNil(t, stored.LastAccessedAt)

	entry, ok := f.cache.Get(link.Code)
	require.True(t, ok)
	assert.Equal(t, int64(k), entry.ClickCount)

	summary, err := f.store.ClickSummary(t.Context(), link.Code)
	require.NoError(t, err)
	assert.Equal(t, int64(k), summary.Total)
}

func TestFlow_EvictedEntryIsServedFromStore(t *testing.T) {
	f := newFlow(t, flowOptions{capacity: 1})

	a, err := f.svc.Create(t.Context(), "https://example.com/a", "")
	require.NoError(t, err)
	_, err = f.svc.Create(t.Context(), "https://example.com/b", "")
	require.NoError(t, err)

	res, err := f.svc.Resolve(t.Context(), a.Code, domain.ClientInfo{})
	require.NoError(t, err)
	assert.False(t, res.CacheHit)
	assert.Equal(t, "https://example.com/a", res.Destination)

	res, err = f.svc.Resolve(t.Context(), a.Code, domain.ClientInfo{})
	require.NoError(t, err)
	assert.True(t, res.CacheHit)
	f.svc.Wait()
}

func TestFlow_ExpiredEntryIsServedFromStore(t *testing.T) {
	f := newFlow(t, flowOptions{ttl: 30 * time.Millisecond})

	link, err := f.svc.Create(t.Context(), "https://example.com/ttl", "")
	require.NoError(t, err)

	time.Sleep(80 * time.Millisecond)

	res, err := f.svc.Resolve(t.Context(), link.Code, domain.ClientInfo{})
	require.NoError(t, err)
	assert.False(t, res.CacheHit)
	f.svc.Wait()
}

func TestFlow_SingleClickAnalytics(t *testing.T) {
	codes := fixedCodes{"Ab3dE9fX"}
	f := newFlow(t, flowOptions{codes: &codes})

	link, err := f.svc.Create(t.Context(), "https://example.com/a", "")
	require.NoError(t, err)
	require.Equal(t, "Ab3dE9fX", link.Code)

	res, err := f.svc.Resolve(t.Context(), "Ab3dE9fX", domain.ClientInfo{Address: "203.0.113.7", Agent: "curl/8.0"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a", res.Destination)

	f.svc.Wait()
	f.recorder.Close()

	report, err := f.svc.Analytics(t.Context(), "Ab3dE9fX")
	require.NoError(t, err)
	assert.Equal(t, int64(1), report.TotalClicks)
	assert.NotNil(t, report.LastAccessedAt)
	require.Len(t, report.RecentClicks, 1)
	assert.Equal(t, "203.0.113.7", report.RecentClicks[0].ClientAddress)
	assert.NotEmpty(t, report.RecentClicks[0].ID)
}

func TestFlow_MalformedCodesAreNotFound(t *testing.T) {
	f := newFlow(t, flowOptions{})

	for _, code := range []string{"short1", "########"} {
		_, err := f.svc.Resolve(t.Context(), code, domain.ClientInfo{})
		assert.ErrorIs(t, err, service.ErrNotFound)
	}
}

func TestFlow_StatsAreOwnerScoped(t *testing.T) {
	f := newFlow(t, flowOptions{})

	mine, err := f.svc.Create(t.Context(), "https://example.com/mine", "me")
	require.NoError(t, err)
	_, err = f.svc.Create(t.Context(), "https://example.com/theirs", "them")
	require.NoError(t, err)

	_, err = f.svc.Resolve(t.Context(), mine.Code, domain.ClientInfo{})
	require.NoError(t, err)
	f.svc.Wait()
	f.recorder.Close()

	stats, err := f.svc.Stats(t.Context(), "me")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalLinks)
	assert.Equal(t, int64(1), stats.TotalClicks)
	assert.True(t, stats.IsOwnerScoped)

	all, err := f.svc.Stats(t.Context(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.TotalLinks)
	assert.Equal(t, 2, all.CacheSize)
	assert.False(t, all.IsOwnerScoped)
}

func TestFlow_ClickInvalidatesCachedReport(t *testing.T) {
	f := newFlow(t, flowOptions{reportTTL: time.Minute})

	link, err := f.svc.Create(t.Context(), "https://example.com/report", "")
	require.NoError(t, err)

	before, err := f.svc.Analytics(t.Context(), link.Code)
	require.NoError(t, err)
	assert.Equal(t, int64(0), before.TotalClicks)
	f.reports.Wait()

	_, err = f.svc.Resolve(t.Context(), link.Code, domain.ClientInfo{Address: "192.0.2.9"})
	require.NoError(t, err)
	f.svc.Wait()
	f.recorder.Close()

	after, err := f.svc.Analytics(t.Context(), link.Code)
	require.NoError(t, err)
	assert.Equal(t, int64(1), after.TotalClicks)
	require.Len(t, after.RecentClicks, 1)
	assert.Equal(t, "192.0.2.9", after.RecentClicks[0].ClientAddress)
}

func TestFlow_OwnerAnalytics(t *testing.T) {
	f := newFlow(t, flowOptions{})

	docs, err := f.svc.Create(t.Context(), "https://example.com/docs", "team-a")
	require.NoError(t, err)
	blog, err := f.svc.Create(t.Context(), "https://example.com/blog", "team-a")
	require.NoError(t, err)
	other, err := f.svc.Create(t.Context(), "https://example.com/other", "team-b")
	require.NoError(t, err)

	for _, code := range []string{docs.Code, docs.Code, blog.Code, other.Code} {
		_, err := f.svc.Resolve(t.Context(), code, domain.ClientInfo{Address: "198.51.100.1"})
		require.NoError(t, err)
	}
	f.svc.Wait()
	f.recorder.Close()

	report, err := f.svc.OwnerAnalytics(t.Context(), "team-a")
	require.NoError(t, err)
	assert.Equal(t, "team-a", report.OwnerID)
	assert.Equal(t, int64(2), report.TotalLinks)
	assert.Equal(t, int64(3), report.TotalClicks)
	assert.Equal(t, int64(3), report.TotalLinkClicks)
	require.Len(t, report.RecentClicks, 3)
	for _, c := range report.RecentClicks {
		assert.Contains(t, []string{docs.Code, blog.Code}, c.Code)
		assert.NotEmpty(t, c.ID)
	}
	require.Len(t, report.Links, 2)
	counts := map[string]int64{}
	for _, l := range report.Links {
		counts[l.Code] = l.ClickCount
		assert.Equal(t, "https://sho.rt/"+l.Code, l.ShortURL)
	}
	assert.Equal(t, map[string]int64{docs.Code: 2, blog.Code: 1}, counts)

	empty, err := f.svc.OwnerAnalytics(t.Context(), "team-z")
	require.NoError(t, err)
	assert.Zero(t, empty.TotalLinks)
	assert.Empty(t, empty.RecentClicks)
	assert.Empty(t, empty.Links)
}
