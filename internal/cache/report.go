package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"

	"shortlink/internal/domain"
)

// ReportCache memoises analytics reports for a short TTL. A non-positive TTL
// turns it into a no-op.
type ReportCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewReportCache(maxSizePow2 int, ttl time.Duration) (*ReportCache, error) {
	if ttl <= 0 {
		return &ReportCache{}, nil
	}

	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/100) // ~100 bytes per entry estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &ReportCache{cache: cache, ttl: ttl}, nil
}

func (c *ReportCache) Get(code string) (*domain.AnalyticsReport, bool) {
	if c.cache == nil {
		return nil, false
	}
	val, found := c.cache.Get(code)
	if !found {
		return nil, false
	}
	report, ok := val.(*domain.AnalyticsReport)
	return report, ok
}

func (c *ReportCache) Set(code string, report *domain.AnalyticsReport) {
	if c.cache == nil || report == nil {
		return
	}
	cost := int64(len(code)+len(report.Destination)) + int64(len(report.RecentClicks))*64
	c.cache.SetWithTTL(code, report, cost, c.ttl)
}

// Delete drops the report for code so the next read is rebuilt from the store.
func (c *ReportCache) Delete(code string) {
	if c.cache != nil {
		c.cache.Del(code)
	}
}

// Wait blocks until buffered writes are applied.
func (c *ReportCache) Wait() {
	if c.cache != nil {
		c.cache.Wait()
	}
}

func (c *ReportCache) Close() {
	if c.cache != nil {
		c.cache.Close()
	}
}
