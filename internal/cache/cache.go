package cache

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"shortlink/internal/domain"
)

type entry struct {
	destination string
	createdAt   time.Time
	clicks      atomic.Int64
}

// LinkCache is a bounded LRU of resolved links with a fixed per-entry TTL.
// The underlying list is internally locked, so LinkCache is safe for
// concurrent use.
type LinkCache struct {
	lru    *expirable.LRU[string, *entry]
	hits   atomic.Uint64
	misses atomic.Uint64
}

func New(capacity int, ttl time.Duration) *LinkCache {
	return &LinkCache{
		lru: expirable.NewLRU[string, *entry](max(1, capacity), nil, ttl),
	}
}

func (c *LinkCache) Get(code string) (domain.CacheEntry, bool) {
	e, ok := c.lru.Get(code)
	if !ok {
		c.misses.Add(1)
		return domain.CacheEntry{}, false
	}
	c.hits.Add(1)
	return domain.CacheEntry{
		Destination: e.destination,
		ClickCount:  e.clicks.Load(),
		CreatedAt:   e.createdAt,
	}, true
}

func (c *LinkCache) Set(code string, ce domain.CacheEntry) {
	e := &entry{destination: ce.Destination, createdAt: ce.CreatedAt}
	e.clicks.Store(ce.ClickCount)
	c.lru.Add(code, e)
}

// IncrementClicks bumps the local click count without touching recency or TTL.
func (c *LinkCache) IncrementClicks(code string) {
	if e, ok := c.lru.Peek(code); ok {
		e.clicks.Add(1)
	}
}

func (c *LinkCache) Len() int {
	return c.lru.Len()
}

func (c *LinkCache) Stats() (hits, misses uint64, ratio float64) {
	hits = c.hits.Load()
	misses = c.misses.Load()
	if total := hits + misses; total > 0 {
		ratio = float64(hits) / float64(total)
	}
	return
}
