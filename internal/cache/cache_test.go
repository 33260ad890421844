package cache_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/cache"
	"shortlink/internal/domain"
)

func entryFor(dest string) domain.CacheEntry {
	return domain.CacheEntry{Destination: dest, CreatedAt: time.Now()}
}

func TestGet_MissingKey(t *testing.T) {
	c := cache.New(10, time.Hour)

	val, found := c.Get("nonexistent")
	assert.False(t, found)
	assert.Empty(t, val.Destination)
}

func TestSetThenGet(t *testing.T) {
	c := cache.New(10, time.Hour)

	c.Set("Ab3dE9fX", entryFor("https://example.com/very/long/path"))

	val, found := c.Get("Ab3dE9fX")
	require.True(t, found)
	assert.Equal(t, "https://example.com/very/long/path", val.Destination)
	assert.Zero(t, val.ClickCount)
}

func TestSet_UpdateExisting(t *testing.T) {
	c := cache.New(10, time.Hour)

	c.Set("abc12345", entryFor("https://example.com/first"))
	c.Set("abc12345", entryFor("https://example.com/second"))

	val, found := c.Get("abc12345")
	require.True(t, found)
	assert.Equal(t, "https://example.com/second", val.Destination)
	assert.Equal(t, 1, c.Len())
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := cache.New(3, time.Hour)

	c.Set("code0001", entryFor("https://example.com/1"))
	c.Set("code0002", entryFor("https://example.com/2"))
	c.Set("code0003", entryFor("https://example.com/3"))

	// Touch the oldest so code0002 becomes the eviction candidate.
	_, found := c.Get("code0001")
	require.True(t, found)

	c.Set("code0004", entryFor("https://example.com/4"))

	_, found = c.Get("code0002")
	assert.False(t, found)
	for _, code := range []string{"code0001", "code0003", "code0004"} {
		_, found := c.Get(code)
		assert.True(t, found, "code %s should still be cached", code)
	}
	assert.Equal(t, 3, c.Len())
}

func TestCapacityBound(t *testing.T) {
	c := cache.New(100, time.Hour)

	for i := range 250 {
		c.Set(fmt.Sprintf("code%04d", i), entryFor("https://example.com"))
	}
	assert.Equal(t, 100, c.Len())

	_, found := c.Get("code0000")
	assert.False(t, found)
	_, found = c.Get("code0249")
	assert.True(t, found)
}

func TestTTLExpiry(t *testing.T) {
	c := cache.New(10, 50*time.Millisecond)

	c.Set("ttlcode1", entryFor("https://example.com"))
	_, found := c.Get("ttlcode1")
	require.True(t, found)

	time.Sleep(120 * time.Millisecond)

	_, found = c.Get("ttlcode1")
	assert.False(t, found)
}

func TestIncrementClicks(t *testing.T) {
	c := cache.New(10, time.Hour)
	c.Set("clicks01", domain.CacheEntry{Destination: "https://example.com", ClickCount: 5})

	c.IncrementClicks("clicks01")
	c.IncrementClicks("clicks01")
	c.IncrementClicks("missing1")

	val, found := c.Get("clicks01")
	require.True(t, found)
	assert.Equal(t, int64(7), val.ClickCount)
	assert.Equal(t, 1, c.Len())
}

func TestIncrementClicks_DoesNotRefreshRecency(t *testing.T) {
	c := cache.New(2, time.Hour)
	c.Set("older001", entryFor("https://example.com/1"))
	c.Set("newer001", entryFor("https://example.com/2"))

	c.IncrementClicks("older001")
	c.Set("newest01", entryFor("https://example.com/3"))

	_, found := c.Get("older001")
	assert.False(t, found)
}

func TestIncrementClicks_Concurrent(t *testing.T) {
	c := cache.New(10, time.Hour)
	c.Set("concurr1", entryFor("https://example.com"))

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.IncrementClicks("concurr1")
		}()
	}
	wg.Wait()

	val, _ := c.Get("concurr1")
	assert.Equal(t, int64(100), val.ClickCount)
}

func TestStats_AfterOperations(t *testing.T) {
	c := cache.New(10, time.Hour)

	hits, misses, _ := c.Stats()
	assert.Equal(t, uint64(0), hits)
	assert.Equal(t, uint64(0), misses)

	c.Get("nonexistent")

	_, misses, _ = c.Stats()
	assert.Equal(t, uint64(1), misses)

	c.Set("key00001", entryFor("value1"))
	c.Get("key00001")

	hits, _, ratio := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, 0.5, ratio)
}
