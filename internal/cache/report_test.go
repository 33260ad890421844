package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/cache"
	"shortlink/internal/domain"
)

func TestReportCache_SetThenGet(t *testing.T) {
	c, err := cache.NewReportCache(20, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	report := &domain.AnalyticsReport{Code: "Ab3dE9fX", Destination: "https://example.org/a", TotalClicks: 3}
	c.Set("Ab3dE9fX", report)
	c.Wait()

	got, found := c.Get("Ab3dE9fX")
	require.True(t, found)
	assert.Equal(t, int64(3), got.TotalClicks)
}

func TestReportCache_Missing(t *testing.T) {
	c, err := cache.NewReportCache(20, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	_, found := c.Get("nothere1")
	assert.False(t, found)
}

func TestReportCache_Disabled(t *testing.T) {
	c, err := cache.NewReportCache(20, 0)
	require.NoError(t, err)
	defer c.Close()

	c.Set("Ab3dE9fX", &domain.AnalyticsReport{Code: "Ab3dE9fX"})
	c.Wait()

	_, found := c.Get("Ab3dE9fX")
	assert.False(t, found)
}
