package metrics

import "time"

// RequestMetric describes one served request. Route is the registered route
// template, never the raw path, so label cardinality stays bounded.
type RequestMetric struct {
	Method   string
	Route    string
	Status   int
	Duration time.Duration
	// Failed is set when a handler or middleware returned an error instead of
	// writing its own response.
	Failed bool
}

// InfraMetric is a point-in-time snapshot of process and pool state. Pool
// fields stay zero for stores without a connection pool.
type InfraMetric struct {
	Time          time.Time
	PoolAcquired  int
	PoolIdle      int
	PoolTotal     int
	PoolMax       int
	CacheEntries  int
	CacheHits     int64
	CacheMisses   int64
	CacheHitRatio float64
	Goroutines    int
	HeapAllocMB   float64
}
