package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shortlink"

// Recorder owns every Prometheus instrument the service exports. It is safe
// for concurrent use.
type Recorder struct {
	registry *prometheus.Registry

	requests      *prometheus.CounterVec
	requestTime   *prometheus.HistogramVec
	requestErrors *prometheus.CounterVec

	cacheLookups  *prometheus.CounterVec
	lookupLatency prometheus.Histogram
	linksCreated  *prometheus.CounterVec
	collisions    prometheus.Counter
	clicksFlushed prometheus.Counter
	clicksDropped prometheus.Counter
	flushFailures prometheus.Counter
	taskFailures  *prometheus.CounterVec

	poolConns     *prometheus.GaugeVec
	cacheEntries  prometheus.Gauge
	cacheResults  *prometheus.GaugeVec
	cacheHitRatio prometheus.Gauge
	goroutines    prometheus.Gauge
	heapAllocMB   prometheus.Gauge
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Recorder{
		registry: reg,
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestTime: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		requestErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "http_unhandled_errors_total",
			Help: "Requests whose error reached the server error handler, by route.",
		}, []string{"route"}),
		cacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "cache_lookups_total",
			Help: "Resolution cache lookups by result.",
		}, []string{"result"}),
		lookupLatency: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "redirect_lookup_seconds",
			Help:    "Time spent resolving a code through cache and store.",
			Buckets: []float64{.0001, .0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}),
		linksCreated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "links_created_total",
			Help: "Create requests by outcome (new or dedup).",
		}, []string{"outcome"}),
		collisions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "code_collisions_total",
			Help: "Generated codes that were already taken.",
		}),
		clicksFlushed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "clicks_flushed_total",
			Help: "Click events handed to analytics sinks.",
		}),
		clicksDropped: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "clicks_dropped_total",
			Help: "Click events dropped because the buffer was full.",
		}),
		flushFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "click_flush_failures_total",
			Help: "Failed click batch writes.",
		}),
		taskFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "click_task_failures_total",
			Help: "Post-redirect background steps that failed.",
		}, []string{"step"}),
		poolConns: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "db_pool_connections",
			Help: "Database pool connections by state.",
		}, []string{"state"}),
		cacheEntries: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "cache_entries",
			Help: "Entries currently held by the resolution cache.",
		}),
		cacheResults: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "cache_lookups_observed",
			Help: "Lifetime resolution cache lookups by result, as counted by the cache itself.",
		}, []string{"result"}),
		cacheHitRatio: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "cache_hit_ratio",
			Help: "Lifetime hit ratio of the resolution cache.",
		}),
		goroutines: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "goroutines",
			Help: "Goroutines at last infra sample.",
		}),
		heapAllocMB: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "heap_alloc_megabytes",
			Help: "Heap allocation at last infra sample.",
		}),
	}
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

func (r *Recorder) RecordRequest(m RequestMetric) {
	r.requests.WithLabelValues(m.Method, m.Route, strconv.Itoa(m.Status)).Inc()
	r.requestTime.WithLabelValues(m.Method, m.Route).Observe(m.Duration.Seconds())
	if m.Failed {
		r.requestErrors.WithLabelValues(m.Route).Inc()
	}
}

func (r *Recorder) RecordInfra(m InfraMetric) {
	r.poolConns.WithLabelValues("acquired").Set(float64(m.PoolAcquired))
	r.poolConns.WithLabelValues("idle").Set(float64(m.PoolIdle))
	r.poolConns.WithLabelValues("total").Set(float64(m.PoolTotal))
	r.poolConns.WithLabelValues("max").Set(float64(m.PoolMax))
	r.cacheEntries.Set(float64(m.CacheEntries))
	r.cacheResults.WithLabelValues("hit").Set(float64(m.CacheHits))
	r.cacheResults.WithLabelValues("miss").Set(float64(m.CacheMisses))
	r.cacheHitRatio.Set(m.CacheHitRatio)
	r.goroutines.Set(float64(m.Goroutines))
	r.heapAllocMB.Set(m.HeapAllocMB)
}

func (r *Recorder) CacheLookup(hit bool) {
	if hit {
		r.cacheLookups.WithLabelValues("hit").Inc()
		return
	}
	r.cacheLookups.WithLabelValues("miss").Inc()
}

func (r *Recorder) LookupLatency(d time.Duration) {
	r.lookupLatency.Observe(d.Seconds())
}

func (r *Recorder) LinkCreated(dedup bool) {
	if dedup {
		r.linksCreated.WithLabelValues("dedup").Inc()
		return
	}
	r.linksCreated.WithLabelValues("new").Inc()
}

func (r *Recorder) CodeCollision() {
	r.collisions.Inc()
}

func (r *Recorder) ClickTaskFailed(step string) {
	r.taskFailures.WithLabelValues(step).Inc()
}

func (r *Recorder) ClicksFlushed(n int) {
	r.clicksFlushed.Add(float64(n))
}

func (r *Recorder) ClicksDropped(n int) {
	r.clicksDropped.Add(float64(n))
}

func (r *Recorder) ClickFlushFailed() {
	r.flushFailures.Inc()
}
