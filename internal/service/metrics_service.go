package service

import (
	"net/http"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "ecollege"

// MetricsService owns a private registry with the API's request series and
// the entity view cache series.
type MetricsService struct {
	handler http.Handler

	requestDuration *prometheus.HistogramVec
	requests        *prometheus.CounterVec

	viewLookup        prometheus.Histogram
	viewWrite         prometheus.Histogram
	viewHits          prometheus.Counter
	viewMisses        prometheus.Counter
	viewHitRatio      prometheus.Gauge
	viewInvalidations prometheus.Counter

	hits   uint64
	misses uint64
}

// NewMetricsService builds the registry. Each call is independent, so tests
// can create as many as they need.
func NewMetricsService() *MetricsService {
	routeLabels := []string{"method", "path", "status"}
	m := &MetricsService{
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of catalogue API requests by route template.",
			Buckets:   prometheus.DefBuckets,
		}, routeLabels),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "Catalogue API requests by route template and status.",
		}, routeLabels),
		viewLookup: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "view_cache",
			Name:      "lookup_seconds",
			Help:      "Time spent reading faculty, department and course views from Redis.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		}),
		viewWrite: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "view_cache",
			Name:      "write_seconds",
			Help:      "Time spent storing rendered views in Redis.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		}),
		viewHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "view_cache",
			Name:      "hits_total",
			Help:      "View lookups answered from Redis.",
		}),
		viewMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "view_cache",
			Name:      "misses_total",
			Help:      "View lookups that fell through to Postgres.",
		}),
		viewHitRatio: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "view_cache",
			Name:      "hit_ratio",
			Help:      "Share of view lookups answered from Redis since start.",
		}),
		viewInvalidations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "view_cache",
			Name:      "invalidations_total",
			Help:      "Writes that retired the current view generation.",
		}),
	}

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "goroutines",
		Help:      "Goroutines alive in the API process.",
	}, func() float64 { return float64(runtime.NumGoroutine()) })

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		m.requestDuration, m.requests,
		m.viewLookup, m.viewWrite, m.viewHits, m.viewMisses, m.viewHitRatio, m.viewInvalidations,
		goroutines,
	)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// Handler serves the exposition format; a nil service answers 503.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records one served request. path must be a route
// template, never a raw URL.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	code := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
	m.requests.WithLabelValues(method, path, code).Inc()
}

// RecordCacheOperation records a view lookup.
func (m *MetricsService) RecordCacheOperation(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	m.viewLookup.Observe(duration.Seconds())
	if hit {
		m.viewHits.Inc()
		atomic.AddUint64(&m.hits, 1)
	} else {
		m.viewMisses.Inc()
		atomic.AddUint64(&m.misses, 1)
	}
	hits := atomic.LoadUint64(&m.hits)
	if total := hits + atomic.LoadUint64(&m.misses); total > 0 {
		m.viewHitRatio.Set(float64(hits) / float64(total))
	}
}

// ObserveCacheWrite records a view store.
func (m *MetricsService) ObserveCacheWrite(duration time.Duration) {
	if m == nil {
		return
	}
	m.viewWrite.Observe(duration.Seconds())
}

// RecordInvalidation counts a generation bump.
func (m *MetricsService) RecordInvalidation() {
	if m == nil {
		return
	}
	m.viewInvalidations.Inc()
}
