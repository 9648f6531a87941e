// Package metrics exposes the Prometheus instruments of the placement engine.
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

const defaultNamespace = "placement_engine"

// Cache lookup outcomes used as the "result" label.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Manager owns a registry and every instrument registered on it.
// A nil *Manager is valid and records nothing.
type Manager struct {
	namespace       string
	fitScoreBuckets []float64
	latencyBuckets  []float64
	registry        *prometheus.Registry

	bundles        prometheus.Counter
	fitScore       prometheus.Histogram
	recordsSkipped *prometheus.CounterVec
	truncations    *prometheus.CounterVec
	cacheRequests  *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:       defaultNamespace,
		fitScoreBuckets: prometheus.LinearBuckets(10, 10, 10),
		latencyBuckets:  prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	auto := promauto.With(m.registry)

	m.bundles = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "bundles_total",
		Help:      "Recommendation bundles built by the engine.",
	})
	m.fitScore = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "fit_score",
		Help:      "Distribution of student/job fit scores (0-100).",
		Buckets:   m.fitScoreBuckets,
	})
	m.recordsSkipped = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "records_skipped_total",
		Help:      "Malformed records skipped while scoring a pool.",
	}, []string{"source"})
	m.truncations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "pool_truncations_total",
		Help:      "Input pools cut down to the configured maximum size.",
	}, []string{"source"})
	m.cacheRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "cache_requests_total",
		Help:      "Bundle cache lookups by result.",
	}, []string{"result"})
	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests served.",
	}, []string{"method", "route", "status"})
	m.httpDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   m.latencyBuckets,
	}, []string{"method", "route"})

	return m
}

func (m *Manager) RecordBundle() {
	if m == nil {
		return
	}
	m.bundles.Inc()
}

func (m *Manager) ObserveFitScore(score int) {
	if m == nil {
		return
	}
	m.fitScore.Observe(float64(score))
}

func (m *Manager) RecordSkipped(source string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.recordsSkipped.WithLabelValues(source).Add(float64(n))
}

func (m *Manager) RecordTruncated(source string) {
	if m == nil {
		return
	}
	m.truncations.WithLabelValues(source).Inc()
}

func (m *Manager) RecordCache(result string) {
	if m == nil {
		return
	}
	m.cacheRequests.WithLabelValues(result).Inc()
}

func (m *Manager) RecordHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Registry is the gatherer backing Handler.
func (m *Manager) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
