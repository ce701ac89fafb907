package infrastructure

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"shopapi.app/internal/ports"
)

const metricsNamespace = "shop"

type cacheCollectors struct {
	lookups       *prometheus.CounterVec
	populates     *prometheus.CounterVec
	invalidations *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	hitRatio      prometheus.Gauge
}

func newCacheCollectors(reg prometheus.Registerer) *cacheCollectors {
	factory := promauto.With(reg)
	return &cacheCollectors{
		lookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cache_lookups_total",
				Help:      "Cache lookups by key kind and outcome (hit, miss, error)",
			},
			[]string{"key_kind", "outcome"},
		),
		populates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cache_populates_total",
				Help:      "Cache writes after a miss by key kind and result",
			},
			[]string{"key_kind", "result"},
		),
		invalidations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cache_invalidations_total",
				Help:      "Cache deletes after a write by key kind and result",
			},
			[]string{"key_kind", "result"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "cache_operation_duration_seconds",
				Help:      "Cache operation duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"key_kind", "operation"},
		),
		hitRatio: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "cache_hit_ratio",
				Help:      "Cache hit ratio (hits/total lookups)",
			},
		),
	}
}

// PrometheusCacheMetrics implements the CacheMetrics port. Counters are kept
// in memory for GetStats and mirrored to Prometheus collectors.
type PrometheusCacheMetrics struct {
	collectors *cacheCollectors

	mu                   sync.RWMutex
	hits                 int64
	misses               int64
	errors               int64
	populateFailures     int64
	invalidations        int64
	invalidationFailures int64
	lastUpdated          time.Time
	now                  func() time.Time
}

// NewPrometheusCacheMetrics registers the cache collectors with reg.
// reg must not already hold them.
func NewPrometheusCacheMetrics(reg prometheus.Registerer) *PrometheusCacheMetrics {
	return &PrometheusCacheMetrics{
		collectors: newCacheCollectors(reg),
		now:        time.Now,
	}
}

// RecordLookup counts a cache read
func (m *PrometheusCacheMetrics) RecordLookup(kind, outcome string, duration time.Duration) {
	m.collectors.lookups.WithLabelValues(kind, outcome).Inc()
	m.collectors.latency.WithLabelValues(kind, "get").Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()

	switch outcome {
	case ports.CacheOutcomeHit:
		m.hits++
	case ports.CacheOutcomeMiss:
		m.misses++
	default:
		m.errors++
	}
	m.lastUpdated = m.now()
	m.collectors.hitRatio.Set(m.hitRatioLocked())
}

// RecordPopulate counts a cache write
func (m *PrometheusCacheMetrics) RecordPopulate(kind string, err error, duration time.Duration) {
	m.collectors.populates.WithLabelValues(kind, resultLabel(err)).Inc()
	m.collectors.latency.WithLabelValues(kind, "set").Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.populateFailures++
	}
	m.lastUpdated = m.now()
}

// RecordInvalidation counts a cache delete
func (m *PrometheusCacheMetrics) RecordInvalidation(kind string, err error, duration time.Duration) {
	m.collectors.invalidations.WithLabelValues(kind, resultLabel(err)).Inc()
	m.collectors.latency.WithLabelValues(kind, "delete").Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()

	m.invalidations++
	if err != nil {
		m.invalidationFailures++
	}
	m.lastUpdated = m.now()
}

// GetStats returns a snapshot of the in-memory counters
func (m *PrometheusCacheMetrics) GetStats() ports.CacheStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return ports.CacheStats{
		Hits:                 m.hits,
		Misses:               m.misses,
		Errors:               m.errors,
		TotalOps:             m.hits + m.misses + m.errors,
		HitRatio:             m.hitRatioLocked(),
		PopulateFailures:     m.populateFailures,
		Invalidations:        m.invalidations,
		InvalidationFailures: m.invalidationFailures,
		LastUpdated:          m.lastUpdated,
	}
}

// hitRatioLocked must be called while holding the mutex.
// Backend errors count as lookups that did not hit.
func (m *PrometheusCacheMetrics) hitRatioLocked() float64 {
	total := m.hits + m.misses + m.errors
	if total == 0 {
		return 0
	}
	return float64(m.hits) / float64(total)
}

func resultLabel(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
