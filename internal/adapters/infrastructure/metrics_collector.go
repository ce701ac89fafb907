package infrastructure

import (
	"context"

	"shopapi.app/internal/ports"
)

// MetricsCollectorAdapter serves the JSON metrics endpoint from the cache counters
type MetricsCollectorAdapter struct {
	cacheMetrics   ports.CacheMetrics
	configProvider ports.ConfigProvider
}

// MetricsCollectorConfig holds configuration for creating the metrics collector
type MetricsCollectorConfig struct {
	CacheMetrics   ports.CacheMetrics
	ConfigProvider ports.ConfigProvider
}

// NewMetricsCollectorAdapter creates a new metrics collector adapter
func NewMetricsCollectorAdapter(config MetricsCollectorConfig) *MetricsCollectorAdapter {
	return &MetricsCollectorAdapter{
		cacheMetrics:   config.CacheMetrics,
		configProvider: config.ConfigProvider,
	}
}

// GetMetrics returns cache statistics and the active cache settings
func (m *MetricsCollectorAdapter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	metrics := make(map[string]interface{})

	if m.cacheMetrics != nil {
		stats := m.cacheMetrics.GetStats()
		metrics["cache"] = map[string]interface{}{
			"hits":                  stats.Hits,
			"misses":                stats.Misses,
			"errors":                stats.Errors,
			"total_ops":             stats.TotalOps,
			"hit_ratio":             stats.HitRatio,
			"populate_failures":     stats.PopulateFailures,
			"invalidations":         stats.Invalidations,
			"invalidation_failures": stats.InvalidationFailures,
			"updated":               stats.LastUpdated,
		}
	}

	if m.configProvider != nil {
		cacheConfig := m.configProvider.GetCacheConfig()
		metrics["cache_config"] = map[string]interface{}{
			"type":        cacheConfig.Type,
			"ttl_seconds": int64(cacheConfig.TTL.Seconds()),
			"timeout_ms":  cacheConfig.OpTimeout.Milliseconds(),
		}
	}

	return metrics, nil
}
