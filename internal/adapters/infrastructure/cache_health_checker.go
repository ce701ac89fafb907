package infrastructure

import (
	"context"
	"time"

	"shopapi.app/internal/ports"
)

// CacheHealthChecker reports cache backend liveness. An unreachable cache
// only degrades the service because reads fall back to the store.
type CacheHealthChecker struct {
	provider  ports.CacheProvider
	cacheType string
	timeout   time.Duration
}

// NewCacheHealthChecker creates a cache health checker bounded by timeout
func NewCacheHealthChecker(provider ports.CacheProvider, cacheType string, timeout time.Duration) *CacheHealthChecker {
	if timeout <= 0 {
		timeout = time.Second
	}
	return &CacheHealthChecker{
		provider:  provider,
		cacheType: cacheType,
		timeout:   timeout,
	}
}

// Check pings the backend when it supports it
func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Details: map[string]interface{}{
			"type": c.cacheType,
		},
	}

	if c.provider == nil {
		status.Status = ports.HealthStatusDegraded
		status.Error = "cache provider is not configured"
		return status
	}

	if stateful, ok := c.provider.(interface{ State() string }); ok {
		status.Details["breaker"] = stateful.State()
	}

	pinger, ok := c.provider.(ports.CachePinger)
	if !ok {
		status.Status = ports.HealthStatusHealthy
		return status
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	if err := pinger.Ping(ctx); err != nil {
		status.Status = ports.HealthStatusDegraded
		status.Error = err.Error()
		return status
	}

	status.Status = ports.HealthStatusHealthy
	status.Details["latencyMs"] = time.Since(start).Milliseconds()
	return status
}
