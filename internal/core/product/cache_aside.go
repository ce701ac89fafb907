package product

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"shopapi.app/internal/ports"
	"shopapi.app/pkg/errors"
)

const (
	DefaultCacheTTL     = time.Hour
	DefaultCacheTimeout = 250 * time.Millisecond

	tracerName = "shopapi.app/internal/core/product"
)

type lookupOutcome int

const (
	lookupMiss lookupOutcome = iota
	lookupHit
	lookupBackendError
)

func (o lookupOutcome) String() string {
	switch o {
	case lookupHit:
		return ports.CacheOutcomeHit
	case lookupBackendError:
		return ports.CacheOutcomeError
	default:
		return ports.CacheOutcomeMiss
	}
}

// lookupResult keeps a backend failure distinguishable from a plain miss
// for logging and metrics. Callers only ask hit().
type lookupResult struct {
	outcome lookupOutcome
	err     error
}

func (r lookupResult) hit() bool {
	return r.outcome == lookupHit
}

// CacheAside runs the cache side of the read-through and invalidate-on-write
// paths. No cache failure ever reaches the caller.
type CacheAside struct {
	provider   ports.CacheProvider
	serializer ports.CacheSerializer
	metrics    ports.CacheMetrics
	logger     ports.Logger
	tracer     trace.Tracer
	ttl        time.Duration
	timeout    time.Duration
}

type CacheAsideDependencies struct {
	Provider   ports.CacheProvider
	Serializer ports.CacheSerializer
	Metrics    ports.CacheMetrics
	Logger     ports.Logger
	// Tracer defaults to the global OpenTelemetry tracer
	Tracer  trace.Tracer
	TTL     time.Duration
	Timeout time.Duration
}

func NewCacheAside(deps CacheAsideDependencies) (*CacheAside, error) {
	if deps.Provider == nil {
		return nil, errors.NewValidationError("cache provider is required")
	}
	if deps.Serializer == nil {
		return nil, errors.NewValidationError("cache serializer is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("cache metrics is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.TTL < 0 || deps.Timeout < 0 {
		return nil, errors.NewValidationError("cache ttl and timeout cannot be negative")
	}

	if deps.Tracer == nil {
		deps.Tracer = otel.Tracer(tracerName)
	}
	if deps.TTL == 0 {
		deps.TTL = DefaultCacheTTL
	}
	if deps.Timeout == 0 {
		deps.Timeout = DefaultCacheTimeout
	}

	return &CacheAside{
		provider:   deps.Provider,
		serializer: deps.Serializer,
		metrics:    deps.Metrics,
		logger:     deps.Logger,
		tracer:     deps.Tracer,
		ttl:        deps.TTL,
		timeout:    deps.Timeout,
	}, nil
}

// lookup decodes the cached value for key into target on a hit
func (c *CacheAside) lookup(ctx context.Context, key Key, target interface{}) lookupResult {
	start := time.Now()
	ctx, span := c.tracer.Start(ctx, "cache.lookup", trace.WithAttributes(
		attribute.String("cache.key_kind", key.Kind()),
	))
	defer span.End()

	result := c.get(ctx, key, target)

	span.SetAttributes(attribute.String("cache.outcome", result.outcome.String()))
	if result.err != nil {
		span.RecordError(result.err)
		span.SetStatus(codes.Error, "cache lookup failed")
		c.logger.Warn("Cache lookup failed, falling back to store",
			ports.F("key", key.Encode()),
			ports.F("error", result.err))
	}
	c.metrics.RecordLookup(key.Kind(), result.outcome.String(), time.Since(start))
	return result
}

func (c *CacheAside) get(ctx context.Context, key Key, target interface{}) lookupResult {
	opCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	data, err := c.provider.Get(opCtx, key.Encode())
	if err != nil {
		if errors.IsNotFoundError(err) {
			return lookupResult{outcome: lookupMiss}
		}
		return lookupResult{outcome: lookupBackendError, err: errors.NewCacheError("cache get failed", err)}
	}

	if err := c.serializer.Deserialize(data, target); err != nil {
		return lookupResult{outcome: lookupBackendError, err: errors.NewCacheError("cached payload is undecodable", err)}
	}
	return lookupResult{outcome: lookupHit}
}

// populate stores value under key with the configured TTL
func (c *CacheAside) populate(ctx context.Context, key Key, value interface{}) {
	start := time.Now()
	ctx, span := c.tracer.Start(ctx, "cache.populate", trace.WithAttributes(
		attribute.String("cache.key_kind", key.Kind()),
	))
	defer span.End()

	err := c.set(ctx, key, value)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "cache populate failed")
		c.logger.Warn("Failed to populate cache",
			ports.F("key", key.Encode()),
			ports.F("error", err))
	}
	c.metrics.RecordPopulate(key.Kind(), err, time.Since(start))
}

func (c *CacheAside) set(ctx context.Context, key Key, value interface{}) error {
	data, err := c.serializer.Serialize(value)
	if err != nil {
		return errors.NewCacheError("serialize cache value", err)
	}

	opCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.provider.Set(opCtx, key.Encode(), data, c.ttl); err != nil {
		return errors.NewCacheError("cache set failed", err)
	}
	return nil
}

// invalidate removes key. A failed delete leaves the entry to expire by TTL.
func (c *CacheAside) invalidate(ctx context.Context, key Key) {
	start := time.Now()
	ctx, span := c.tracer.Start(ctx, "cache.invalidate", trace.WithAttributes(
		attribute.String("cache.key_kind", key.Kind()),
	))
	defer span.End()

	opCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.provider.Delete(opCtx, key.Encode())
	if err != nil {
		err = errors.NewCacheError("cache delete failed", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "cache invalidate failed")
		c.logger.Warn("Failed to invalidate cache entry",
			ports.F("key", key.Encode()),
			ports.F("error", err))
	}
	c.metrics.RecordInvalidation(key.Kind(), err, time.Since(start))
}

// TTL returns the lifetime of populated entries
func (c *CacheAside) TTL() time.Duration {
	return c.ttl
}
