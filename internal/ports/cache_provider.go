package ports

import (
	"context"
	"time"
)

// CacheProvider defines the contract for a key-value cache backend.
// A miss is reported as a NotFound AppError; any other error means the
// backend itself failed.
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// CachePinger is implemented by cache backends that can report liveness
type CachePinger interface {
	Ping(ctx context.Context) error
}

// Cache lookup outcomes recorded by CacheMetrics
const (
	CacheOutcomeHit   = "hit"
	CacheOutcomeMiss  = "miss"
	CacheOutcomeError = "error"
)

// CacheStats represents cache performance metrics
type CacheStats struct {
	Hits                 int64
	Misses               int64
	Errors               int64
	TotalOps             int64
	HitRatio             float64
	PopulateFailures     int64
	Invalidations        int64
	InvalidationFailures int64
	LastUpdated          time.Time
}

// CacheMetrics defines the contract for cache performance tracking
type CacheMetrics interface {
	GetStats() CacheStats
	RecordLookup(kind, outcome string, duration time.Duration)
	RecordPopulate(kind string, err error, duration time.Duration)
	RecordInvalidation(kind string, err error, duration time.Duration)
}

// CacheSerializer defines the contract for data serialization
type CacheSerializer interface {
	Serialize(data interface{}) ([]byte, error)
	Deserialize(data []byte, target interface{}) error
}
