package external

import (
	"context"
	"time"

	"shopapi.app/pkg/errors"
)

// NoopCacheProvider disables caching: every read misses and writes are dropped
type NoopCacheProvider struct{}

func NewNoopCacheProvider() *NoopCacheProvider {
	return &NoopCacheProvider{}
}

func (NoopCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.NewNotFoundError("cache miss")
}

func (NoopCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (NoopCacheProvider) Delete(ctx context.Context, key string) error {
	return nil
}

func (NoopCacheProvider) Ping(ctx context.Context) error {
	return nil
}
