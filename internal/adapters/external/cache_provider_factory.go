package external

import (
	"fmt"

	"shopapi.app/internal/config"
	"shopapi.app/internal/ports"
	"shopapi.app/pkg/errors"
)

type CacheProviderFactory struct {
	logger ports.Logger
}

func NewCacheProviderFactory(logger ports.Logger) *CacheProviderFactory {
	return &CacheProviderFactory{logger: logger}
}

// CreateCacheProvider builds the configured backend, wrapped in a circuit
// breaker when enabled. The none backend is never wrapped.
func (f *CacheProviderFactory) CreateCacheProvider(cfg *config.CacheConfig) (ports.CacheProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	var backend ports.CacheProvider
	switch cfg.Type {
	case config.CacheTypeNone:
		return NewNoopCacheProvider(), nil
	case config.CacheTypeMemory:
		backend = NewMemoryCacheProvider()
	case config.CacheTypeRedis:
		redisProvider, err := NewRedisCacheProvider(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		backend = redisProvider
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", cfg.Type.String()), nil)
	}

	if !cfg.Breaker.Enabled {
		return backend, nil
	}
	return NewBreakerCacheProvider(backend, cfg.Breaker, f.logger)
}
