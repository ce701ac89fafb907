package external

import (
	"context"
	"io"
	"time"

	"github.com/sony/gobreaker"

	"shopapi.app/internal/config"
	"shopapi.app/internal/ports"
	"shopapi.app/pkg/errors"
)

// BreakerCacheProvider wraps a cache backend in a circuit breaker. While
// the breaker is open, calls fail fast instead of waiting on a dead backend.
// Misses are successful calls and never trip it.
type BreakerCacheProvider struct {
	next    ports.CacheProvider
	breaker *gobreaker.CircuitBreaker
	logger  ports.Logger
}

func NewBreakerCacheProvider(next ports.CacheProvider, cfg config.BreakerConfig, logger ports.Logger) (*BreakerCacheProvider, error) {
	if next == nil {
		return nil, errors.NewValidationError("cache provider is required")
	}
	if logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	p := &BreakerCacheProvider{next: next, logger: logger}
	threshold := uint32(cfg.FailureThreshold)
	p.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "cache",
		MaxRequests: 1,
		Timeout:     time.Duration(cfg.OpenSeconds) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			p.logger.Warn("Cache circuit breaker state changed",
				ports.F("breaker", name),
				ports.F("from", from.String()),
				ports.F("to", to.String()))
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.IsNotFoundError(err) || errors.IsValidationError(err)
		},
	})
	return p, nil
}

func (p *BreakerCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := p.breaker.Execute(func() (interface{}, error) {
		return p.next.Get(ctx, key)
	})
	if err != nil {
		return nil, p.translate(err)
	}
	data, _ := out.([]byte)
	return data, nil
}

func (p *BreakerCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_, err := p.breaker.Execute(func() (interface{}, error) {
		return nil, p.next.Set(ctx, key, value, ttl)
	})
	return p.translate(err)
}

func (p *BreakerCacheProvider) Delete(ctx context.Context, key string) error {
	_, err := p.breaker.Execute(func() (interface{}, error) {
		return nil, p.next.Delete(ctx, key)
	})
	return p.translate(err)
}

// Ping bypasses the breaker so health checks see the real backend state
func (p *BreakerCacheProvider) Ping(ctx context.Context) error {
	if pinger, ok := p.next.(ports.CachePinger); ok {
		return pinger.Ping(ctx)
	}
	return nil
}

// Close releases the wrapped backend when it holds connections
func (p *BreakerCacheProvider) Close() error {
	if closer, ok := p.next.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// State reports the breaker state: closed, half-open or open
func (p *BreakerCacheProvider) State() string {
	return p.breaker.State().String()
}

func (p *BreakerCacheProvider) translate(err error) error {
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return errors.NewCacheError("cache circuit breaker is "+p.State(), err)
	}
	return err
}
