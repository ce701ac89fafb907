package external

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi.app/internal/config"
	"shopapi.app/pkg/errors"
)

// setupMockRedis creates a mock Redis server for testing
func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	mockRedis := miniredis.RunT(t)

	redisConfig := &config.RedisConfig{
		Addr:         mockRedis.Addr(),
		Password:     "",
		DB:           0,
		DialTimeout:  1,
		ReadTimeout:  1,
		WriteTimeout: 1,
	}

	return mockRedis, redisConfig
}

func TestNewRedisCacheProvider_NilConfig(t *testing.T) {
	provider, err := NewRedisCacheProvider(nil)

	assert.Nil(t, provider)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrorTypeConfiguration, appErr.Type)
}

func TestRedisCacheProvider_Operations(t *testing.T) {
	mockRedis, redisConfig := setupMockRedis(t)

	provider, err := NewRedisCacheProvider(redisConfig)
	require.NoError(t, err)
	defer func() { _ = provider.Close() }()

	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, provider.Set(ctx, "product:1", []byte("payload"), time.Hour))

		got, err := provider.Get(ctx, "product:1")
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), got)
		assert.Equal(t, time.Hour, mockRedis.TTL("product:1"))
	})

	t.Run("Miss", func(t *testing.T) {
		_, err := provider.Get(ctx, "product:missing")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, provider.Set(ctx, "product:2", []byte("x"), time.Hour))
		require.NoError(t, provider.Delete(ctx, "product:2"))
		assert.False(t, mockRedis.Exists("product:2"))
		assert.NoError(t, provider.Delete(ctx, "product:2"))
	})

	t.Run("ExpiresAfterTTL", func(t *testing.T) {
		require.NoError(t, provider.Set(ctx, "products:list:limit=10&page=1", []byte("page"), 3600*time.Second))

		mockRedis.FastForward(3599 * time.Second)
		_, err := provider.Get(ctx, "products:list:limit=10&page=1")
		assert.NoError(t, err)

		mockRedis.FastForward(time.Second)
		_, err = provider.Get(ctx, "products:list:limit=10&page=1")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("Ping", func(t *testing.T) {
		assert.NoError(t, provider.Ping(ctx))
	})

	t.Run("Validation", func(t *testing.T) {
		_, err := provider.Get(ctx, "")
		assert.True(t, errors.IsValidationError(err))
		assert.True(t, errors.IsValidationError(provider.Set(ctx, "k", []byte("v"), 0)))
		assert.True(t, errors.IsValidationError(provider.Set(ctx, "k", nil, time.Minute)))
	})
}

func TestRedisCacheProvider_ServerDown(t *testing.T) {
	mockRedis, redisConfig := setupMockRedis(t)

	provider, err := NewRedisCacheProvider(redisConfig)
	require.NoError(t, err)
	defer func() { _ = provider.Close() }()

	mockRedis.Close()
	ctx := context.Background()

	_, err = provider.Get(ctx, "product:1")
	assert.True(t, errors.IsCacheError(err))
	assert.True(t, errors.IsCacheError(provider.Set(ctx, "product:1", []byte("v"), time.Minute)))
	assert.True(t, errors.IsCacheError(provider.Delete(ctx, "product:1")))
	assert.True(t, errors.IsCacheError(provider.Ping(ctx)))
}

func TestRedisCacheProvider_InjectedError(t *testing.T) {
	mockRedis, redisConfig := setupMockRedis(t)

	provider, err := NewRedisCacheProvider(redisConfig)
	require.NoError(t, err)
	defer func() { _ = provider.Close() }()

	mockRedis.SetError("LOADING Redis is loading the dataset in memory")
	_, err = provider.Get(context.Background(), "product:1")
	assert.True(t, errors.IsCacheError(err))

	mockRedis.SetError("")
	_, err = provider.Get(context.Background(), "product:1")
	assert.True(t, errors.IsNotFoundError(err))
}
