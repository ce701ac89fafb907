package infrastructure

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"shopapi.app/internal/mocks"
	"shopapi.app/internal/ports"
)

type pingingCache struct {
	ports.CacheProvider
	pingErr error
	state   string
}

func (p *pingingCache) Ping(ctx context.Context) error { return p.pingErr }

func (p *pingingCache) State() string { return p.state }

func TestDatabaseHealthChecker_Healthy(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	status := NewDatabaseHealthChecker(db).Check(context.Background())

	assert.Equal(t, "database", status.Component)
	assert.Equal(t, ports.HealthStatusHealthy, status.Status)
	assert.Equal(t, true, status.Details["connected"])
	assert.Empty(t, status.Error)
}

func TestDatabaseHealthChecker_Closed(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	status := NewDatabaseHealthChecker(db).Check(context.Background())

	assert.Equal(t, ports.HealthStatusUnhealthy, status.Status)
	assert.NotEmpty(t, status.Error)
}

func TestDatabaseHealthChecker_Nil(t *testing.T) {
	status := NewDatabaseHealthChecker(nil).Check(context.Background())

	assert.Equal(t, ports.HealthStatusUnhealthy, status.Status)
	assert.Equal(t, "database instance is nil", status.Error)
}

func TestCacheHealthChecker(t *testing.T) {
	tests := []struct {
		name        string
		provider    ports.CacheProvider
		wantStatus  string
		wantError   string
		wantBreaker interface{}
	}{
		{
			name:        "ping succeeds",
			provider:    &pingingCache{state: "closed"},
			wantStatus:  ports.HealthStatusHealthy,
			wantBreaker: "closed",
		},
		{
			name:        "ping fails",
			provider:    &pingingCache{pingErr: fmt.Errorf("connection refused"), state: "open"},
			wantStatus:  ports.HealthStatusDegraded,
			wantError:   "connection refused",
			wantBreaker: "open",
		},
		{
			name:       "no provider",
			provider:   nil,
			wantStatus: ports.HealthStatusDegraded,
			wantError:  "cache provider is not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := NewCacheHealthChecker(tt.provider, "redis", time.Second).Check(context.Background())

			assert.Equal(t, "cache", status.Component)
			assert.Equal(t, tt.wantStatus, status.Status)
			assert.Equal(t, tt.wantError, status.Error)
			assert.Equal(t, "redis", status.Details["type"])
			assert.Equal(t, tt.wantBreaker, status.Details["breaker"])
		})
	}
}

func TestCacheHealthChecker_WithoutPing(t *testing.T) {
	provider := mocks.NewCacheProvider(t)

	status := NewCacheHealthChecker(provider, "memory", 0).Check(context.Background())

	assert.Equal(t, ports.HealthStatusHealthy, status.Status)
}

func TestSystemHealthChecker_CheckAll(t *testing.T) {
	ctx := context.Background()

	dbChecker := mocks.NewHealthChecker(t)
	dbChecker.EXPECT().Check(ctx).Return(ports.HealthStatus{Component: "database", Status: ports.HealthStatusHealthy})
	cacheChecker := mocks.NewHealthChecker(t)
	cacheChecker.EXPECT().Check(ctx).Return(ports.HealthStatus{Component: "cache", Status: ports.HealthStatusDegraded})

	checker := NewSystemHealthChecker(SystemHealthCheckerConfig{
		DatabaseChecker: dbChecker,
		CacheChecker:    cacheChecker,
		ConfigProvider:  NewConfigProviderAdapter(testConfig()),
	})

	results := checker.CheckAll(ctx)

	require.Len(t, results, 3)
	assert.Equal(t, ports.HealthStatusHealthy, results["database"].Status)
	assert.Equal(t, ports.HealthStatusDegraded, results["cache"].Status)
	assert.Equal(t, "redis", results["config"].Details["cacheType"])
	assert.Equal(t, int64(3600), results["config"].Details["cacheTTLSeconds"])
	assert.Equal(t, ports.HealthStatusDegraded, ports.OverallStatus(results))
}
