package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"shopapi.app/internal/adapters/database"
	"shopapi.app/internal/adapters/external"
	"shopapi.app/internal/adapters/infrastructure"
	"shopapi.app/internal/config"
	"shopapi.app/internal/ports"
	"shopapi.app/pkg/logger"
)

const cachePingTimeout = 2 * time.Second

type DependencyContainer struct {
	config    DependencyConfig
	db        *gorm.DB
	cache     ports.CacheProvider
	logSink   *os.File
	zapLogger *zap.Logger
	ports     *ports.ApplicationPorts
}

type DependencyConfig struct {
	Database config.DatabaseConfig
	Cache    config.CacheConfig
	Auth     config.AuthConfig
	Logging  config.LoggingConfig
	// Registry receives the cache collectors; nil means the default registry
	Registry *prometheus.Registry
}

// NewDependencyContainer connects to Postgres and builds every port
func NewDependencyContainer(depConfig DependencyConfig, appConfig *config.Config) (*DependencyContainer, error) {
	dsn := depConfig.Database.GetDSN()
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return NewDependencyContainerWithDatabase(depConfig, appConfig, db)
}

// NewDependencyContainerWithDatabase builds the container over an open
// database, which is migrated before use
func NewDependencyContainerWithDatabase(depConfig DependencyConfig, appConfig *config.Config, db *gorm.DB) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config: depConfig,
		db:     db,
	}

	appLogger, err := container.initializeLogger()
	if err != nil {
		return nil, container.abort(fmt.Errorf("initialize logger: %w", err))
	}

	if err := container.runMigrations(appLogger); err != nil {
		return nil, container.abort(fmt.Errorf("run migrations: %w", err))
	}

	if err := container.initializePorts(appConfig, appLogger); err != nil {
		return nil, container.abort(fmt.Errorf("initialize ports: %w", err))
	}

	return container, nil
}

// abort releases whatever was opened before a failed build step
func (c *DependencyContainer) abort(err error) error {
	if cleanupErr := c.Cleanup(); cleanupErr != nil {
		slog.Warn("Cleanup after failed initialization", "error", cleanupErr)
	}
	return err
}

// initializeLogger picks the slog or zap backend, writing to LOG_FILE when set
func (c *DependencyContainer) initializeLogger() (ports.Logger, error) {
	var sink io.Writer = os.Stdout
	if c.config.Logging.File != "" {
		file, err := infrastructure.OpenLogFile(c.config.Logging.File)
		if err != nil {
			return nil, err
		}
		c.logSink = file
		sink = file
	}

	switch c.config.Logging.Backend {
	case "zap":
		c.zapLogger = infrastructure.NewZapLogger(sink, c.config.Logging.Level)
		return infrastructure.NewZapLoggerAdapter(c.zapLogger), nil
	default:
		return infrastructure.NewSlogLoggerAdapter(
			logger.NewWithWriter(sink, logger.ParseLevel(c.config.Logging.Level))), nil
	}
}

func (c *DependencyContainer) runMigrations(appLogger ports.Logger) error {
	appLogger.Info("Running database migrations")

	if err := database.Migrate(c.db); err != nil {
		return err
	}

	appLogger.Info("Database migrations completed")
	return nil
}

func (c *DependencyContainer) initializePorts(appConfig *config.Config, appLogger ports.Logger) error {
	productRepo := database.NewProductRepositoryAdapter(c.db)
	userRepo := database.NewUserRepositoryAdapter(c.db)
	cartRepo := database.NewCartRepositoryAdapter(c.db)
	orderRepo := database.NewOrderRepositoryAdapter(c.db)

	cacheFactory := external.NewCacheProviderFactory(appLogger)
	cacheProvider, err := cacheFactory.CreateCacheProvider(&c.config.Cache)
	if err != nil {
		return fmt.Errorf("create cache provider: %w", err)
	}
	c.cache = cacheProvider
	c.checkCache(appLogger)

	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	if c.config.Registry != nil {
		registerer = c.config.Registry
	}
	cacheMetrics := infrastructure.NewPrometheusCacheMetrics(registerer)

	hasher, err := external.NewBcryptHasher(c.config.Auth.BcryptCost)
	if err != nil {
		return fmt.Errorf("create password hasher: %w", err)
	}

	configProvider := infrastructure.NewConfigProviderAdapter(appConfig)
	tokens, err := external.NewJWTTokenIssuer(
		c.config.Auth.JWTSecret,
		c.config.Auth.JWTIssuer,
		configProvider.GetAuthConfig().TokenTTL,
	)
	if err != nil {
		return fmt.Errorf("create token issuer: %w", err)
	}

	c.ports = &ports.ApplicationPorts{
		ProductRepository: productRepo,
		ProductCache:      cacheProvider,
		CacheSerializer:   external.NewJSONSerializer(),
		CacheMetrics:      cacheMetrics,

		UserRepository: userRepo,
		PasswordHasher: hasher,
		TokenIssuer:    tokens,

		CartRepository:  cartRepo,
		OrderRepository: orderRepo,

		ConfigProvider: configProvider,
		Logger:         appLogger,
		Database:       c.db,
	}

	appLogger.Info("Ports initialized",
		ports.F("cacheType", c.config.Cache.Type.String()),
		ports.F("logBackend", c.config.Logging.Backend))
	return nil
}

// checkCache warns when the backend is unreachable. The service still
// starts because reads fall back to the store.
func (c *DependencyContainer) checkCache(appLogger ports.Logger) {
	pinger, ok := c.cache.(ports.CachePinger)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), cachePingTimeout)
	defer cancel()
	if err := pinger.Ping(ctx); err != nil {
		appLogger.Warn("Cache backend is unreachable, serving from the store",
			ports.F("type", c.config.Cache.Type.String()),
			ports.F("addr", c.config.Cache.Redis.Addr),
			ports.F("error", err))
	}
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// MetricsHandler serves the registry the cache collectors were registered with
func (c *DependencyContainer) MetricsHandler() http.Handler {
	if c.config.Registry != nil {
		return promhttp.HandlerFor(c.config.Registry, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}

// Cleanup releases the cache client, the database pool and the log file
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if closer, ok := c.cache.(io.Closer); ok {
		keep(closer.Close())
	}
	if c.db != nil {
		if db, err := c.db.DB(); err == nil {
			keep(db.Close())
		}
	}
	if c.zapLogger != nil {
		// stdout cannot be synced on some platforms
		if err := c.zapLogger.Sync(); err != nil {
			slog.Debug("zap sync failed", "error", err)
		}
	}
	if c.logSink != nil {
		keep(c.logSink.Close())
	}
	return firstErr
}
