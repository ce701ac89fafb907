package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"shopapi.app/internal/adapters/api"
	"shopapi.app/internal/adapters/infrastructure"
	"shopapi.app/internal/config"
	"shopapi.app/internal/core/auth"
	"shopapi.app/internal/core/cart"
	"shopapi.app/internal/core/order"
	"shopapi.app/internal/core/product"
	"shopapi.app/internal/ports"
)

const (
	serverReadTimeout  = 30 * time.Second
	serverWriteTimeout = 30 * time.Second
)

type Application struct {
	config *config.Config

	// Use Cases
	productUseCase *product.UseCase
	authUseCase    *auth.UseCase
	cartUseCase    *cart.UseCase
	orderUseCase   *order.UseCase

	// Adapters
	httpAdapter *api.HTTPServerAdapter
	router      *gin.Engine

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(dependencyConfig(cfg), cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	return NewApplicationWithDependencies(cfg, deps)
}

func dependencyConfig(cfg *config.Config) DependencyConfig {
	return DependencyConfig{
		Database: cfg.Database,
		Cache:    cfg.Cache,
		Auth:     cfg.Auth,
		Logging:  cfg.Logging,
	}
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, depContainer *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   depContainer,
		ports:  depContainer.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	cacheConfig := a.ports.ConfigProvider.GetCacheConfig()

	cacheAside, err := product.NewCacheAside(product.CacheAsideDependencies{
		Provider:   a.ports.ProductCache,
		Serializer: a.ports.CacheSerializer,
		Metrics:    a.ports.CacheMetrics,
		Logger:     a.ports.Logger,
		TTL:        cacheConfig.TTL,
		Timeout:    cacheConfig.OpTimeout,
	})
	if err != nil {
		return fmt.Errorf("create product cache: %w", err)
	}

	productUseCase, err := product.NewUseCase(product.UseCaseDependencies{
		Repository: a.ports.ProductRepository,
		Cache:      cacheAside,
		Logger:     a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create product use case: %w", err)
	}
	a.productUseCase = productUseCase

	authUseCase, err := auth.NewUseCase(auth.UseCaseDependencies{
		UserRepo: a.ports.UserRepository,
		Hasher:   a.ports.PasswordHasher,
		Tokens:   a.ports.TokenIssuer,
		Logger:   a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create auth use case: %w", err)
	}
	a.authUseCase = authUseCase

	cartUseCase, err := cart.NewUseCase(cart.UseCaseDependencies{
		CartRepo:    a.ports.CartRepository,
		ProductRepo: a.ports.ProductRepository,
		Logger:      a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create cart use case: %w", err)
	}
	a.cartUseCase = cartUseCase

	orderUseCase, err := order.NewUseCase(order.UseCaseDependencies{
		OrderRepo:   a.ports.OrderRepository,
		CartRepo:    a.ports.CartRepository,
		ProductRepo: a.ports.ProductRepository,
		Config:      a.ports.ConfigProvider,
		Logger:      a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create order use case: %w", err)
	}
	a.orderUseCase = orderUseCase

	a.ports.Logger.Info("Use cases initialized",
		ports.F("cacheTTL", cacheConfig.TTL),
		ports.F("cacheTimeout", cacheConfig.OpTimeout))
	return nil
}

func (a *Application) initializeAdapters() error {
	metricsCollector := infrastructure.NewMetricsCollectorAdapter(infrastructure.MetricsCollectorConfig{
		CacheMetrics:   a.ports.CacheMetrics,
		ConfigProvider: a.ports.ConfigProvider,
	})

	cacheConfig := a.ports.ConfigProvider.GetCacheConfig()
	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		DatabaseChecker: infrastructure.NewDatabaseHealthChecker(a.ports.Database.(*gorm.DB)),
		CacheChecker:    infrastructure.NewCacheHealthChecker(a.ports.ProductCache, cacheConfig.Type, cacheConfig.OpTimeout),
		ConfigProvider:  a.ports.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:         a.config.Server.Port,
			ReadTimeout:  serverReadTimeout,
			WriteTimeout: serverWriteTimeout,
		},
		ProductUseCase:   a.productUseCase,
		AuthUseCase:      a.authUseCase,
		CartUseCase:      a.cartUseCase,
		OrderUseCase:     a.orderUseCase,
		MetricsCollector: metricsCollector,
		HealthChecker:    systemHealthChecker,
		Logger:           a.ports.Logger,
		MetricsHandler:   a.deps.MetricsHandler(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.httpAdapter = httpAdapter
	a.router = httpAdapter.GetRouter()
	return nil
}

// Start serves HTTP until Shutdown is called
func (a *Application) Start(ctx context.Context) error {
	a.ports.Logger.Info("Starting application", ports.F("port", a.config.Server.Port))
	return a.httpAdapter.Start(ctx)
}

func (a *Application) Shutdown(ctx context.Context) error {
	a.ports.Logger.Info("Shutting down application")

	if err := a.httpAdapter.Shutdown(ctx); err != nil {
		a.ports.Logger.Error("Error shutting down HTTP server", ports.F("error", err))
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	a.ports.Logger.Info("Application shutdown complete")
	if err := a.deps.Cleanup(); err != nil {
		return fmt.Errorf("release resources: %w", err)
	}
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetProductUseCase returns the product use case for testing
func (a *Application) GetProductUseCase() *product.UseCase {
	return a.productUseCase
}
