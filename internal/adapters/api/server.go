// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"shopapi.app/internal/core/auth"
	"shopapi.app/internal/core/cart"
	"shopapi.app/internal/core/order"
	"shopapi.app/internal/core/product"
	"shopapi.app/internal/ports"
	"shopapi.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router           *gin.Engine
	server           *http.Server
	config           ServerConfig
	productUseCase   ProductUseCase
	authUseCase      AuthUseCase
	cartUseCase      CartUseCase
	orderUseCase     OrderUseCase
	metricsCollector MetricsCollector
	healthChecker    ports.SystemHealthChecker
	logger           ports.Logger
}

// Use case interfaces that the HTTP adapter depends on
type ProductUseCase interface {
	List(ctx context.Context, query product.ListQuery) (*product.Page, error)
	Get(ctx context.Context, id string) (*product.Product, error)
	Create(ctx context.Context, params product.CreateParams) (*product.Product, error)
	Update(ctx context.Context, id string, params product.UpdateParams) (*product.Product, error)
	Delete(ctx context.Context, id string) (*product.Product, error)
}

type AuthUseCase interface {
	Register(ctx context.Context, req auth.RegisterRequest) (*auth.Session, error)
	Login(ctx context.Context, req auth.LoginRequest) (*auth.Session, error)
	Authenticate(token string) (*ports.TokenClaims, error)
	Me(ctx context.Context, userID string) (*auth.User, error)
	UpdateProfile(ctx context.Context, userID string, update auth.ProfileUpdate) (*auth.User, error)
}

type CartUseCase interface {
	Get(ctx context.Context, userID string) (*cart.Cart, error)
	Add(ctx context.Context, userID string, req cart.AddItemRequest) (*cart.Cart, error)
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*cart.Cart, error)
	Remove(ctx context.Context, userID, productID string) (*cart.Cart, error)
	Clear(ctx context.Context, userID string) error
}

type OrderUseCase interface {
	Create(ctx context.Context, userID string, req order.CreateRequest) (*order.Order, error)
	List(ctx context.Context, userID string) ([]*order.Order, error)
	Get(ctx context.Context, userID string, role auth.Role, id string) (*order.Order, error)
	UpdateStatus(ctx context.Context, role auth.Role, id string, update order.StatusUpdate) (*order.Order, error)
	Cancel(ctx context.Context, userID, id string) error
}

type MetricsCollector interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config           ServerConfig
	ProductUseCase   ProductUseCase
	AuthUseCase      AuthUseCase
	CartUseCase      CartUseCase
	OrderUseCase     OrderUseCase
	MetricsCollector MetricsCollector
	HealthChecker    ports.SystemHealthChecker
	Logger           ports.Logger
	// MetricsHandler serves /metrics; defaults to the default Prometheus registry
	MetricsHandler http.Handler
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(opts.Logger))

	server := &HTTPServerAdapter{
		router:           router,
		config:           opts.Config,
		productUseCase:   opts.ProductUseCase,
		authUseCase:      opts.AuthUseCase,
		cartUseCase:      opts.CartUseCase,
		orderUseCase:     opts.OrderUseCase,
		metricsCollector: opts.MetricsCollector,
		healthChecker:    opts.HealthChecker,
		logger:           opts.Logger,
	}

	metricsHandler := opts.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}

	server.setupRoutes(metricsHandler)
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.ProductUseCase == nil {
		return errors.NewValidationError("product use case is required")
	}
	if opts.AuthUseCase == nil {
		return errors.NewValidationError("auth use case is required")
	}
	if opts.CartUseCase == nil {
		return errors.NewValidationError("cart use case is required")
	}
	if opts.OrderUseCase == nil {
		return errors.NewValidationError("order use case is required")
	}
	if opts.MetricsCollector == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes(metricsHandler http.Handler) {
	protect := s.authMiddleware()

	api := s.router.Group("/api")
	{
		api.GET("/health", s.getHealth)
		api.GET("/metrics", s.getMetrics)
	}

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", s.register)
		authRoutes.POST("/login", s.login)
		authRoutes.GET("/me", protect, s.me)
		authRoutes.PUT("/update", protect, s.updateProfile)
	}

	products := api.Group("/products")
	{
		products.GET("", s.listProducts)
		products.GET("/:id", s.getProduct)
		products.POST("", protect, s.createProduct)
		products.PUT("/:id", protect, s.updateProduct)
		products.DELETE("/:id", protect, s.deleteProduct)
	}

	carts := api.Group("/cart", protect)
	{
		carts.GET("", s.getCart)
		carts.POST("/add", s.addToCart)
		carts.PUT("/update/:productId", s.updateCartItem)
		carts.DELETE("/remove/:productId", s.removeCartItem)
		carts.DELETE("/clear", s.clearCart)
	}

	orders := api.Group("/orders", protect)
	{
		orders.GET("", s.listOrders)
		orders.GET("/:id", s.getOrder)
		orders.POST("/create", s.createOrder)
		orders.PUT("/:id/status", s.updateOrderStatus)
		orders.DELETE("/:id", s.cancelOrder)
	}

	s.router.GET("/metrics", gin.WrapH(metricsHandler))
}

// Start serves HTTP until Shutdown is called
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	s.logger.Info("Starting HTTP server", ports.F("port", s.config.Port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *HTTPServerAdapter) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
