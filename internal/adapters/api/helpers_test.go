package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"shopapi.app/internal/adapters/database"
	"shopapi.app/internal/adapters/external"
	"shopapi.app/internal/adapters/infrastructure"
	"shopapi.app/internal/config"
	"shopapi.app/internal/core/auth"
	"shopapi.app/internal/core/cart"
	"shopapi.app/internal/core/order"
	"shopapi.app/internal/core/product"
	"shopapi.app/internal/mocks"
	"shopapi.app/internal/ports"
)

// newTestLogger returns a logger mock accepting any call with up to four fields
func newTestLogger(t *testing.T) ports.Logger {
	t.Helper()

	l := mocks.NewLogger(t)
	for n := 0; n <= 4; n++ {
		fields := make([]interface{}, n)
		for i := range fields {
			fields[i] = mock.Anything
		}
		l.EXPECT().Debug(mock.Anything, fields...).Maybe()
		l.EXPECT().Info(mock.Anything, fields...).Maybe()
		l.EXPECT().Warn(mock.Anything, fields...).Maybe()
		l.EXPECT().Error(mock.Anything, fields...).Maybe()
	}
	return l
}

// testServer wires the HTTP adapter to sqlite repositories and a miniredis cache
type testServer struct {
	router  *gin.Engine
	db      *gorm.DB
	redis   *miniredis.Miniredis
	users   ports.UserRepository
	tokens  *external.JWTTokenIssuer
	metrics *infrastructure.PrometheusCacheMetrics
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db))

	mr := miniredis.RunT(t)

	cfg := &config.Config{
		Cache: config.CacheConfig{
			Type:        config.CacheTypeRedis,
			TTLSeconds:  3600,
			OpTimeoutMS: 250,
			Redis:       config.RedisConfig{Addr: mr.Addr(), DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1},
		},
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-with-enough-length",
			JWTIssuer:      "shopapi-test",
			JWTExpireHours: 1,
			BcryptCost:     bcrypt.MinCost,
		},
		Order: config.OrderConfig{TaxRate: 0.18, ShippingCost: 50},
	}
	configProvider := infrastructure.NewConfigProviderAdapter(cfg)
	logger := newTestLogger(t)

	cacheProvider, err := external.NewRedisCacheProvider(&cfg.Cache.Redis)
	require.NoError(t, err)
	metrics := infrastructure.NewPrometheusCacheMetrics(prometheus.NewRegistry())

	cacheAside, err := product.NewCacheAside(product.CacheAsideDependencies{
		Provider:   cacheProvider,
		Serializer: external.NewJSONSerializer(),
		Metrics:    metrics,
		Logger:     logger,
		TTL:        configProvider.GetCacheConfig().TTL,
		Timeout:    configProvider.GetCacheConfig().OpTimeout,
	})
	require.NoError(t, err)

	productRepo := database.NewProductRepositoryAdapter(db)
	userRepo := database.NewUserRepositoryAdapter(db)
	cartRepo := database.NewCartRepositoryAdapter(db)
	orderRepo := database.NewOrderRepositoryAdapter(db)

	productUseCase, err := product.NewUseCase(product.UseCaseDependencies{
		Repository: productRepo,
		Cache:      cacheAside,
		Logger:     logger,
	})
	require.NoError(t, err)

	hasher, err := external.NewBcryptHasher(cfg.Auth.BcryptCost)
	require.NoError(t, err)
	tokens, err := external.NewJWTTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, time.Hour)
	require.NoError(t, err)

	authUseCase, err := auth.NewUseCase(auth.UseCaseDependencies{
		UserRepo: userRepo,
		Hasher:   hasher,
		Tokens:   tokens,
		Logger:   logger,
	})
	require.NoError(t, err)

	cartUseCase, err := cart.NewUseCase(cart.UseCaseDependencies{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Logger:      logger,
	})
	require.NoError(t, err)

	orderUseCase, err := order.NewUseCase(order.UseCaseDependencies{
		OrderRepo:   orderRepo,
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Config:      configProvider,
		Logger:      logger,
	})
	require.NoError(t, err)

	healthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		DatabaseChecker: infrastructure.NewDatabaseHealthChecker(db),
		CacheChecker:    infrastructure.NewCacheHealthChecker(cacheProvider, "redis", time.Second),
		ConfigProvider:  configProvider,
	})
	metricsCollector := infrastructure.NewMetricsCollectorAdapter(infrastructure.MetricsCollectorConfig{
		CacheMetrics:   metrics,
		ConfigProvider: configProvider,
	})

	server, err := NewHTTPServerAdapter(ServerOptions{
		ProductUseCase:   productUseCase,
		AuthUseCase:      authUseCase,
		CartUseCase:      cartUseCase,
		OrderUseCase:     orderUseCase,
		MetricsCollector: metricsCollector,
		HealthChecker:    healthChecker,
		Logger:           logger,
		MetricsHandler:   http.NotFoundHandler(),
	})
	require.NoError(t, err)

	return &testServer{
		router:  server.GetRouter(),
		db:      db,
		redis:   mr,
		users:   userRepo,
		tokens:  tokens,
		metrics: metrics,
	}
}

// do sends a JSON request, with a bearer token when one is given
func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// register creates a user through the API and returns its token and id
func (s *testServer) register(t *testing.T, name, email string) (string, string) {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp SessionResponse
	decode(t, w, &resp)
	return resp.Token, resp.User.ID
}

// registerAdmin creates a user and promotes it to admin directly in the store
func (s *testServer) registerAdmin(t *testing.T, email string) string {
	t.Helper()

	_, id := s.register(t, "Admin", email)
	user, err := s.users.FindByID(context.Background(), id)
	require.NoError(t, err)
	user.Role = string(auth.RoleAdmin)
	require.NoError(t, s.users.Update(context.Background(), user))

	token, err := s.tokens.Issue(id, string(auth.RoleAdmin))
	require.NoError(t, err)
	return token
}

// createProduct creates a product through the API and returns it
func (s *testServer) createProduct(t *testing.T, token string, req CreateProductRequest) *product.Product {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/products", token, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp ProductResponse
	decode(t, w, &resp)
	return resp.Product
}

func sampleProduct(name string, price float64) CreateProductRequest {
	return CreateProductRequest{
		Name:        name,
		Description: name + " description",
		Price:       price,
		Image:       "https://img.example.com/" + name + ".png",
		Category:    string(product.CategoryElectronics),
		Stock:       10,
	}
}

func decode(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target), w.Body.String())
}

func newRequest(t *testing.T, method, path string) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, path, nil)
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
