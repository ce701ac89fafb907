package product

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mocks "shopapi.app/internal/mocks"
)

type jsonSerializer struct{}

func (jsonSerializer) Serialize(data interface{}) ([]byte, error) {
	return json.Marshal(data)
}

func (jsonSerializer) Deserialize(data []byte, target interface{}) error {
	return json.Unmarshal(data, target)
}

// allowLogging accepts log calls carrying up to three fields
func allowLogging(l *mocks.Logger) {
	for n := 0; n <= 3; n++ {
		fields := make([]interface{}, n)
		for i := range fields {
			fields[i] = mock.Anything
		}
		l.EXPECT().Debug(mock.Anything, fields...).Maybe()
		l.EXPECT().Info(mock.Anything, fields...).Maybe()
		l.EXPECT().Warn(mock.Anything, fields...).Maybe()
		l.EXPECT().Error(mock.Anything, fields...).Maybe()
	}
}

func allowMetrics(m *mocks.CacheMetrics) {
	m.EXPECT().RecordLookup(mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.EXPECT().RecordPopulate(mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.EXPECT().RecordInvalidation(mock.Anything, mock.Anything, mock.Anything).Maybe()
}

type useCaseFixture struct {
	uc       *UseCase
	repo     *mocks.ProductRepository
	provider *mocks.CacheProvider
	logger   *mocks.Logger
}

func newUseCaseFixture(t *testing.T) *useCaseFixture {
	t.Helper()

	repo := mocks.NewProductRepository(t)
	provider := mocks.NewCacheProvider(t)
	metrics := mocks.NewCacheMetrics(t)
	logger := mocks.NewLogger(t)
	allowLogging(logger)
	allowMetrics(metrics)

	cache, err := NewCacheAside(CacheAsideDependencies{
		Provider:   provider,
		Serializer: jsonSerializer{},
		Metrics:    metrics,
		Logger:     logger,
		TTL:        time.Hour,
		Timeout:    DefaultCacheTimeout,
	})
	require.NoError(t, err)

	uc, err := NewUseCase(UseCaseDependencies{
		Repository: repo,
		Cache:      cache,
		Logger:     logger,
	})
	require.NoError(t, err)

	return &useCaseFixture{uc: uc, repo: repo, provider: provider, logger: logger}
}

func mustJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}
