package product

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mocks "shopapi.app/internal/mocks"
	"shopapi.app/internal/ports"
	"shopapi.app/pkg/errors"
)

func storedProduct() *ports.ProductData {
	return &ports.ProductData{
		ID:          "p1",
		Name:        "Wireless Mouse",
		Description: "Ergonomic mouse",
		Price:       100,
		Image:       "mouse.png",
		Category:    "Electronics",
		Stock:       10,
		Rating:      4,
		CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewUseCase_Validation(t *testing.T) {
	cache, err := NewCacheAside(CacheAsideDependencies{
		Provider:   mocks.NewCacheProvider(t),
		Serializer: jsonSerializer{},
		Metrics:    mocks.NewCacheMetrics(t),
		Logger:     mocks.NewLogger(t),
	})
	require.NoError(t, err)

	tests := []struct {
		name   string
		deps   UseCaseDependencies
		errMsg string
	}{
		{"missing repository", UseCaseDependencies{Cache: cache, Logger: mocks.NewLogger(t)}, "product repository is required"},
		{"missing cache", UseCaseDependencies{Repository: mocks.NewProductRepository(t), Logger: mocks.NewLogger(t)}, "cache is required"},
		{"missing logger", UseCaseDependencies{Repository: mocks.NewProductRepository(t), Cache: cache}, "logger is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, err := NewUseCase(tt.deps)
			assert.Nil(t, uc)
			assert.True(t, errors.IsValidationError(err))
			assert.Equal(t, tt.errMsg, errors.MessageOf(err))
		})
	}
}

func TestUseCase_Get_CacheHitSkipsStore(t *testing.T) {
	f := newUseCaseFixture(t)
	cached := fromPortsProduct(storedProduct())

	f.provider.EXPECT().Get(mock.Anything, "product:p1").Return(mustJSON(t, cached), nil)

	result, err := f.uc.Get(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, cached, result)
	f.repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUseCase_Get_MissPopulatesWithTTL(t *testing.T) {
	f := newUseCaseFixture(t)
	stored := storedProduct()

	f.provider.EXPECT().Get(mock.Anything, "product:p1").Return(nil, errors.NewNotFoundError("cache miss"))
	f.repo.EXPECT().FindByID(mock.Anything, "p1").Return(stored, nil).Once()
	f.provider.EXPECT().Set(mock.Anything, "product:p1", mustJSON(t, fromPortsProduct(stored)), 3600*time.Second).Return(nil).Once()

	result, err := f.uc.Get(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "Wireless Mouse", result.Name)
	assert.Equal(t, CategoryElectronics, result.Category)
}

func TestUseCase_Get_CacheErrorsFallBackToStore(t *testing.T) {
	f := newUseCaseFixture(t)

	f.provider.EXPECT().Get(mock.Anything, "product:p1").Return(nil, stderrors.New("dial tcp: connection refused"))
	f.repo.EXPECT().FindByID(mock.Anything, "p1").Return(storedProduct(), nil).Once()
	f.provider.EXPECT().Set(mock.Anything, "product:p1", mock.Anything, time.Hour).Return(stderrors.New("dial tcp: connection refused"))

	result, err := f.uc.Get(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "p1", result.ID)
}

func TestUseCase_Get_NotFoundIsNeverCached(t *testing.T) {
	f := newUseCaseFixture(t)

	f.provider.EXPECT().Get(mock.Anything, "product:missing").Return(nil, errors.NewNotFoundError("cache miss")).Twice()
	f.repo.EXPECT().FindByID(mock.Anything, "missing").Return(nil, errors.NewNotFoundError("product not found")).Twice()

	for i := 0; i < 2; i++ {
		result, err := f.uc.Get(context.Background(), "missing")
		assert.Nil(t, result)
		assert.True(t, errors.IsNotFoundError(err))
	}
	f.provider.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Get_StoreErrorEscalates(t *testing.T) {
	f := newUseCaseFixture(t)

	f.provider.EXPECT().Get(mock.Anything, "product:p1").Return(nil, errors.NewNotFoundError("cache miss"))
	f.repo.EXPECT().FindByID(mock.Anything, "p1").Return(nil, errors.NewDatabaseError("failed to get product", stderrors.New("broken pipe")))

	result, err := f.uc.Get(context.Background(), "p1")

	assert.Nil(t, result)
	assert.True(t, errors.IsDatabaseError(err))
	f.provider.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Get_EmptyID(t *testing.T) {
	f := newUseCaseFixture(t)

	result, err := f.uc.Get(context.Background(), "  ")

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_List_MissPopulatesListKey(t *testing.T) {
	f := newUseCaseFixture(t)
	key := "products:list:category=Electronics&limit=10&page=2&search=mouse"

	f.provider.EXPECT().Get(mock.Anything, key).Return(nil, errors.NewNotFoundError("cache miss"))
	f.repo.EXPECT().Find(mock.Anything, ports.ProductFilter{
		Category: "Electronics",
		Search:   "mouse",
		Offset:   10,
		Limit:    10,
	}).Return([]*ports.ProductData{storedProduct()}, int64(11), nil).Once()
	f.provider.EXPECT().Set(mock.Anything, key, mock.Anything, time.Hour).Return(nil).Once()

	page, err := f.uc.List(context.Background(), ListQuery{Category: "Electronics", Search: " Mouse", Page: 2, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(11), page.Total)
	assert.Equal(t, 2, page.PageCount)
	assert.Equal(t, 2, page.CurrentPage)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "p1", page.Items[0].ID)
}

func TestUseCase_List_HitSkipsStore(t *testing.T) {
	f := newUseCaseFixture(t)
	cached := &Page{Items: []*Product{fromPortsProduct(storedProduct())}, Total: 1, PageCount: 1, CurrentPage: 1}

	f.provider.EXPECT().Get(mock.Anything, "products:list:limit=10&page=1").Return(mustJSON(t, cached), nil)

	page, err := f.uc.List(context.Background(), NewListQuery())

	require.NoError(t, err)
	assert.Equal(t, cached, page)
	f.repo.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}

func TestUseCase_List_EmptyResultIsCached(t *testing.T) {
	f := newUseCaseFixture(t)
	key := "products:list:limit=10&page=1&search=nothing"

	f.provider.EXPECT().Get(mock.Anything, key).Return(nil, errors.NewNotFoundError("cache miss"))
	f.repo.EXPECT().Find(mock.Anything, mock.Anything).Return([]*ports.ProductData{}, int64(0), nil)
	f.provider.EXPECT().Set(mock.Anything, key, mock.Anything, time.Hour).Return(nil).Once()

	page, err := f.uc.List(context.Background(), ListQuery{Search: "nothing", Page: 1, Limit: 10})

	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.PageCount)
}

func TestUseCase_List_LimitIsCapped(t *testing.T) {
	f := newUseCaseFixture(t)
	key := "products:list:limit=100&page=1"

	f.provider.EXPECT().Get(mock.Anything, key).Return(nil, errors.NewNotFoundError("cache miss"))
	f.repo.EXPECT().Find(mock.Anything, ports.ProductFilter{Offset: 0, Limit: MaxLimit}).Return(nil, int64(0), nil)
	f.provider.EXPECT().Set(mock.Anything, key, mock.Anything, time.Hour).Return(nil)

	_, err := f.uc.List(context.Background(), ListQuery{Page: 1, Limit: 1000})
	require.NoError(t, err)
}

func TestUseCase_List_CacheAlwaysFailing(t *testing.T) {
	f := newUseCaseFixture(t)
	down := stderrors.New("redis: connection pool timeout")

	f.provider.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, down)
	f.provider.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(down)
	f.repo.EXPECT().Find(mock.Anything, mock.Anything).Return([]*ports.ProductData{storedProduct()}, int64(1), nil).Twice()

	for i := 0; i < 2; i++ {
		page, err := f.uc.List(context.Background(), NewListQuery())
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
	}
}

func TestUseCase_List_InvalidQueryTouchesNothing(t *testing.T) {
	f := newUseCaseFixture(t)

	for _, q := range []ListQuery{
		{Page: 0, Limit: 10},
		{Page: 1, Limit: -5},
		{Page: 1, Limit: 10, Category: "Books"},
	} {
		page, err := f.uc.List(context.Background(), q)
		assert.Nil(t, page)
		assert.True(t, errors.IsValidationError(err))
	}
}

func TestUseCase_List_StoreErrorEscalates(t *testing.T) {
	f := newUseCaseFixture(t)

	f.provider.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, errors.NewNotFoundError("cache miss"))
	f.repo.EXPECT().Find(mock.Anything, mock.Anything).Return(nil, int64(0), errors.NewDatabaseError("failed to list products", stderrors.New("timeout")))

	page, err := f.uc.List(context.Background(), NewListQuery())

	assert.Nil(t, page)
	assert.True(t, errors.IsDatabaseError(err))
}

func TestUseCase_Create_DoesNotInvalidate(t *testing.T) {
	f := newUseCaseFixture(t)

	f.repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, product *ports.ProductData) {
			product.ID = "new-id"
		}).
		Return(nil).Once()

	result, err := f.uc.Create(context.Background(), CreateParams{
		Name:        " T-Shirt ",
		Description: "Cotton",
		Price:       19.99,
		Image:       "tee.png",
	})

	require.NoError(t, err)
	assert.Equal(t, "new-id", result.ID)
	assert.Equal(t, "T-Shirt", result.Name)
	assert.Equal(t, CategoryOther, result.Category)
	assert.Equal(t, float64(DefaultRating), result.Rating)
	assert.Equal(t, 0, result.Stock)
	f.provider.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUseCase_Create_ValidationTouchesNothing(t *testing.T) {
	f := newUseCaseFixture(t)
	tooHigh := 6.0

	for _, params := range []CreateParams{
		{Name: "", Description: "d", Price: 1, Image: "i"},
		{Name: "n", Description: "", Price: 1, Image: "i"},
		{Name: "n", Description: "d", Price: 0, Image: "i"},
		{Name: "n", Description: "d", Price: 1, Image: ""},
		{Name: "n", Description: "d", Price: 1, Image: "i", Category: "Books"},
		{Name: "n", Description: "d", Price: 1, Image: "i", Stock: -1},
		{Name: "n", Description: "d", Price: 1, Image: "i", Rating: &tooHigh},
	} {
		result, err := f.uc.Create(context.Background(), params)
		assert.Nil(t, result)
		assert.True(t, errors.IsValidationError(err), "%+v", params)
	}
}

func TestUseCase_Update_InvalidatesSingleKeyOnly(t *testing.T) {
	f := newUseCaseFixture(t)
	price := 150.0
	updated := storedProduct()
	updated.Price = price

	f.repo.EXPECT().Update(mock.Anything, "p1", ports.ProductPatch{Price: &price}).Return(updated, nil).Once()
	f.provider.EXPECT().Delete(mock.Anything, "product:p1").Return(nil).Once()

	result, err := f.uc.Update(context.Background(), "p1", UpdateParams{Price: &price})

	require.NoError(t, err)
	assert.Equal(t, 150.0, result.Price)
	f.provider.AssertNumberOfCalls(t, "Delete", 1)
}

func TestUseCase_Update_InvalidationFailureStillSucceeds(t *testing.T) {
	f := newUseCaseFixture(t)
	name := "Renamed"

	f.repo.EXPECT().Update(mock.Anything, "p1", mock.Anything).Return(storedProduct(), nil)
	f.provider.EXPECT().Delete(mock.Anything, "product:p1").Return(stderrors.New("READONLY replica"))

	result, err := f.uc.Update(context.Background(), "p1", UpdateParams{Name: &name})

	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestUseCase_Update_NotFoundSkipsInvalidation(t *testing.T) {
	f := newUseCaseFixture(t)
	name := "Renamed"

	f.repo.EXPECT().Update(mock.Anything, "missing", mock.Anything).Return(nil, errors.NewNotFoundError("product not found"))

	result, err := f.uc.Update(context.Background(), "missing", UpdateParams{Name: &name})

	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
	f.provider.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUseCase_Update_ValidationTouchesNothing(t *testing.T) {
	f := newUseCaseFixture(t)
	negative := -1.0

	result, err := f.uc.Update(context.Background(), "p1", UpdateParams{Price: &negative})

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_Update_TrimsPatchValues(t *testing.T) {
	f := newUseCaseFixture(t)
	category := " Footwear "

	f.repo.EXPECT().Update(mock.Anything, "p1", mock.MatchedBy(func(patch ports.ProductPatch) bool {
		return patch.Category != nil && *patch.Category == "Footwear" && patch.Name == nil
	})).Return(storedProduct(), nil)
	f.provider.EXPECT().Delete(mock.Anything, "product:p1").Return(nil)

	_, err := f.uc.Update(context.Background(), "p1", UpdateParams{Category: &category})
	require.NoError(t, err)
}

func TestUseCase_Delete_Invalidates(t *testing.T) {
	f := newUseCaseFixture(t)

	f.repo.EXPECT().Delete(mock.Anything, "p1").Return(storedProduct(), nil).Once()
	f.provider.EXPECT().Delete(mock.Anything, "product:p1").Return(nil).Once()

	result, err := f.uc.Delete(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "p1", result.ID)
}

func TestUseCase_Delete_NotFound(t *testing.T) {
	f := newUseCaseFixture(t)

	f.repo.EXPECT().Delete(mock.Anything, "missing").Return(nil, errors.NewNotFoundError("product not found"))

	result, err := f.uc.Delete(context.Background(), "missing")

	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
	f.provider.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUseCase_Delete_StoreError(t *testing.T) {
	f := newUseCaseFixture(t)

	f.repo.EXPECT().Delete(mock.Anything, "p1").Return(nil, errors.NewDatabaseError("failed to delete product", stderrors.New("deadlock")))

	result, err := f.uc.Delete(context.Background(), "p1")

	assert.Nil(t, result)
	assert.True(t, errors.IsDatabaseError(err))
}
