package order

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shopapi.app/internal/core/auth"
	mocks "shopapi.app/internal/mocks"
	"shopapi.app/internal/ports"
	"shopapi.app/pkg/errors"
)

type fixture struct {
	uc       *UseCase
	orders   *mocks.OrderRepository
	carts    *mocks.CartRepository
	products *mocks.ProductRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	orders := mocks.NewOrderRepository(t)
	carts := mocks.NewCartRepository(t)
	products := mocks.NewProductRepository(t)
	config := mocks.NewConfigProvider(t)
	logger := mocks.NewLogger(t)

	config.EXPECT().GetOrderConfig().Return(ports.OrderConfig{TaxRate: 0.18, ShippingCost: 50}).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything, mock.Anything).Maybe()

	uc, err := NewUseCase(UseCaseDependencies{
		OrderRepo:   orders,
		CartRepo:    carts,
		ProductRepo: products,
		Config:      config,
		Logger:      logger,
	})
	require.NoError(t, err)

	return &fixture{uc: uc, orders: orders, carts: carts, products: products}
}

func address() ShippingAddress {
	return ShippingAddress{Address: "1 Main St", City: "Pune", PostalCode: "411001", Country: "IN", Phone: "555"}
}

func TestNewUseCase_Validation(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{})
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, "order repository is required", errors.MessageOf(err))

	_, err = NewUseCase(UseCaseDependencies{
		OrderRepo:   mocks.NewOrderRepository(t),
		CartRepo:    mocks.NewCartRepository(t),
		ProductRepo: mocks.NewProductRepository(t),
		Logger:      mocks.NewLogger(t),
	})
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, "config is required", errors.MessageOf(err))
}

func TestUseCase_Create_PricesAtCurrentStorePrice(t *testing.T) {
	f := newFixture(t)

	f.carts.EXPECT().FindByUserID(mock.Anything, "u1").Return(&ports.CartData{
		UserID: "u1",
		Items:  []ports.CartItemData{{ProductID: "p1", Name: "Mouse", Price: 80, Quantity: 2}},
	}, nil)
	f.products.EXPECT().FindByID(mock.Anything, "p1").Return(&ports.ProductData{ID: "p1", Name: "Mouse v2", Price: 100}, nil)
	f.orders.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, order *ports.OrderData) {
			order.ID = "o1"
		}).Return(nil)
	f.carts.EXPECT().Clear(mock.Anything, "u1").Return(nil).Once()

	order, err := f.uc.Create(context.Background(), "u1", CreateRequest{ShippingAddress: address()})

	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)
	assert.Equal(t, 200.0, order.Subtotal)
	assert.Equal(t, 36.0, order.Tax)
	assert.Equal(t, 50.0, order.ShippingCost)
	assert.Equal(t, 286.0, order.TotalAmount)
	assert.Equal(t, PaymentCashOnDelivery, order.PaymentMethod)
	assert.Equal(t, PaymentPending, order.PaymentStatus)
	assert.Equal(t, StatusPending, order.OrderStatus)
	assert.Equal(t, "Mouse v2", order.Items[0].ProductName)
}

func TestUseCase_Create_PrepaidIsCompleted(t *testing.T) {
	f := newFixture(t)

	f.carts.EXPECT().FindByUserID(mock.Anything, "u1").Return(&ports.CartData{
		Items: []ports.CartItemData{{ProductID: "p1", Quantity: 1}},
	}, nil)
	f.products.EXPECT().FindByID(mock.Anything, "p1").Return(&ports.ProductData{ID: "p1", Price: 10}, nil)
	f.orders.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.carts.EXPECT().Clear(mock.Anything, "u1").Return(stderrors.New("lock timeout"))

	order, err := f.uc.Create(context.Background(), "u1", CreateRequest{ShippingAddress: address(), PaymentMethod: "card"})

	require.NoError(t, err)
	assert.Equal(t, PaymentCompleted, order.PaymentStatus)
}

func TestUseCase_Create_EmptyCart(t *testing.T) {
	f := newFixture(t)
	f.carts.EXPECT().FindByUserID(mock.Anything, "u1").Return(nil, errors.NewNotFoundError("cart not found"))

	_, err := f.uc.Create(context.Background(), "u1", CreateRequest{ShippingAddress: address()})

	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, "cart is empty", errors.MessageOf(err))
}

func TestUseCase_Create_MissingAddress(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(context.Background(), "u1", CreateRequest{})

	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_Create_ProductGone(t *testing.T) {
	f := newFixture(t)

	f.carts.EXPECT().FindByUserID(mock.Anything, "u1").Return(&ports.CartData{
		Items: []ports.CartItemData{{ProductID: "gone", Quantity: 1}},
	}, nil)
	f.products.EXPECT().FindByID(mock.Anything, "gone").Return(nil, errors.NewNotFoundError("product not found"))

	_, err := f.uc.Create(context.Background(), "u1", CreateRequest{ShippingAddress: address()})

	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_Get_Access(t *testing.T) {
	f := newFixture(t)
	f.orders.EXPECT().FindByID(mock.Anything, "o1").Return(&ports.OrderData{ID: "o1", UserID: "owner"}, nil)

	order, err := f.uc.Get(context.Background(), "owner", auth.RoleUser, "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)

	_, err = f.uc.Get(context.Background(), "admin-id", auth.RoleAdmin, "o1")
	assert.NoError(t, err)

	_, err = f.uc.Get(context.Background(), "stranger", auth.RoleUser, "o1")
	assert.True(t, errors.IsForbiddenError(err))
}

func TestUseCase_Get_NotFound(t *testing.T) {
	f := newFixture(t)
	f.orders.EXPECT().FindByID(mock.Anything, "o9").Return(nil, errors.NewNotFoundError("order not found"))

	_, err := f.uc.Get(context.Background(), "u1", auth.RoleUser, "o9")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUseCase_UpdateStatus(t *testing.T) {
	shipped := "shipped"

	t.Run("admin only", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.UpdateStatus(context.Background(), auth.RoleUser, "o1", StatusUpdate{OrderStatus: &shipped})
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("invalid status", func(t *testing.T) {
		f := newFixture(t)
		bogus := "lost"
		_, err := f.uc.UpdateStatus(context.Background(), auth.RoleAdmin, "o1", StatusUpdate{OrderStatus: &bogus})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.orders.EXPECT().UpdateStatus(mock.Anything, "o1", ports.OrderStatusPatch{OrderStatus: &shipped}).
			Return(&ports.OrderData{ID: "o1", OrderStatus: "shipped"}, nil)

		order, err := f.uc.UpdateStatus(context.Background(), auth.RoleAdmin, "o1", StatusUpdate{OrderStatus: &shipped})
		require.NoError(t, err)
		assert.Equal(t, StatusShipped, order.OrderStatus)
	})
}

func TestUseCase_Cancel(t *testing.T) {
	t.Run("pending owner", func(t *testing.T) {
		f := newFixture(t)
		f.orders.EXPECT().FindByID(mock.Anything, "o1").Return(&ports.OrderData{ID: "o1", UserID: "u1", OrderStatus: "pending"}, nil)
		f.orders.EXPECT().Delete(mock.Anything, "o1").Return(nil).Once()

		assert.NoError(t, f.uc.Cancel(context.Background(), "u1", "o1"))
	})

	t.Run("other user", func(t *testing.T) {
		f := newFixture(t)
		f.orders.EXPECT().FindByID(mock.Anything, "o1").Return(&ports.OrderData{ID: "o1", UserID: "u1", OrderStatus: "pending"}, nil)

		err := f.uc.Cancel(context.Background(), "u2", "o1")
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("already shipped", func(t *testing.T) {
		f := newFixture(t)
		f.orders.EXPECT().FindByID(mock.Anything, "o1").Return(&ports.OrderData{ID: "o1", UserID: "u1", OrderStatus: "shipped"}, nil)

		err := f.uc.Cancel(context.Background(), "u1", "o1")
		assert.True(t, errors.IsValidationError(err))
		assert.Equal(t, "can only cancel pending orders", errors.MessageOf(err))
	})
}

func TestUseCase_List(t *testing.T) {
	f := newFixture(t)
	f.orders.EXPECT().FindByUserID(mock.Anything, "u1").Return([]*ports.OrderData{{ID: "o1"}, {ID: "o2"}}, nil)

	orders, err := f.uc.List(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
