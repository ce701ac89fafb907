package order

import (
	"context"
	"fmt"
	"strings"

	"shopapi.app/internal/core/auth"
	"shopapi.app/internal/ports"
	"shopapi.app/pkg/errors"
)

type UseCase struct {
	orders   ports.OrderRepository
	carts    ports.CartRepository
	products ports.ProductRepository
	config   ports.ConfigProvider
	logger   ports.Logger
}

type UseCaseDependencies struct {
	OrderRepo   ports.OrderRepository
	CartRepo    ports.CartRepository
	ProductRepo ports.ProductRepository
	Config      ports.ConfigProvider
	Logger      ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.OrderRepo == nil {
		return nil, errors.NewValidationError("order repository is required")
	}
	if deps.CartRepo == nil {
		return nil, errors.NewValidationError("cart repository is required")
	}
	if deps.ProductRepo == nil {
		return nil, errors.NewValidationError("product repository is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		orders:   deps.OrderRepo,
		carts:    deps.CartRepo,
		products: deps.ProductRepo,
		config:   deps.Config,
		logger:   deps.Logger,
	}, nil
}

// Create turns the user's cart into an order priced at current catalog
// prices, then empties the cart.
func (uc *UseCase) Create(ctx context.Context, userID string, req CreateRequest) (*Order, error) {
	if err := req.ShippingAddress.IsValid(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	cart, err := uc.carts.FindByUserID(ctx, userID)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, errors.NewValidationError("cart is empty")
	}

	items := make([]Item, 0, len(cart.Items))
	for _, line := range cart.Items {
		product, err := uc.products.FindByID(ctx, line.ProductID)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewValidationError(fmt.Sprintf("product %s is no longer available", line.ProductID))
			}
			return nil, fmt.Errorf("get product %s: %w", line.ProductID, err)
		}
		items = append(items, Item{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			Price:       product.Price,
		})
	}

	pricing := uc.config.GetOrderConfig()
	totals := ComputeTotals(items, pricing.TaxRate, pricing.ShippingCost)

	method := strings.TrimSpace(req.PaymentMethod)
	if method == "" {
		method = PaymentCashOnDelivery
	}

	order := &Order{
		UserID:          userID,
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   method,
		PaymentStatus:   InitialPaymentStatus(method),
		OrderStatus:     StatusPending,
		Subtotal:        totals.Subtotal,
		Tax:             totals.Tax,
		ShippingCost:    totals.ShippingCost,
		TotalAmount:     totals.Total,
	}

	data := toPortsOrder(order)
	if err := uc.orders.Create(ctx, data); err != nil {
		uc.logger.Error("Failed to create order",
			ports.F("userID", userID),
			ports.F("error", err))
		return nil, fmt.Errorf("create order: %w", err)
	}

	if err := uc.carts.Clear(ctx, userID); err != nil {
		uc.logger.Warn("Order placed but cart was not cleared",
			ports.F("orderID", data.ID),
			ports.F("error", err))
	}

	uc.logger.Info("Order created",
		ports.F("orderID", data.ID),
		ports.F("total", data.TotalAmount))
	return fromPortsOrder(data), nil
}

func (uc *UseCase) List(ctx context.Context, userID string) ([]*Order, error) {
	data, err := uc.orders.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	orders := make([]*Order, 0, len(data))
	for _, d := range data {
		orders = append(orders, fromPortsOrder(d))
	}
	return orders, nil
}

// Get returns an order to its owner or to an admin
func (uc *UseCase) Get(ctx context.Context, userID string, role auth.Role, id string) (*Order, error) {
	order, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.IsOwnedBy(userID) && role != auth.RoleAdmin {
		return nil, errors.NewForbiddenError("not authorized to access this order")
	}
	return order, nil
}

// UpdateStatus is restricted to admins
func (uc *UseCase) UpdateStatus(ctx context.Context, role auth.Role, id string, update StatusUpdate) (*Order, error) {
	if role != auth.RoleAdmin {
		return nil, errors.NewForbiddenError("not authorized to update order status")
	}
	if err := update.IsValid(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	data, err := uc.orders.UpdateStatus(ctx, id, ports.OrderStatusPatch{
		OrderStatus:   update.OrderStatus,
		PaymentStatus: update.PaymentStatus,
	})
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("order not found")
		}
		return nil, fmt.Errorf("update order %s: %w", id, err)
	}
	return fromPortsOrder(data), nil
}

// Cancel deletes a pending order owned by userID
func (uc *UseCase) Cancel(ctx context.Context, userID, id string) error {
	order, err := uc.find(ctx, id)
	if err != nil {
		return err
	}
	if !order.IsOwnedBy(userID) {
		return errors.NewForbiddenError("not authorized to delete this order")
	}
	if order.OrderStatus != StatusPending {
		return errors.NewValidationError("can only cancel pending orders")
	}

	if err := uc.orders.Delete(ctx, id); err != nil {
		return fmt.Errorf("cancel order %s: %w", id, err)
	}
	uc.logger.Info("Order cancelled", ports.F("orderID", id))
	return nil
}

func (uc *UseCase) find(ctx context.Context, id string) (*Order, error) {
	data, err := uc.orders.FindByID(ctx, id)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("order not found")
		}
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return fromPortsOrder(data), nil
}

func toPortsOrder(o *Order) *ports.OrderData {
	items := make([]ports.OrderItemData, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, ports.OrderItemData(item))
	}
	return &ports.OrderData{
		ID:              o.ID,
		UserID:          o.UserID,
		Items:           items,
		ShippingAddress: ports.ShippingAddressData(o.ShippingAddress),
		PaymentMethod:   o.PaymentMethod,
		PaymentStatus:   string(o.PaymentStatus),
		OrderStatus:     string(o.OrderStatus),
		Subtotal:        o.Subtotal,
		Tax:             o.Tax,
		ShippingCost:    o.ShippingCost,
		TotalAmount:     o.TotalAmount,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func fromPortsOrder(d *ports.OrderData) *Order {
	items := make([]Item, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, Item(item))
	}
	return &Order{
		ID:              d.ID,
		UserID:          d.UserID,
		Items:           items,
		ShippingAddress: ShippingAddress(d.ShippingAddress),
		PaymentMethod:   d.PaymentMethod,
		PaymentStatus:   PaymentStatus(d.PaymentStatus),
		OrderStatus:     Status(d.OrderStatus),
		Subtotal:        d.Subtotal,
		Tax:             d.Tax,
		ShippingCost:    d.ShippingCost,
		TotalAmount:     d.TotalAmount,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}
