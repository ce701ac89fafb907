package cart

import (
	"context"
	"fmt"
	"strings"

	"shopapi.app/internal/ports"
	"shopapi.app/pkg/errors"
)

// UseCase manages the single cart each user owns. Product details are read
// from the catalog store directly so captured prices are never stale.
type UseCase struct {
	carts    ports.CartRepository
	products ports.ProductRepository
	logger   ports.Logger
}

type UseCaseDependencies struct {
	CartRepo    ports.CartRepository
	ProductRepo ports.ProductRepository
	Logger      ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.CartRepo == nil {
		return nil, errors.NewValidationError("cart repository is required")
	}
	if deps.ProductRepo == nil {
		return nil, errors.NewValidationError("product repository is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		carts:    deps.CartRepo,
		products: deps.ProductRepo,
		logger:   deps.Logger,
	}, nil
}

// Get returns the user's cart, creating an empty one on first access
func (uc *UseCase) Get(ctx context.Context, userID string) (*Cart, error) {
	cart, err := uc.load(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.IsNotFoundError(err) {
		return nil, err
	}

	data := &ports.CartData{UserID: userID, Items: []ports.CartItemData{}}
	if err := uc.carts.Save(ctx, data); err != nil {
		return nil, fmt.Errorf("create cart: %w", err)
	}
	uc.logger.Debug("Cart created", ports.F("userID", userID))
	return fromPortsCart(data), nil
}

func (uc *UseCase) Add(ctx context.Context, userID string, req AddItemRequest) (*Cart, error) {
	if err := req.IsValid(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	productID := strings.TrimSpace(req.ProductID)

	product, err := uc.products.FindByID(ctx, productID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("product not found")
		}
		return nil, fmt.Errorf("get product %s: %w", productID, err)
	}

	cart, err := uc.load(ctx, userID)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}
	if cart == nil {
		cart = &Cart{UserID: userID, Items: []Item{}}
	}

	cart.Add(Item{
		ProductID: product.ID,
		Name:      product.Name,
		Image:     product.Image,
		Price:     product.Price,
		Quantity:  req.Quantity,
	})
	return uc.save(ctx, cart)
}

func (uc *UseCase) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*Cart, error) {
	if err := validateQuantity(quantity); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	cart, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !cart.SetQuantity(productID, quantity) {
		return nil, errors.NewNotFoundError("item not found in cart")
	}
	return uc.save(ctx, cart)
}

func (uc *UseCase) Remove(ctx context.Context, userID, productID string) (*Cart, error) {
	cart, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	cart.Remove(productID)
	return uc.save(ctx, cart)
}

func (uc *UseCase) Clear(ctx context.Context, userID string) error {
	if err := uc.carts.Clear(ctx, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (uc *UseCase) load(ctx context.Context, userID string) (*Cart, error) {
	data, err := uc.carts.FindByUserID(ctx, userID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("cart not found")
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return fromPortsCart(data), nil
}

func (uc *UseCase) save(ctx context.Context, cart *Cart) (*Cart, error) {
	data := toPortsCart(cart)
	if err := uc.carts.Save(ctx, data); err != nil {
		uc.logger.Error("Failed to save cart",
			ports.F("userID", cart.UserID),
			ports.F("error", err))
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return fromPortsCart(data), nil
}

func toPortsCart(cart *Cart) *ports.CartData {
	items := make([]ports.CartItemData, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, ports.CartItemData{
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}
	return &ports.CartData{
		ID:         cart.ID,
		UserID:     cart.UserID,
		Items:      items,
		TotalPrice: cart.TotalPrice,
		UpdatedAt:  cart.UpdatedAt,
	}
}

func fromPortsCart(data *ports.CartData) *Cart {
	cart := &Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		Items:     make([]Item, 0, len(data.Items)),
		UpdatedAt: data.UpdatedAt,
	}
	for _, item := range data.Items {
		cart.Items = append(cart.Items, Item{
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}
	cart.recalculate()
	return cart
}
