package ports

import (
	"context"
	"time"
)

// CartItemData is one cart line; Price is the unit price captured when added
type CartItemData struct {
	ProductID string
	Name      string
	Image     string
	Price     float64
	Quantity  int
}

// CartData represents a user's cart for persistence
type CartData struct {
	ID         string
	UserID     string
	Items      []CartItemData
	TotalPrice float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CartRepository defines the contract for cart data persistence
type CartRepository interface {
	FindByUserID(ctx context.Context, userID string) (*CartData, error)
	Save(ctx context.Context, cart *CartData) error
	Clear(ctx context.Context, userID string) error
}
