package ports

import (
	"context"
	"time"
)

// OrderItemData is a priced line of an order
type OrderItemData struct {
	ProductID   string
	ProductName string
	Quantity    int
	Price       float64
}

// ShippingAddressData represents the shipping destination of an order
type ShippingAddressData struct {
	Address    string
	City       string
	PostalCode string
	Country    string
	Phone      string
}

// OrderData represents order data for persistence
type OrderData struct {
	ID              string
	UserID          string
	Items           []OrderItemData
	ShippingAddress ShippingAddressData
	PaymentMethod   string
	PaymentStatus   string
	OrderStatus     string
	Subtotal        float64
	Tax             float64
	ShippingCost    float64
	TotalAmount     float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderStatusPatch carries status changes; nil means unchanged
type OrderStatusPatch struct {
	OrderStatus   *string
	PaymentStatus *string
}

// OrderRepository defines the contract for order data persistence
type OrderRepository interface {
	Create(ctx context.Context, order *OrderData) error
	FindByID(ctx context.Context, id string) (*OrderData, error)
	FindByUserID(ctx context.Context, userID string) ([]*OrderData, error)
	UpdateStatus(ctx context.Context, id string, patch OrderStatusPatch) (*OrderData, error)
	Delete(ctx context.Context, id string) error
}
