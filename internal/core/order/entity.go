package order

import (
	"fmt"
	"math"
	"strings"
	"time"

	"shopapi.app/pkg/validation"
)

// Status tracks fulfilment of an order
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// IsValid reports whether s is a known order status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// PaymentStatus tracks collection of payment
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// IsValid reports whether s is a known payment status
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}

const PaymentCashOnDelivery = "cash_on_delivery"

// Item is a priced order line
type Item struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// ShippingAddress is where an order is delivered
type ShippingAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

// IsValid validates shipping address
func (a *ShippingAddress) IsValid() error {
	missing := make([]string, 0, 4)
	if !validation.IsNotEmpty(a.Address) {
		missing = append(missing, "address")
	}
	if !validation.IsNotEmpty(a.City) {
		missing = append(missing, "city")
	}
	if !validation.IsNotEmpty(a.PostalCode) {
		missing = append(missing, "postalCode")
	}
	if !validation.IsNotEmpty(a.Country) {
		missing = append(missing, "country")
	}
	if len(missing) > 0 {
		return fmt.Errorf("shipping address is missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// Order is a placed purchase
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Items           []Item          `json:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	OrderStatus     Status          `json:"orderStatus"`
	Subtotal        float64         `json:"subtotal"`
	Tax             float64         `json:"tax"`
	ShippingCost    float64         `json:"shippingCost"`
	TotalAmount     float64         `json:"totalAmount"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// IsOwnedBy reports whether userID placed the order
func (o *Order) IsOwnedBy(userID string) bool {
	return o.UserID == userID
}

// Totals are the computed amounts of an order
type Totals struct {
	Subtotal     float64
	Tax          float64
	ShippingCost float64
	Total        float64
}

// ComputeTotals prices items with the given tax rate and flat shipping.
// Amounts are rounded to cents.
func ComputeTotals(items []Item, taxRate, shipping float64) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	subtotal = roundCents(subtotal)
	tax := roundCents(subtotal * taxRate)
	return Totals{
		Subtotal:     subtotal,
		Tax:          tax,
		ShippingCost: shipping,
		Total:        roundCents(subtotal + tax + shipping),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// InitialPaymentStatus is pending for cash on delivery and completed otherwise
func InitialPaymentStatus(method string) PaymentStatus {
	if method == PaymentCashOnDelivery {
		return PaymentPending
	}
	return PaymentCompleted
}

// CreateRequest places an order from the caller's cart
type CreateRequest struct {
	ShippingAddress ShippingAddress
	PaymentMethod   string
}

// StatusUpdate changes order or payment status; nil means unchanged
type StatusUpdate struct {
	OrderStatus   *string
	PaymentStatus *string
}

// IsValid validates status update
func (u *StatusUpdate) IsValid() error {
	if u.OrderStatus == nil && u.PaymentStatus == nil {
		return fmt.Errorf("orderStatus or paymentStatus is required")
	}
	if u.OrderStatus != nil && !Status(*u.OrderStatus).IsValid() {
		return fmt.Errorf("unknown order status %q", *u.OrderStatus)
	}
	if u.PaymentStatus != nil && !PaymentStatus(*u.PaymentStatus).IsValid() {
		return fmt.Errorf("unknown payment status %q", *u.PaymentStatus)
	}
	return nil
}
