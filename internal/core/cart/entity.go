package cart

import (
	"fmt"
	"strings"
	"time"
)

// Item is one product line of a cart. Price is the unit price when the line
// was first added.
type Item struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Subtotal returns price times quantity
func (i Item) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Cart holds the items a user intends to order
type Cart struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Items      []Item    `json:"items"`
	TotalPrice float64   `json:"totalPrice"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// IsEmpty reports whether the cart has no items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Add merges item into the cart, adding to the quantity of an existing line
func (c *Cart) Add(item Item) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			c.recalculate()
			return
		}
	}
	c.Items = append(c.Items, item)
	c.recalculate()
}

// SetQuantity replaces the quantity of a line. It reports false when the
// product is not in the cart.
func (c *Cart) SetQuantity(productID string, quantity int) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			c.recalculate()
			return true
		}
	}
	return false
}

// Remove drops the line for productID if present
func (c *Cart) Remove(productID string) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
	c.recalculate()
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.Items = []Item{}
	c.recalculate()
}

func (c *Cart) recalculate() {
	var total float64
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	c.TotalPrice = total
}

// AddItemRequest asks to put quantity units of a product into the cart
type AddItemRequest struct {
	ProductID string
	Quantity  int
}

// IsValid validates add item request
func (r *AddItemRequest) IsValid() error {
	if strings.TrimSpace(r.ProductID) == "" || r.Quantity == 0 {
		return fmt.Errorf("please provide product ID and quantity")
	}
	return validateQuantity(r.Quantity)
}

func validateQuantity(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}
	return nil
}
