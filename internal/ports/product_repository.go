package ports

import (
	"context"
	"time"
)

// ProductData represents product data for persistence
type ProductData struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Image       string
	Brand       string
	Category    string
	Stock       int
	Rating      float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductFilter selects a page of products. Empty strings match everything.
type ProductFilter struct {
	Category string
	Search   string
	Offset   int
	Limit    int
}

// ProductPatch carries the fields of a partial update; nil means unchanged
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Image       *string
	Brand       *string
	Category    *string
	Stock       *int
	Rating      *float64
}

// IsEmpty reports whether the patch changes nothing
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil && p.Image == nil &&
		p.Brand == nil && p.Category == nil && p.Stock == nil && p.Rating == nil
}

// ProductRepository defines the contract for the authoritative product store
type ProductRepository interface {
	Find(ctx context.Context, filter ProductFilter) ([]*ProductData, int64, error)
	FindByID(ctx context.Context, id string) (*ProductData, error)
	Create(ctx context.Context, product *ProductData) error
	Update(ctx context.Context, id string, patch ProductPatch) (*ProductData, error)
	Delete(ctx context.Context, id string) (*ProductData, error)
}
