package product

import (
	"fmt"
	"math"
	"strings"
	"time"

	"shopapi.app/pkg/validation"
)

// Category is the closed set of product categories
type Category string

const (
	CategoryTShirts     Category = "T-Shirts"
	CategoryElectronics Category = "Electronics"
	CategoryAccessories Category = "Accessories"
	CategoryFootwear    Category = "Footwear"
	CategoryOther       Category = "Other"
)

const (
	DefaultPage   = 1
	DefaultLimit  = 10
	MaxLimit      = 100
	DefaultRating = 5

	maxNameLength = 100
	maxRating     = 5
)

// Categories lists every valid category
func Categories() []Category {
	return []Category{CategoryTShirts, CategoryElectronics, CategoryAccessories, CategoryFootwear, CategoryOther}
}

// IsValid reports whether c is one of the known categories
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Product is a catalog entry
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Brand       string    `json:"brand,omitempty"`
	Category    Category  `json:"category"`
	Stock       int       `json:"stock"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsValid validates a complete product
func (p *Product) IsValid() error {
	if err := validateName(p.Name); err != nil {
		return err
	}
	if !validation.IsNotEmpty(p.Description) {
		return fmt.Errorf("description cannot be empty")
	}
	if !validation.IsNotEmpty(p.Image) {
		return fmt.Errorf("image cannot be empty")
	}
	if err := validatePrice(p.Price); err != nil {
		return err
	}
	if !p.Category.IsValid() {
		return fmt.Errorf("unknown category %q", p.Category)
	}
	if err := validateStock(p.Stock); err != nil {
		return err
	}
	return validateRating(p.Rating)
}

// InStock reports whether any units are available
func (p *Product) InStock() bool {
	return p.Stock > 0
}

func validateName(name string) error {
	if !validation.IsNotEmpty(name) {
		return fmt.Errorf("name cannot be empty")
	}
	if !validation.MaxLength(name, maxNameLength) {
		return fmt.Errorf("name cannot be longer than %d characters", maxNameLength)
	}
	return nil
}

func validatePrice(price float64) error {
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return fmt.Errorf("price must be a non-negative number")
	}
	return nil
}

func validateStock(stock int) error {
	if stock < 0 {
		return fmt.Errorf("stock cannot be negative")
	}
	return nil
}

func validateRating(rating float64) error {
	if rating < 0 || rating > maxRating || math.IsNaN(rating) {
		return fmt.Errorf("rating must be between 0 and %d", maxRating)
	}
	return nil
}

// CreateParams carries the fields of a new product
type CreateParams struct {
	Name        string
	Description string
	Price       float64
	Image       string
	Brand       string
	Category    string
	Stock       int
	Rating      *float64
}

// UpdateParams carries a partial update; nil fields are left unchanged
type UpdateParams struct {
	Name        *string
	Description *string
	Price       *float64
	Image       *string
	Brand       *string
	Category    *string
	Stock       *int
	Rating      *float64
}

// IsValid validates only the fields that are present
func (u UpdateParams) IsValid() error {
	if u.Name != nil {
		if err := validateName(*u.Name); err != nil {
			return err
		}
	}
	if u.Description != nil && !validation.IsNotEmpty(*u.Description) {
		return fmt.Errorf("description cannot be empty")
	}
	if u.Image != nil && !validation.IsNotEmpty(*u.Image) {
		return fmt.Errorf("image cannot be empty")
	}
	if u.Price != nil {
		if err := validatePrice(*u.Price); err != nil {
			return err
		}
	}
	if u.Category != nil && !Category(strings.TrimSpace(*u.Category)).IsValid() {
		return fmt.Errorf("unknown category %q", *u.Category)
	}
	if u.Stock != nil {
		if err := validateStock(*u.Stock); err != nil {
			return err
		}
	}
	if u.Rating != nil {
		if err := validateRating(*u.Rating); err != nil {
			return err
		}
	}
	return nil
}

// ListQuery selects one page of the catalog
type ListQuery struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

// NewListQuery returns a query for the first page with the default size
func NewListQuery() ListQuery {
	return ListQuery{Page: DefaultPage, Limit: DefaultLimit}
}

// IsValid validates list query
func (q *ListQuery) IsValid() error {
	if q.Page < 1 {
		return fmt.Errorf("page must be at least 1")
	}
	if q.Limit < 1 {
		return fmt.Errorf("limit must be at least 1")
	}
	// Offset must fit in an int
	if q.Page-1 > math.MaxInt/q.Limit {
		return fmt.Errorf("page is out of range")
	}
	if q.Category != "" && !Category(strings.TrimSpace(q.Category)).IsValid() {
		return fmt.Errorf("unknown category %q", q.Category)
	}
	return nil
}

// Normalize trims filters, lower-cases the search term and caps the limit.
// Search is case-insensitive, so case variants describe the same query.
func (q *ListQuery) Normalize() {
	q.Category = strings.TrimSpace(q.Category)
	q.Search = strings.ToLower(strings.TrimSpace(q.Search))
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
}

// Offset returns the number of records skipped before this page
func (q *ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Page is one page of catalog results
type Page struct {
	Items       []*Product `json:"items"`
	Total       int64      `json:"total"`
	PageCount   int        `json:"pageCount"`
	CurrentPage int        `json:"currentPage"`
}

// PageCount returns the number of pages needed to show total records
func PageCount(total int64, limit int) int {
	if limit < 1 || total <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}
