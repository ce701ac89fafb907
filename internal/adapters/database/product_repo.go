package database

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"shopapi.app/internal/ports"
	"shopapi.app/pkg/errors"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ProductRepositoryAdapter implements the ProductRepository port using GORM
type ProductRepositoryAdapter struct {
	db *gorm.DB
}

// NewProductRepositoryAdapter creates a new product repository adapter
func NewProductRepositoryAdapter(db *gorm.DB) ports.ProductRepository {
	return &ProductRepositoryAdapter{db: db}
}

// Find returns one page of products matching the filter together with the total match count
func (r *ProductRepositoryAdapter) Find(ctx context.Context, filter ports.ProductFilter) ([]*ports.ProductData, int64, error) {
	if filter.Offset < 0 {
		return nil, 0, errors.NewValidationError("offset cannot be negative")
	}
	if filter.Limit < 1 {
		return nil, 0, errors.NewValidationError("limit must be at least 1")
	}

	scope := productFilterScope(filter)

	var total int64
	result := r.db.WithContext(ctx).Model(&ProductModel{}).Scopes(scope).Count(&total)
	if result.Error != nil {
		return nil, 0, errors.NewDatabaseError("failed to count products", result.Error)
	}

	var models []ProductModel
	result = r.db.WithContext(ctx).
		Scopes(scope).
		Order("created_at ASC").
		Order("id ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&models)
	if result.Error != nil {
		return nil, 0, errors.NewDatabaseError("failed to find products", result.Error)
	}

	products := make([]*ports.ProductData, len(models))
	for i := range models {
		products[i] = r.modelToData(&models[i])
	}

	return products, total, nil
}

// FindByID retrieves a product by its ID
func (r *ProductRepositoryAdapter) FindByID(ctx context.Context, id string) (*ports.ProductData, error) {
	if id == "" {
		return nil, errors.NewValidationError("product ID cannot be empty")
	}

	model, err := r.first(r.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}

	return r.modelToData(model), nil
}

// Create inserts a product and fills in its generated ID and timestamps
func (r *ProductRepositoryAdapter) Create(ctx context.Context, product *ports.ProductData) error {
	if product == nil {
		return errors.NewValidationError("product cannot be nil")
	}

	model := r.dataToModel(product)
	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to create product", result.Error)
	}

	*product = *r.modelToData(model)
	return nil
}

// Update applies the non-nil patch fields to an existing product and returns the stored result
func (r *ProductRepositoryAdapter) Update(ctx context.Context, id string, patch ports.ProductPatch) (*ports.ProductData, error) {
	if id == "" {
		return nil, errors.NewValidationError("product ID cannot be empty")
	}

	var updated *ProductModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model, err := r.first(tx, id)
		if err != nil {
			return err
		}

		if !patch.IsEmpty() {
			result := tx.Model(model).Updates(patchColumns(patch))
			if result.Error != nil {
				return errors.NewDatabaseError("failed to update product", result.Error)
			}
		}

		updated, err = r.first(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return r.modelToData(updated), nil
}

// Delete removes a product and returns the record as it was before removal
func (r *ProductRepositoryAdapter) Delete(ctx context.Context, id string) (*ports.ProductData, error) {
	if id == "" {
		return nil, errors.NewValidationError("product ID cannot be empty")
	}

	var deleted *ProductModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model, err := r.first(tx, id)
		if err != nil {
			return err
		}

		result := tx.Delete(&ProductModel{}, "id = ?", id)
		if result.Error != nil {
			return errors.NewDatabaseError("failed to delete product", result.Error)
		}

		deleted = model
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.modelToData(deleted), nil
}

func (r *ProductRepositoryAdapter) first(db *gorm.DB, id string) (*ProductModel, error) {
	var model ProductModel
	result := db.Where("id = ?", id).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("product not found")
		}
		return nil, errors.NewDatabaseError("failed to find product by ID", result.Error)
	}
	return &model, nil
}

// productFilterScope applies category equality and a case-insensitive name/description search
func productFilterScope(filter ports.ProductFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Category != "" {
			db = db.Where("category = ?", filter.Category)
		}
		if filter.Search != "" {
			pattern := "%" + likeEscaper.Replace(strings.ToLower(filter.Search)) + "%"
			db = db.Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, pattern, pattern)
		}
		return db
	}
}

// patchColumns maps the set patch fields to column updates so zero values are written too
func patchColumns(patch ports.ProductPatch) map[string]interface{} {
	columns := make(map[string]interface{})
	if patch.Name != nil {
		columns["name"] = *patch.Name
	}
	if patch.Description != nil {
		columns["description"] = *patch.Description
	}
	if patch.Price != nil {
		columns["price"] = *patch.Price
	}
	if patch.Image != nil {
		columns["image"] = *patch.Image
	}
	if patch.Brand != nil {
		columns["brand"] = *patch.Brand
	}
	if patch.Category != nil {
		columns["category"] = *patch.Category
	}
	if patch.Stock != nil {
		columns["stock"] = *patch.Stock
	}
	if patch.Rating != nil {
		columns["rating"] = *patch.Rating
	}
	return columns
}

// dataToModel converts port data to database model
func (r *ProductRepositoryAdapter) dataToModel(data *ports.ProductData) *ProductModel {
	return &ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Image:       data.Image,
		Brand:       data.Brand,
		Category:    data.Category,
		Stock:       data.Stock,
		Rating:      data.Rating,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// modelToData converts database model to port data
func (r *ProductRepositoryAdapter) modelToData(model *ProductModel) *ports.ProductData {
	return &ports.ProductData{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Price:       model.Price,
		Image:       model.Image,
		Brand:       model.Brand,
		Category:    model.Category,
		Stock:       model.Stock,
		Rating:      model.Rating,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
