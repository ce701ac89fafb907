package database

import (
	"context"

	"gorm.io/gorm"
	"shopapi.app/internal/ports"
	"shopapi.app/pkg/errors"
)

// CartRepositoryAdapter implements the CartRepository port using GORM
type CartRepositoryAdapter struct {
	db *gorm.DB
}

// NewCartRepositoryAdapter creates a new cart repository adapter
func NewCartRepositoryAdapter(db *gorm.DB) ports.CartRepository {
	return &CartRepositoryAdapter{db: db}
}

// FindByUserID retrieves the cart of a user with its lines in insertion order
func (r *CartRepositoryAdapter) FindByUserID(ctx context.Context, userID string) (*ports.CartData, error) {
	if userID == "" {
		return nil, errors.NewValidationError("user ID cannot be empty")
	}

	var model CartModel
	result := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("user_id = ?", userID).
		First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("cart not found")
		}
		return nil, errors.NewDatabaseError("failed to find cart", result.Error)
	}

	return r.modelToData(&model), nil
}

// Save creates or replaces a cart together with all of its lines
func (r *CartRepositoryAdapter) Save(ctx context.Context, cart *ports.CartData) error {
	if cart == nil {
		return errors.NewValidationError("cart cannot be nil")
	}
	if cart.UserID == "" {
		return errors.NewValidationError("cart user ID cannot be empty")
	}

	model := r.dataToModel(cart)
	items := model.Items
	model.Items = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var result *gorm.DB
		if model.ID == "" {
			result = tx.Create(model)
		} else {
			result = tx.Save(model)
		}
		if result.Error != nil {
			return errors.NewDatabaseError("failed to save cart", result.Error)
		}

		if err := tx.Where("cart_id = ?", model.ID).Delete(&CartItemModel{}).Error; err != nil {
			return errors.NewDatabaseError("failed to replace cart items", err)
		}

		for i := range items {
			items[i].ID = 0
			items[i].CartID = model.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return errors.NewDatabaseError("failed to save cart items", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	cart.ID = model.ID
	cart.CreatedAt = model.CreatedAt
	cart.UpdatedAt = model.UpdatedAt
	return nil
}

// Clear removes every line from the user's cart; a missing cart is not an error
func (r *CartRepositoryAdapter) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return errors.NewValidationError("user ID cannot be empty")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model CartModel
		result := tx.Where("user_id = ?", userID).Limit(1).Find(&model)
		if result.Error != nil {
			return errors.NewDatabaseError("failed to find cart", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}

		if err := tx.Where("cart_id = ?", model.ID).Delete(&CartItemModel{}).Error; err != nil {
			return errors.NewDatabaseError("failed to clear cart items", err)
		}
		if err := tx.Model(&model).Update("total_price", 0).Error; err != nil {
			return errors.NewDatabaseError("failed to clear cart", err)
		}
		return nil
	})
}

// dataToModel converts port data to database model
func (r *CartRepositoryAdapter) dataToModel(data *ports.CartData) *CartModel {
	items := make([]CartItemModel, len(data.Items))
	for i, item := range data.Items {
		items[i] = CartItemModel{
			CartID:    data.ID,
			Position:  i,
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}

	return &CartModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Items:      items,
		TotalPrice: data.TotalPrice,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// modelToData converts database model to port data
func (r *CartRepositoryAdapter) modelToData(model *CartModel) *ports.CartData {
	items := make([]ports.CartItemData, len(model.Items))
	for i, item := range model.Items {
		items[i] = ports.CartItemData{
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}

	return &ports.CartData{
		ID:         model.ID,
		UserID:     model.UserID,
		Items:      items,
		TotalPrice: model.TotalPrice,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}
