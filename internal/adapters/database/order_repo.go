package database

import (
	"context"

	"gorm.io/gorm"
	"shopapi.app/internal/ports"
	"shopapi.app/pkg/errors"
)

// OrderRepositoryAdapter implements the OrderRepository port using GORM
type OrderRepositoryAdapter struct {
	db *gorm.DB
}

// NewOrderRepositoryAdapter creates a new order repository adapter
func NewOrderRepositoryAdapter(db *gorm.DB) ports.OrderRepository {
	return &OrderRepositoryAdapter{db: db}
}

// Create inserts an order with its lines and fills in the generated ID and timestamps
func (r *OrderRepositoryAdapter) Create(ctx context.Context, order *ports.OrderData) error {
	if order == nil {
		return errors.NewValidationError("order cannot be nil")
	}
	if order.UserID == "" {
		return errors.NewValidationError("order user ID cannot be empty")
	}

	model := r.dataToModel(order)
	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to create order", result.Error)
	}

	*order = *r.modelToData(model)
	return nil
}

// FindByID retrieves an order with its lines
func (r *OrderRepositoryAdapter) FindByID(ctx context.Context, id string) (*ports.OrderData, error) {
	if id == "" {
		return nil, errors.NewValidationError("order ID cannot be empty")
	}

	model, err := r.first(r.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}

	return r.modelToData(model), nil
}

// FindByUserID retrieves all orders of a user, newest first
func (r *OrderRepositoryAdapter) FindByUserID(ctx context.Context, userID string) ([]*ports.OrderData, error) {
	if userID == "" {
		return nil, errors.NewValidationError("user ID cannot be empty")
	}

	var models []OrderModel
	result := r.db.WithContext(ctx).
		Scopes(preloadOrderItems).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id ASC").
		Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to find orders", result.Error)
	}

	orders := make([]*ports.OrderData, len(models))
	for i := range models {
		orders[i] = r.modelToData(&models[i])
	}

	return orders, nil
}

// UpdateStatus applies the non-nil status fields and returns the stored order
func (r *OrderRepositoryAdapter) UpdateStatus(ctx context.Context, id string, patch ports.OrderStatusPatch) (*ports.OrderData, error) {
	if id == "" {
		return nil, errors.NewValidationError("order ID cannot be empty")
	}

	var updated *OrderModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model, err := r.first(tx, id)
		if err != nil {
			return err
		}

		columns := make(map[string]interface{})
		if patch.OrderStatus != nil {
			columns["order_status"] = *patch.OrderStatus
		}
		if patch.PaymentStatus != nil {
			columns["payment_status"] = *patch.PaymentStatus
		}
		if len(columns) > 0 {
			if err := tx.Model(model).Updates(columns).Error; err != nil {
				return errors.NewDatabaseError("failed to update order status", err)
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

// Delete removes an order and its lines
func (r *OrderRepositoryAdapter) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.NewValidationError("order ID cannot be empty")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&OrderItemModel{}).Error; err != nil {
			return errors.NewDatabaseError("failed to delete order items", err)
		}

		result := tx.Delete(&OrderModel{}, "id = ?", id)
		if result.Error != nil {
			return errors.NewDatabaseError("failed to delete order", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("order not found")
		}
		return nil
	})
}

func (r *OrderRepositoryAdapter) first(db *gorm.DB, id string) (*OrderModel, error) {
	var model OrderModel
	result := db.Scopes(preloadOrderItems).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("order not found")
		}
		return nil, errors.NewDatabaseError("failed to find order by ID", result.Error)
	}
	return &model, nil
}

func preloadOrderItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") })
}

// dataToModel converts port data to database model
func (r *OrderRepositoryAdapter) dataToModel(data *ports.OrderData) *OrderModel {
	items := make([]OrderItemModel, len(data.Items))
	for i, item := range data.Items {
		items[i] = OrderItemModel{
			OrderID:     data.ID,
			Position:    i,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		}
	}

	return &OrderModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Items:           items,
		ShippingAddress: ShippingAddressModel(data.ShippingAddress),
		PaymentMethod:   data.PaymentMethod,
		PaymentStatus:   data.PaymentStatus,
		OrderStatus:     data.OrderStatus,
		Subtotal:        data.Subtotal,
		Tax:             data.Tax,
		ShippingCost:    data.ShippingCost,
		TotalAmount:     data.TotalAmount,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// modelToData converts database model to port data
func (r *OrderRepositoryAdapter) modelToData(model *OrderModel) *ports.OrderData {
	items := make([]ports.OrderItemData, len(model.Items))
	for i, item := range model.Items {
		items[i] = ports.OrderItemData{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		}
	}

	return &ports.OrderData{
		ID:              model.ID,
		UserID:          model.UserID,
		Items:           items,
		ShippingAddress: ports.ShippingAddressData(model.ShippingAddress),
		PaymentMethod:   model.PaymentMethod,
		PaymentStatus:   model.PaymentStatus,
		OrderStatus:     model.OrderStatus,
		Subtotal:        model.Subtotal,
		Tax:             model.Tax,
		ShippingCost:    model.ShippingCost,
		TotalAmount:     model.TotalAmount,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}
