package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductModel represents the database model for catalog products
type ProductModel struct {
	ID          string  `gorm:"primaryKey;type:varchar(36)"`
	Name        string  `gorm:"size:100;not null"`
	Description string  `gorm:"not null"`
	Price       float64 `gorm:"not null"`
	Image       string  `gorm:"not null"`
	Brand       string
	Category    string  `gorm:"size:32;index;not null"`
	Stock       int     `gorm:"not null"`
	Rating      float64 `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProductModel) TableName() string {
	return "products"
}

func (m *ProductModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// UserModel represents the database model for users
type UserModel struct {
	ID           string `gorm:"primaryKey;type:varchar(36)"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Phone        string
	Address      string
	Role         string `gorm:"size:16;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// CartModel represents the database model for a user's cart
type CartModel struct {
	ID         string          `gorm:"primaryKey;type:varchar(36)"`
	UserID     string          `gorm:"uniqueIndex;type:varchar(36);not null"`
	Items      []CartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	TotalPrice float64         `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (CartModel) TableName() string {
	return "carts"
}

func (m *CartModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// CartItemModel is one line of a cart; Position keeps insertion order
type CartItemModel struct {
	ID        uint   `gorm:"primaryKey"`
	CartID    string `gorm:"index;type:varchar(36);not null"`
	Position  int    `gorm:"not null"`
	ProductID string `gorm:"type:varchar(36);not null"`
	Name      string `gorm:"not null"`
	Image     string
	Price     float64 `gorm:"not null"`
	Quantity  int     `gorm:"not null"`
}

func (CartItemModel) TableName() string {
	return "cart_items"
}

// OrderModel represents the database model for orders
type OrderModel struct {
	ID              string               `gorm:"primaryKey;type:varchar(36)"`
	UserID          string               `gorm:"index;type:varchar(36);not null"`
	Items           []OrderItemModel     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	ShippingAddress ShippingAddressModel `gorm:"embedded;embeddedPrefix:shipping_"`
	PaymentMethod   string               `gorm:"size:32;not null"`
	PaymentStatus   string               `gorm:"size:16;not null"`
	OrderStatus     string               `gorm:"size:16;index;not null"`
	Subtotal        float64              `gorm:"not null"`
	Tax             float64              `gorm:"not null"`
	ShippingCost    float64              `gorm:"not null"`
	TotalAmount     float64              `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}

func (m *OrderModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// ShippingAddressModel is embedded into the orders table
type ShippingAddressModel struct {
	Address    string
	City       string
	PostalCode string
	Country    string
	Phone      string
}

// OrderItemModel is one priced line of an order
type OrderItemModel struct {
	ID          uint    `gorm:"primaryKey"`
	OrderID     string  `gorm:"index;type:varchar(36);not null"`
	Position    int     `gorm:"not null"`
	ProductID   string  `gorm:"type:varchar(36);not null"`
	ProductName string  `gorm:"not null"`
	Quantity    int     `gorm:"not null"`
	Price       float64 `gorm:"not null"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}

// Models lists every table owned by this package, in migration order
func Models() []interface{} {
	return []interface{}{
		&ProductModel{},
		&UserModel{},
		&CartModel{},
		&CartItemModel{},
		&OrderModel{},
		&OrderItemModel{},
	}
}

// Migrate creates or updates the schema for all models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
