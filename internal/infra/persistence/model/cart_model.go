package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartModel mirrors the 'carts' table. user_id is unique: one cart per user.
type CartModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	UserID    int64 `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table, unique on (cart_id, service_id).
type CartItemModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	CartID    int64 `gorm:"uniqueIndex:uq_cart_items_cart_service;not null"`
	ServiceID int64 `gorm:"uniqueIndex:uq_cart_items_cart_service;not null"`
	Quantity  int   `gorm:"not null;default:1"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

// CartLineRow is the projection of a cart item joined with its service.
type CartLineRow struct {
	CartItemID int64
	ServiceID  int64
	Quantity   int
	Name       string
	Price      decimal.Decimal
	Duration   string
	ImageURL   string
}
