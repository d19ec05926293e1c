package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	UserID          int64           `gorm:"not null;index"`
	DeliveryAddress string          `gorm:"type:text;not null"`
	DeliveryDate    time.Time       `gorm:"type:date;not null"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status          string          `gorm:"type:varchar(30);not null;default:new"`
	OrderDate       time.Time       `gorm:"autoCreateTime"`

	Items []*OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	OrderID         int64           `gorm:"not null;index"`
	ServiceID       int64           `gorm:"not null"`
	Quantity        int             `gorm:"not null"`
	PriceAtPurchase decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	Service *ServiceModel `gorm:"foreignKey:ServiceID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
