package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the workflow state of an order.
type OrderStatus string

// OrderStatusNew is assigned at checkout. Later states belong to back-office workflows.
const OrderStatusNew OrderStatus = "new"

// Order is the immutable snapshot of a checkout.
type Order struct {
	ID              int64
	UserID          int64
	DeliveryAddress string
	DeliveryDate    time.Time
	TotalAmount     decimal.Decimal // Computed once at creation.
	Status          OrderStatus
	OrderDate       time.Time
	Items           []*OrderItem
}

// OrderItem freezes the price of a service at the moment of purchase.
type OrderItem struct {
	ID              int64
	OrderID         int64
	ServiceID       int64
	ServiceName     string // Read-only, filled by queries joining services.
	Quantity        int
	PriceAtPurchase decimal.Decimal
}

// Subtotal returns PriceAtPurchase × Quantity.
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.PriceAtPurchase.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// MaxOrderTotal is the largest total the orders table can hold (NUMERIC(12,2)).
var MaxOrderTotal = decimal.RequireFromString("9999999999.99")

// OrderTotal sums the subtotals of items.
func OrderTotal(items []*OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}

	return total
}
