package usecase

import (
	"context"

	"servicehub/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// OrderItemInput is one line of a checkout request.
// Price is the price the client displayed; nil means "take the catalog price".
type OrderItemInput struct {
	ServiceID int64
	Quantity  int
	Price     *decimal.Decimal
}

// CreateOrderInput defines the data required to place an order.
// DeliveryDate accepts "2006-01-02" or RFC3339.
type CreateOrderInput struct {
	UserID          int64
	Items           []OrderItemInput
	DeliveryAddress string
	DeliveryDate    string
}

// CreateOrderOutput identifies the placed order.
type CreateOrderOutput struct {
	OrderID     int64
	TotalAmount decimal.Decimal
}

// OrderUsecase defines checkout and order history operations.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*CreateOrderOutput, error)
	ListOrders(ctx context.Context, userID int64) ([]*entity.Order, error)

	// GetReceipt returns the QR receipt of one of the user's orders.
	GetReceipt(ctx context.Context, userID, orderID int64) (*entity.Receipt, error)
}
