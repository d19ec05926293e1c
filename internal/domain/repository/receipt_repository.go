package repository

import (
	"context"
	"errors"

	"servicehub/internal/domain/entity"
)

// ErrReceiptNotFound is returned when no receipt was stored for an order.
var ErrReceiptNotFound = errors.New("receipt not found")

// ReceiptRepository stores order receipts.
type ReceiptRepository interface {
	FindByOrderID(ctx context.Context, orderID int64) (*entity.Receipt, error)

	// Save stores the receipt unless one already exists for the order.
	Save(ctx context.Context, receipt *entity.Receipt) error
}
