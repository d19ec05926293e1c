package usecase

import (
	"context"

	"servicehub/internal/domain/service"
)

// ReceiptUsecase turns placed orders into stored QR receipts.
type ReceiptUsecase interface {
	// ProcessOrderPlaced stores the receipt of the order named by the event.
	// Processing the same event twice keeps the first receipt.
	ProcessOrderPlaced(ctx context.Context, event *service.OrderPlacedEvent) error
}
