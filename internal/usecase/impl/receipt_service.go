package impl

import (
	"context"
	"log/slog"

	deliverycontext "servicehub/internal/delivery/context"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/domain/service"
	"servicehub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// receiptService implements the ReceiptUsecase interface.
type receiptService struct {
	orderRepo   repository.OrderRepository
	receiptRepo repository.ReceiptRepository
	encoder     service.ReceiptEncoder
	logger      *slog.Logger
}

// ReceiptServiceParams holds dependencies for ReceiptService, injected by Fx.
type ReceiptServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	ReceiptRepo repository.ReceiptRepository
	Encoder     service.ReceiptEncoder
	Logger      *slog.Logger
}

// NewReceiptService is the constructor for receiptService.
func NewReceiptService(params ReceiptServiceParams) usecase.ReceiptUsecase {
	return &receiptService{
		orderRepo:   params.OrderRepo,
		receiptRepo: params.ReceiptRepo,
		encoder:     params.Encoder,
		logger:      params.Logger,
	}
}

func (srv *receiptService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// ProcessOrderPlaced encodes and stores the receipt of a freshly placed order.
// Redelivered events find the stored receipt and return early.
func (srv *receiptService) ProcessOrderPlaced(ctx context.Context, event *service.OrderPlacedEvent) error {
	if event == nil || event.OrderID <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("order_id is required")
	}

	_, err := srv.receiptRepo.FindByOrderID(ctx, event.OrderID)
	if err == nil {
		srv.log(ctx).Debug("Receipt already stored", slog.Int64("order_id", event.OrderID))

		return nil
	}
	if !errors.Is(err, repository.ErrReceiptNotFound) {
		return errors.Wrap(err, "failed to find receipt")
	}

	order, err := srv.orderRepo.FindByID(ctx, event.OrderID)
	if err != nil {
		return mapOrderError(err)
	}

	receipt, err := srv.encoder.EncodeReceipt(order)
	if err != nil {
		return errors.Wrap(err, "failed to encode receipt")
	}

	if err := srv.receiptRepo.Save(ctx, receipt); err != nil {
		return errors.Wrap(err, "failed to store receipt")
	}

	srv.log(ctx).Info("Receipt stored", slog.Int64("order_id", event.OrderID), slog.Int("png_bytes", len(receipt.PNG)))

	return nil
}
