package impl

import (
	"context"
	"testing"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/domain/service"
	mockRepo "servicehub/internal/mocks/repository"
	mockSvc "servicehub/internal/mocks/service"
	"servicehub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type receiptServiceFixtures struct {
	service     usecase.ReceiptUsecase
	orderRepo   *mockRepo.MockOrderRepository
	receiptRepo *mockRepo.MockReceiptRepository
	encoder     *mockSvc.MockReceiptEncoder
}

func createTestReceiptService(t *testing.T) receiptServiceFixtures {
	fx := receiptServiceFixtures{
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		receiptRepo: mockRepo.NewMockReceiptRepository(t),
		encoder:     mockSvc.NewMockReceiptEncoder(t),
	}

	fx.service = NewReceiptService(ReceiptServiceParams{
		OrderRepo:   fx.orderRepo,
		ReceiptRepo: fx.receiptRepo,
		Encoder:     fx.encoder,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestReceiptService_ProcessOrderPlaced_StoresReceipt(t *testing.T) {
	fx := createTestReceiptService(t)
	ctx := context.Background()
	order := &entity.Order{ID: 42, UserID: 1}
	receipt := &entity.Receipt{OrderID: 42, Payload: "{}", PNG: []byte{0x89, 0x50}}

	fx.receiptRepo.EXPECT().FindByOrderID(ctx, int64(42)).Return(nil, repository.ErrReceiptNotFound)
	fx.orderRepo.EXPECT().FindByID(ctx, int64(42)).Return(order, nil)
	fx.encoder.EXPECT().EncodeReceipt(order).Return(receipt, nil)
	fx.receiptRepo.EXPECT().Save(ctx, receipt).Return(nil)

	require.NoError(t, fx.service.ProcessOrderPlaced(ctx, &service.OrderPlacedEvent{OrderID: 42, UserID: 1}))
}

func TestReceiptService_ProcessOrderPlaced_Redelivery(t *testing.T) {
	fx := createTestReceiptService(t)
	ctx := context.Background()

	fx.receiptRepo.EXPECT().FindByOrderID(ctx, int64(42)).Return(&entity.Receipt{OrderID: 42}, nil)

	require.NoError(t, fx.service.ProcessOrderPlaced(ctx, &service.OrderPlacedEvent{OrderID: 42}))
}

func TestReceiptService_ProcessOrderPlaced_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing order id", func(t *testing.T) {
		fx := createTestReceiptService(t)

		err := fx.service.ProcessOrderPlaced(ctx, &service.OrderPlacedEvent{})

		requireAppError(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("order deleted", func(t *testing.T) {
		fx := createTestReceiptService(t)
		fx.receiptRepo.EXPECT().FindByOrderID(ctx, int64(7)).Return(nil, repository.ErrReceiptNotFound)
		fx.orderRepo.EXPECT().FindByID(ctx, int64(7)).Return(nil, repository.ErrOrderNotFound)

		err := fx.service.ProcessOrderPlaced(ctx, &service.OrderPlacedEvent{OrderID: 7})

		requireAppError(t, err, domainerrors.ErrOrderNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		fx := createTestReceiptService(t)
		dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to find receipt")
		fx.receiptRepo.EXPECT().FindByOrderID(ctx, int64(7)).Return(nil, dbErr)

		err := fx.service.ProcessOrderPlaced(ctx, &service.OrderPlacedEvent{OrderID: 7})

		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
	})
}
