package postgres

import (
	"context"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// receiptRepository implements the repository.ReceiptRepository interface.
type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository is the constructor for receiptRepository.
func NewReceiptRepository(db *gorm.DB) repository.ReceiptRepository {
	return &receiptRepository{db: db}
}

// FindByOrderID returns the stored receipt of an order.
func (repo *receiptRepository) FindByOrderID(ctx context.Context, orderID int64) (*entity.Receipt, error) {
	var receiptM model.ReceiptModel

	if err := repo.db.WithContext(ctx).Where("order_id = ?", orderID).First(&receiptM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReceiptNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find receipt")
	}

	return &entity.Receipt{
		OrderID:   receiptM.OrderID,
		Payload:   receiptM.Payload,
		PNG:       receiptM.QRPNG,
		CreatedAt: receiptM.CreatedAt,
	}, nil
}

// Save stores the receipt. Redelivered events find the row present and leave it as is.
func (repo *receiptRepository) Save(ctx context.Context, receipt *entity.Receipt) error {
	receiptM := &model.ReceiptModel{
		OrderID: receipt.OrderID,
		Payload: receipt.Payload,
		QRPNG:   receipt.PNG,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(receiptM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save receipt")
	}

	receipt.CreatedAt = receiptM.CreatedAt

	return nil
}
