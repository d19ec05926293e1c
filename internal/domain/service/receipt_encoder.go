package service

import "servicehub/internal/domain/entity"

// ReceiptEncoder renders an order into a scannable receipt.
type ReceiptEncoder interface {
	EncodeReceipt(order *entity.Order) (*entity.Receipt, error)
}
