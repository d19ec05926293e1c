package model

import "time"

// ReceiptModel mirrors the 'order_receipts' table.
type ReceiptModel struct {
	OrderID   int64  `gorm:"primaryKey"`
	Payload   string `gorm:"type:text;not null"`
	QRPNG     []byte `gorm:"column:qr_png;type:bytea;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReceiptModel) TableName() string {
	return "order_receipts"
}
