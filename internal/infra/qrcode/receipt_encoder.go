package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"servicehub/config"
	"servicehub/internal/domain/constants"
	"servicehub/internal/domain/entity"
	"servicehub/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	receiptType    = "order_receipt"
	receiptURLPath = "/api/orders/%d/%d/receipt"
)

type receiptEncoder struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
	now                  func() time.Time
}

// ReceiptData is the JSON document encoded in a receipt QR code
type ReceiptData struct {
	Type         string          `json:"type"`
	OrderID      int64           `json:"order_id"`
	UserID       int64           `json:"user_id"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	ItemCount    int             `json:"item_count"`
	DeliveryDate string          `json:"delivery_date"`
	URL          string          `json:"url,omitempty"`
}

// NewReceiptEncoder creates a receipt encoder from the qrcode config
func NewReceiptEncoder(cfg *config.Config) service.ReceiptEncoder {
	size, level, baseURL := defaultSize, "M", ""
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
		baseURL = strings.TrimRight(cfg.QRCode.BaseURL, "/")
	}

	return &receiptEncoder{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(level),
		baseURL:              baseURL,
		now:                  time.Now,
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// EncodeReceipt renders the order summary as a PNG QR code
func (e *receiptEncoder) EncodeReceipt(order *entity.Order) (*entity.Receipt, error) {
	data := ReceiptData{
		Type:         receiptType,
		OrderID:      order.ID,
		UserID:       order.UserID,
		TotalAmount:  order.TotalAmount,
		ItemCount:    len(order.Items),
		DeliveryDate: order.DeliveryDate.Format(constants.DeliveryDateLayout),
	}
	if e.baseURL != "" {
		data.URL = e.baseURL + fmt.Sprintf(receiptURLPath, order.UserID, order.ID)
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal receipt data: %w", err)
	}

	qrCode, err := qrcode.New(string(payload), e.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(e.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return &entity.Receipt{
		OrderID:   order.ID,
		Payload:   string(payload),
		PNG:       pngBytes,
		CreatedAt: e.now(),
	}, nil
}
