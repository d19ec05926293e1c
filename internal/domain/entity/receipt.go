package entity

import "time"

// Receipt is the QR code handed to a customer for an order.
type Receipt struct {
	OrderID   int64
	Payload   string // Text encoded in the QR code.
	PNG       []byte
	CreatedAt time.Time
}
