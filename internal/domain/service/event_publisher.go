package service

import (
	"context"

	"github.com/shopspring/decimal"
)

// OrderPlacedEvent is emitted once an order transaction has committed.
type OrderPlacedEvent struct {
	RequestID   string          `json:"request_id,omitempty"` // For distributed tracing
	OrderID     int64           `json:"order_id"`
	UserID      int64           `json:"user_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ItemCount   int             `json:"item_count"`
	PlacedAt    string          `json:"placed_at"` // RFC3339
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced publishes an order event for async processing
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
