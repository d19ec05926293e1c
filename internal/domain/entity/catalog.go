package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category groups services of the catalog.
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// Service is a purchasable catalog item.
type Service struct {
	ID           int64
	Name         string
	Description  string
	Price        decimal.Decimal // Current catalog price, never negative.
	Duration     string          // Free-form label such as "2 hours".
	ImageURL     string
	CategoryID   int64
	CategoryName string // Read-only, filled by queries joining categories.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
