package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is the pending selection of a customer. A user owns at most one cart.
type Cart struct {
	ID        int64
	UserID    int64
	CreatedAt time.Time
}

// CartItem is a (cart, service) pair. At most one exists per pair; repeated adds raise Quantity.
type CartItem struct {
	ID        int64
	CartID    int64
	ServiceID int64
	Quantity  int
}

// CartLine is a cart item joined with the catalog data the client renders.
type CartLine struct {
	CartItemID int64
	ServiceID  int64
	Quantity   int
	Name       string
	Price      decimal.Decimal
	Duration   string
	ImageURL   string
}
