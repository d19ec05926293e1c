package usecase

import (
	"context"

	"servicehub/internal/domain/entity"
)

const (
	// DefaultCartQuantity is used when a caller adds a service without a quantity.
	DefaultCartQuantity = 1
	// MaxLineQuantity caps the quantity of one cart item or order line.
	// The schema enforces the same bound.
	MaxLineQuantity = 10000
)

// CartUsecase defines the operations on the cart of a user.
type CartUsecase interface {
	AddToCart(ctx context.Context, userID, serviceID int64, quantity int) error
	RemoveFromCart(ctx context.Context, userID, serviceID int64) error
	ClearCart(ctx context.Context, userID int64) error

	// GetCart returns the cart lines ordered by item ID, or an empty slice when the user has no cart.
	GetCart(ctx context.Context, userID int64) ([]*entity.CartLine, error)
}
