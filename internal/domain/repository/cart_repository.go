package repository

import (
	"context"
	"errors"

	"servicehub/internal/domain/entity"
)

// ErrCartNotFound is returned when the user has no cart yet.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository persists carts and their items.
type CartRepository interface {
	// FindByUserID returns the cart of a user or ErrCartNotFound.
	FindByUserID(ctx context.Context, userID int64) (*entity.Cart, error)

	// GetOrCreate returns the cart of a user, creating it when missing.
	// Concurrent callers for the same user receive the same cart.
	GetOrCreate(ctx context.Context, userID int64) (*entity.Cart, error)

	// AddItem inserts the (cart, service) item or increments its quantity.
	AddItem(ctx context.Context, cartID, serviceID int64, quantity int) (*entity.CartItem, error)

	// RemoveItem deletes the (cart, service) item. Removing an absent item is not an error.
	RemoveItem(ctx context.Context, cartID, serviceID int64) error

	// Clear deletes every item of a cart.
	Clear(ctx context.Context, cartID int64) error

	// ListLines returns the items of a cart joined with their services, ordered by item ID.
	ListLines(ctx context.Context, cartID int64) ([]*entity.CartLine, error)
}
