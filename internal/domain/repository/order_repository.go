package repository

import (
	"context"
	"errors"

	"servicehub/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists orders together with their items.
type OrderRepository interface {
	// Create inserts the order and its items, filling generated IDs.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID returns an order with its items.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// ListByUser returns the orders of a user, newest first, with items.
	ListByUser(ctx context.Context, userID int64) ([]*entity.Order, error)
}
