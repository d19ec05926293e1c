package repository

import (
	"context"
	"errors"

	"servicehub/internal/domain/entity"
)

// ErrReviewNotFound is returned when a review does not exist.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository persists reviews. Listings are newest first and fill the read-only names.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	ListByService(ctx context.Context, serviceID int64) ([]*entity.Review, error)
	ListByUser(ctx context.Context, userID int64) ([]*entity.Review, error)
	ListAll(ctx context.Context) ([]*entity.Review, error)
	Delete(ctx context.Context, id int64) (*entity.Review, error)
}
