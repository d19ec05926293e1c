package usecase

import (
	"context"

	"servicehub/internal/domain/entity"
)

// CreateReviewInput defines the data required to review a service.
type CreateReviewInput struct {
	ServiceID int64
	UserID    int64
	Rating    int
	Comment   string
}

// ReviewUsecase defines review publishing and moderation.
type ReviewUsecase interface {
	ListServiceReviews(ctx context.Context, serviceID int64) ([]*entity.Review, error)
	ListUserReviews(ctx context.Context, userID int64) ([]*entity.Review, error)
	CreateReview(ctx context.Context, input CreateReviewInput) (*entity.Review, error)
	ListAllReviews(ctx context.Context) ([]*entity.Review, error)
	DeleteReview(ctx context.Context, id int64) (*entity.Review, error)
}
