package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo  repository.ReviewRepository
	serviceRepo repository.ServiceRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo  repository.ReviewRepository
	ServiceRepo repository.ServiceRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:  params.ReviewRepo,
		serviceRepo: params.ServiceRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// ListServiceReviews returns the reviews of a service, newest first.
func (srv *reviewService) ListServiceReviews(ctx context.Context, serviceID int64) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListByService(ctx, serviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list service reviews")
	}

	return reviews, nil
}

// ListUserReviews returns the reviews written by a user, newest first.
func (srv *reviewService) ListUserReviews(ctx context.Context, userID int64) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user reviews")
	}

	return reviews, nil
}

// CreateReview stores a rating for an existing service by an existing user.
func (srv *reviewService) CreateReview(ctx context.Context, input usecase.CreateReviewInput) (*entity.Review, error) {
	if input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
	}

	svc, err := srv.serviceRepo.FindByID(ctx, input.ServiceID)
	if err != nil {
		return nil, mapCatalogError(err)
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, mapUserError(err)
	}

	review := &entity.Review{
		ServiceID: input.ServiceID,
		UserID:    input.UserID,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, mapCatalogError(err)
	}

	review.AuthorName = user.FullName
	review.ServiceName = svc.Name

	srv.log(ctx).Info("Review created", slog.Int64("review_id", review.ID), slog.Int64("service_id", review.ServiceID))

	return review, nil
}

func (srv *reviewService) ListAllReviews(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

func (srv *reviewService) DeleteReview(ctx context.Context, id int64) (*entity.Review, error) {
	review, err := srv.reviewRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReviewNotFound, err.Error())
		}

		return nil, errors.Wrap(err, "failed to delete review")
	}

	srv.log(ctx).Info("Review deleted", slog.Int64("review_id", id))

	return review, nil
}
