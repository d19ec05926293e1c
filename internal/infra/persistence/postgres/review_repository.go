package postgres

import (
	"context"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := &model.ReviewModel{
		ServiceID: review.ServiceID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Comment:   review.Comment,
	}

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrServiceNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// ListByService returns the reviews of a service with author names.
func (repo *reviewRepository) ListByService(ctx context.Context, serviceID int64) ([]*entity.Review, error) {
	return repo.list(ctx, "failed to list reviews by service", "r.service_id = ?", serviceID)
}

// ListByUser returns the reviews written by a user with service names.
func (repo *reviewRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Review, error) {
	return repo.list(ctx, "failed to list reviews by user", "r.user_id = ?", userID)
}

// ListAll returns every review with author and service names.
func (repo *reviewRepository) ListAll(ctx context.Context) ([]*entity.Review, error) {
	return repo.list(ctx, "failed to list reviews")
}

// Delete removes a review and returns it.
func (repo *reviewRepository) Delete(ctx context.Context, id int64) (*entity.Review, error) {
	var deleted []*model.ReviewModel

	result := repo.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&deleted)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if len(deleted) == 0 {
		return nil, repository.ErrReviewNotFound
	}

	return toReviewDomain(&model.ReviewRow{ReviewModel: *deleted[0]}), nil
}

func (repo *reviewRepository) list(ctx context.Context, failure string, conds ...any) ([]*entity.Review, error) {
	query := repo.db.WithContext(ctx).
		Table("reviews AS r").
		Select("r.*, u.full_name, s.name AS service_name").
		Joins("JOIN users AS u ON u.id = r.user_id").
		Joins("JOIN services AS s ON s.id = r.service_id")
	if len(conds) > 0 {
		query = query.Where(conds[0], conds[1:]...)
	}

	var rows []*model.ReviewRow
	if err := query.Order("r.created_at DESC, r.id DESC").Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, failure)
	}

	reviews := make([]*entity.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, toReviewDomain(row))
	}

	return reviews, nil
}

func toReviewDomain(data *model.ReviewRow) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:          data.ID,
		ServiceID:   data.ServiceID,
		UserID:      data.UserID,
		Rating:      data.Rating,
		Comment:     data.Comment,
		CreatedAt:   data.CreatedAt,
		AuthorName:  data.FullName,
		ServiceName: data.ServiceName,
	}
}
