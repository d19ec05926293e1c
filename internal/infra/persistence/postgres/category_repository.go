package postgres

import (
	"context"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// FindByID retrieves a category by its ID.
func (repo *categoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find category by id")
	}

	return toCategoryDomain(&categoryM), nil
}

// List returns all categories ordered by ID.
func (repo *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&categoryModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// Create persists a new category.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := &model.CategoryModel{Name: category.Name}

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCategoryExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt

	return nil
}

// Update renames a category.
func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	var updated []*model.CategoryModel

	result := repo.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{}).
		Where("id = ?", category.ID).
		Update("name", category.Name)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update category")
	}
	if len(updated) == 0 {
		return repository.ErrCategoryNotFound
	}

	category.CreatedAt = updated[0].CreatedAt

	return nil
}

// Delete removes a category that no service references.
func (repo *categoryRepository) Delete(ctx context.Context, id int64) (*entity.Category, error) {
	var deleted []*model.CategoryModel

	result := repo.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&deleted)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return nil, domainerrors.ErrCategoryInUse
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}
	if len(deleted) == 0 {
		return nil, repository.ErrCategoryNotFound
	}

	return toCategoryDomain(deleted[0]), nil
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
	}
}
