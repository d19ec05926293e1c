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

// serviceRepository implements the repository.ServiceRepository interface.
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

// FindByID retrieves a service with its category name.
func (repo *serviceRepository) FindByID(ctx context.Context, id int64) (*entity.Service, error) {
	var serviceM model.ServiceModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&serviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find service by id")
	}

	return toServiceDomain(&serviceM), nil
}

// FindByIDs loads the given services in one query.
func (repo *serviceRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Service, error) {
	services := make(map[int64]*entity.Service, len(ids))
	if len(ids) == 0 {
		return services, nil
	}

	var serviceModels []*model.ServiceModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&serviceModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find services by ids")
	}

	for _, serviceM := range serviceModels {
		services[serviceM.ID] = toServiceDomain(serviceM)
	}

	return services, nil
}

// List returns services ordered by ID, optionally restricted to one category.
func (repo *serviceRepository) List(ctx context.Context, filter repository.ServiceFilter) ([]*entity.Service, error) {
	query := repo.db.WithContext(ctx).Preload("Category").Order("id ASC")
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	var serviceModels []*model.ServiceModel
	if err := query.Find(&serviceModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list services")
	}

	services := make([]*entity.Service, 0, len(serviceModels))
	for _, serviceM := range serviceModels {
		services = append(services, toServiceDomain(serviceM))
	}

	return services, nil
}

// Create persists a new service.
func (repo *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	serviceM := fromServiceDomain(service)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(serviceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}

	service.ID = serviceM.ID
	service.CreatedAt = serviceM.CreatedAt
	service.UpdatedAt = serviceM.UpdatedAt

	return nil
}

// Update replaces the editable fields of a service.
func (repo *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{ID: service.ID}).
		Updates(map[string]any{
			"name":        service.Name,
			"description": service.Description,
			"price":       service.Price,
			"duration":    service.Duration,
			"image_url":   service.ImageURL,
			"category_id": service.CategoryID,
			"updated_at":  gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNotFound
		}
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// Delete removes a service. Cart items and reviews cascade; order items block the deletion.
func (repo *serviceRepository) Delete(ctx context.Context, id int64) (*entity.Service, error) {
	var deleted []*model.ServiceModel

	result := repo.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&deleted)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return nil, domainerrors.ErrServiceInUse
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete service")
	}
	if len(deleted) == 0 {
		return nil, repository.ErrServiceNotFound
	}

	return toServiceDomain(deleted[0]), nil
}

func toServiceDomain(data *model.ServiceModel) *entity.Service {
	if data == nil {
		return nil
	}

	service := &entity.Service{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Duration:    data.Duration,
		ImageURL:    data.ImageURL,
		CategoryID:  data.CategoryID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.Category != nil {
		service.CategoryName = data.Category.Name
	}

	return service
}

func fromServiceDomain(data *entity.Service) *model.ServiceModel {
	if data == nil {
		return nil
	}

	return &model.ServiceModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Duration:    data.Duration,
		ImageURL:    data.ImageURL,
		CategoryID:  data.CategoryID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
