package repository

import (
	"context"
	"errors"

	"servicehub/internal/domain/entity"
)

var (
	// ErrCategoryNotFound is returned when a category does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrServiceNotFound is returned when a service does not exist.
	ErrServiceNotFound = errors.New("service not found")
)

// ServiceFilter narrows a service listing.
type ServiceFilter struct {
	CategoryID *int64
}

// CategoryRepository persists catalog categories.
type CategoryRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) (*entity.Category, error)
}

// ServiceRepository persists catalog services. Reads fill Service.CategoryName.
type ServiceRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Service, error)

	// FindByIDs returns the services found, keyed by ID. Missing IDs are simply absent.
	FindByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Service, error)

	// List returns services ordered by ID.
	List(ctx context.Context, filter ServiceFilter) ([]*entity.Service, error)

	Create(ctx context.Context, service *entity.Service) error
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id int64) (*entity.Service, error)
}
