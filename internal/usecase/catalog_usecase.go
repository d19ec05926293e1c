package usecase

import (
	"context"

	"servicehub/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ServiceInput defines the writable fields of a catalog service.
type ServiceInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Duration    string
	ImageURL    string
	CategoryID  int64
}

// ExportOutput is a rendered catalog document.
type ExportOutput struct {
	FileName    string
	ContentType string
	Content     []byte
}

// CatalogUsecase defines catalog browsing and back-office management.
type CatalogUsecase interface {
	ListServices(ctx context.Context, categoryID *int64) ([]*entity.Service, error)
	GetService(ctx context.Context, id int64) (*entity.Service, error)
	CreateService(ctx context.Context, input ServiceInput) (*entity.Service, error)
	UpdateService(ctx context.Context, id int64, input ServiceInput) (*entity.Service, error)
	DeleteService(ctx context.Context, id int64) (*entity.Service, error)
	ExportServices(ctx context.Context) (*ExportOutput, error)

	ListCategories(ctx context.Context) ([]*entity.Category, error)
	GetCategory(ctx context.Context, id int64) (*entity.Category, error)
	CreateCategory(ctx context.Context, name string) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id int64, name string) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id int64) (*entity.Category, error)
}
