package impl

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/domain/service"
	"servicehub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	serviceRepo  repository.ServiceRepository
	categoryRepo repository.CategoryRepository
	exporter     service.CatalogExporter
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ServiceRepo  repository.ServiceRepository
	CategoryRepo repository.CategoryRepository
	Exporter     service.CatalogExporter
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		serviceRepo:  params.ServiceRepo,
		categoryRepo: params.CategoryRepo,
		exporter:     params.Exporter,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// ListServices returns the catalog ordered by ID, optionally restricted to one category.
func (srv *catalogService) ListServices(ctx context.Context, categoryID *int64) ([]*entity.Service, error) {
	services, err := srv.serviceRepo.List(ctx, repository.ServiceFilter{CategoryID: categoryID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return services, nil
}

func (srv *catalogService) GetService(ctx context.Context, id int64) (*entity.Service, error) {
	svc, err := srv.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapCatalogError(err)
	}

	return svc, nil
}

// CreateService adds a service to an existing category.
func (srv *catalogService) CreateService(ctx context.Context, input usecase.ServiceInput) (*entity.Service, error) {
	svc, err := buildService(input)
	if err != nil {
		return nil, err
	}

	if err := srv.serviceRepo.Create(ctx, svc); err != nil {
		return nil, mapCatalogError(err)
	}

	srv.log(ctx).Info("Service created", slog.Int64("service_id", svc.ID))

	// Read back to fill the category name.
	return srv.GetService(ctx, svc.ID)
}

// UpdateService replaces the writable fields of a service.
func (srv *catalogService) UpdateService(ctx context.Context, id int64, input usecase.ServiceInput) (*entity.Service, error) {
	svc, err := buildService(input)
	if err != nil {
		return nil, err
	}
	svc.ID = id

	if err := srv.serviceRepo.Update(ctx, svc); err != nil {
		return nil, mapCatalogError(err)
	}

	return srv.GetService(ctx, id)
}

func (srv *catalogService) DeleteService(ctx context.Context, id int64) (*entity.Service, error) {
	svc, err := srv.serviceRepo.Delete(ctx, id)
	if err != nil {
		return nil, mapCatalogError(err)
	}

	srv.log(ctx).Info("Service deleted", slog.Int64("service_id", id))

	return svc, nil
}

// ExportServices renders the whole catalog with the configured exporter.
func (srv *catalogService) ExportServices(ctx context.Context) (*usecase.ExportOutput, error) {
	services, err := srv.serviceRepo.List(ctx, repository.ServiceFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services for export")
	}

	var buf bytes.Buffer
	if err := srv.exporter.ExportServices(&buf, services); err != nil {
		srv.log(ctx).Error("Failed to export catalog", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to export services")
	}

	return &usecase.ExportOutput{
		FileName:    srv.exporter.FileName(),
		ContentType: srv.exporter.ContentType(),
		Content:     buf.Bytes(),
	}, nil
}

func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *catalogService) GetCategory(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapCatalogError(err)
	}

	return category, nil
}

func (srv *catalogService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	category := &entity.Category{Name: name}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, mapCatalogError(err)
	}

	return category, nil
}

func (srv *catalogService) UpdateCategory(ctx context.Context, id int64, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	category := &entity.Category{ID: id, Name: name}
	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, mapCatalogError(err)
	}

	return category, nil
}

// DeleteCategory removes an empty category.
func (srv *catalogService) DeleteCategory(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := srv.categoryRepo.Delete(ctx, id)
	if err != nil {
		return nil, mapCatalogError(err)
	}

	return category, nil
}

func buildService(input usecase.ServiceInput) (*entity.Service, error) {
	name := strings.TrimSpace(input.Name)
	switch {
	case name == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	case input.Price.IsNegative():
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	case input.CategoryID <= 0:
		return nil, domainerrors.ErrValidationFailed.WithDetails("category_id is required")
	}

	return &entity.Service{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Duration:    strings.TrimSpace(input.Duration),
		ImageURL:    strings.TrimSpace(input.ImageURL),
		CategoryID:  input.CategoryID,
	}, nil
}

func mapCatalogError(err error) error {
	switch {
	case errors.Is(err, repository.ErrServiceNotFound):
		return errors.Wrap(domainerrors.ErrServiceNotFound, err.Error())
	case errors.Is(err, repository.ErrCategoryNotFound):
		return errors.Wrap(domainerrors.ErrCategoryNotFound, err.Error())
	default:
		return errors.Wrap(err, "catalog repository")
	}
}
