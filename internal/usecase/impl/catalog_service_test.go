package impl

import (
	"context"
	"io"
	"testing"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	mockRepo "servicehub/internal/mocks/repository"
	mockSvc "servicehub/internal/mocks/service"
	"servicehub/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	serviceRepo  *mockRepo.MockServiceRepository
	categoryRepo *mockRepo.MockCategoryRepository
	exporter     *mockSvc.MockCatalogExporter
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	fx := catalogServiceFixtures{
		serviceRepo:  mockRepo.NewMockServiceRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		exporter:     mockSvc.NewMockCatalogExporter(t),
	}

	fx.service = NewCatalogService(CatalogServiceParams{
		ServiceRepo:  fx.serviceRepo,
		CategoryRepo: fx.categoryRepo,
		Exporter:     fx.exporter,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestCatalogService_ListServices_FiltersByCategory(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	categoryID := int64(3)
	services := []*entity.Service{{ID: 1, CategoryID: 3, CategoryName: "Home"}}

	fx.serviceRepo.EXPECT().List(ctx, repository.ServiceFilter{CategoryID: &categoryID}).Return(services, nil)

	got, err := fx.service.ListServices(ctx, &categoryID)

	require.NoError(t, err)
	assert.Equal(t, services, got)
}

func TestCatalogService_GetService_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.serviceRepo.EXPECT().FindByID(ctx, int64(9)).Return(nil, repository.ErrServiceNotFound)

	_, err := fx.service.GetService(ctx, 9)

	requireAppError(t, err, domainerrors.ErrServiceNotFound)
}

func TestCatalogService_CreateService(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	input := usecase.ServiceInput{Name: " Cleaning ", Price: decimal.NewFromInt(100), CategoryID: 3}

	fx.serviceRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Service")).
		Run(func(_ context.Context, svc *entity.Service) {
			assert.Equal(t, "Cleaning", svc.Name)
			svc.ID = 11
		}).
		Return(nil)
	fx.serviceRepo.EXPECT().FindByID(ctx, int64(11)).
		Return(&entity.Service{ID: 11, Name: "Cleaning", CategoryID: 3, CategoryName: "Home"}, nil)

	svc, err := fx.service.CreateService(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Home", svc.CategoryName)
}

func TestCatalogService_CreateService_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.ServiceInput
	}{
		{name: "blank name", input: usecase.ServiceInput{Name: " ", CategoryID: 1}},
		{name: "negative price", input: usecase.ServiceInput{Name: "A", Price: decimal.NewFromInt(-1), CategoryID: 1}},
		{name: "no category", input: usecase.ServiceInput{Name: "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)

			_, err := fx.service.CreateService(context.Background(), tt.input)

			requireAppError(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestCatalogService_CreateService_UnknownCategory(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.serviceRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Service")).Return(domainerrors.ErrCategoryNotFound)

	_, err := fx.service.CreateService(ctx, usecase.ServiceInput{Name: "A", CategoryID: 99})

	requireAppError(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCatalogService_DeleteService_InUse(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.serviceRepo.EXPECT().Delete(ctx, int64(5)).Return(nil, domainerrors.ErrServiceInUse)

	_, err := fx.service.DeleteService(ctx, 5)

	requireAppError(t, err, domainerrors.ErrServiceInUse)
}

func TestCatalogService_Categories(t *testing.T) {
	ctx := context.Background()

	t.Run("create trims the name", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.categoryRepo.EXPECT().Create(ctx, &entity.Category{Name: "Garden"}).Return(nil)

		category, err := fx.service.CreateCategory(ctx, "  Garden ")

		require.NoError(t, err)
		assert.Equal(t, "Garden", category.Name)
	})

	t.Run("create duplicate", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.categoryRepo.EXPECT().Create(ctx, &entity.Category{Name: "Garden"}).Return(domainerrors.ErrCategoryExists)

		_, err := fx.service.CreateCategory(ctx, "Garden")

		requireAppError(t, err, domainerrors.ErrCategoryExists)
	})

	t.Run("update missing", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.categoryRepo.EXPECT().Update(ctx, &entity.Category{ID: 4, Name: "Pool"}).Return(repository.ErrCategoryNotFound)

		_, err := fx.service.UpdateCategory(ctx, 4, "Pool")

		requireAppError(t, err, domainerrors.ErrCategoryNotFound)
	})

	t.Run("delete in use", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.categoryRepo.EXPECT().Delete(ctx, int64(4)).Return(nil, domainerrors.ErrCategoryInUse)

		_, err := fx.service.DeleteCategory(ctx, 4)

		requireAppError(t, err, domainerrors.ErrCategoryInUse)
	})

	t.Run("blank name", func(t *testing.T) {
		fx := createTestCatalogService(t)

		_, err := fx.service.UpdateCategory(ctx, 4, "")

		requireAppError(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestCatalogService_ExportServices(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	services := []*entity.Service{{ID: 1, Name: "Cleaning"}}

	fx.serviceRepo.EXPECT().List(ctx, repository.ServiceFilter{}).Return(services, nil)
	fx.exporter.EXPECT().ExportServices(mock.Anything, services).
		RunAndReturn(func(w io.Writer, _ []*entity.Service) error {
			_, err := w.Write([]byte("xlsx-bytes"))

			return err
		})
	fx.exporter.EXPECT().FileName().Return("services.xlsx")
	fx.exporter.EXPECT().ContentType().Return("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	out, err := fx.service.ExportServices(ctx)

	require.NoError(t, err)
	assert.Equal(t, "services.xlsx", out.FileName)
	assert.Equal(t, []byte("xlsx-bytes"), out.Content)
}
