package handler

import (
	"net/http"
	"testing"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	mockUsecase "servicehub/internal/mocks/usecase"
	"servicehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockCatalogUsecase) {
	t.Helper()

	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: newTestLogger()})

	e := newTestEcho()
	e.GET("/api/services", h.ListServices)
	e.GET("/api/services/export", h.ExportServices)
	e.GET("/api/services/:id", h.GetService)
	e.POST("/api/services", h.CreateService)
	e.PUT("/api/services/:id", h.UpdateService)
	e.DELETE("/api/services/:id", h.DeleteService)
	e.GET("/api/categories", h.ListCategories)
	e.GET("/api/categories/:id", h.GetCategory)
	e.POST("/api/categories", h.CreateCategory)
	e.PUT("/api/categories/:id", h.UpdateCategory)
	e.DELETE("/api/categories/:id", h.DeleteCategory)

	return e, catalogUC
}

func TestCatalogHandler_ListServices(t *testing.T) {
	cleaning := &entity.Service{ID: 3, Name: "Cleaning", Price: decimal.NewFromInt(100), CategoryID: 2, CategoryName: "Home"}

	t.Run("all", func(t *testing.T) {
		e, catalogUC := newCatalogTestServer(t)
		catalogUC.EXPECT().ListServices(mock.Anything, (*int64)(nil)).Return([]*entity.Service{cleaning}, nil).Once()

		rec := performRequest(e, http.MethodGet, "/api/services", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var services []ServiceResponse
		decodeData(t, rec, &services)
		require.Len(t, services, 1)
		assert.Equal(t, "Home", services[0].CategoryName)
	})

	t.Run("by category", func(t *testing.T) {
		e, catalogUC := newCatalogTestServer(t)
		catalogUC.EXPECT().ListServices(mock.Anything, mock.MatchedBy(func(id *int64) bool {
			return id != nil && *id == 2
		})).Return([]*entity.Service{cleaning}, nil).Once()

		rec := performRequest(e, http.MethodGet, "/api/services?category_id=2", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad category", func(t *testing.T) {
		e, _ := newCatalogTestServer(t)

		rec := performRequest(e, http.MethodGet, "/api/services?category_id=x", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCatalogHandler_GetService_NotFound(t *testing.T) {
	e, catalogUC := newCatalogTestServer(t)
	catalogUC.EXPECT().GetService(mock.Anything, int64(99)).Return(nil, domainerrors.ErrServiceNotFound).Once()

	rec := performRequest(e, http.MethodGet, "/api/services/99", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "SERVICE_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestCatalogHandler_CreateService(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		e, catalogUC := newCatalogTestServer(t)
		catalogUC.EXPECT().CreateService(mock.Anything, mock.MatchedBy(func(in usecase.ServiceInput) bool {
			return in.Name == "Cleaning" && in.Price.Equal(decimal.RequireFromString("49.90")) && in.CategoryID == 2
		})).Return(&entity.Service{ID: 4, Name: "Cleaning", Price: decimal.RequireFromString("49.90"), CategoryID: 2}, nil).Once()

		rec := performRequest(e, http.MethodPost, "/api/services", `{"name":"Cleaning","price":"49.90","category_id":2}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var svc ServiceResponse
		decodeData(t, rec, &svc)
		assert.Equal(t, int64(4), svc.ServiceID)
	})

	t.Run("missing price", func(t *testing.T) {
		e, _ := newCatalogTestServer(t)

		rec := performRequest(e, http.MethodPost, "/api/services", `{"name":"Cleaning","category_id":2}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeEnvelope(t, rec).Error.Details, "price is required")
	})

	t.Run("unknown category", func(t *testing.T) {
		e, catalogUC := newCatalogTestServer(t)
		catalogUC.EXPECT().CreateService(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrCategoryNotFound).Once()

		rec := performRequest(e, http.MethodPost, "/api/services", `{"name":"Cleaning","price":10,"category_id":9}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCatalogHandler_DeleteService_InUse(t *testing.T) {
	e, catalogUC := newCatalogTestServer(t)
	catalogUC.EXPECT().DeleteService(mock.Anything, int64(3)).Return(nil, domainerrors.ErrServiceInUse).Once()

	rec := performRequest(e, http.MethodDelete, "/api/services/3", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "SERVICE_IN_USE", decodeEnvelope(t, rec).Error.Code)
}

func TestCatalogHandler_ExportServices(t *testing.T) {
	e, catalogUC := newCatalogTestServer(t)
	catalogUC.EXPECT().ExportServices(mock.Anything).Return(&usecase.ExportOutput{
		FileName:    "services.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     []byte("PK"),
	}, nil).Once()

	rec := performRequest(e, http.MethodGet, "/api/services/export", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="services.xlsx"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, []byte("PK"), rec.Body.Bytes())
}

func TestCatalogHandler_Categories(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		e, catalogUC := newCatalogTestServer(t)
		catalogUC.EXPECT().ListCategories(mock.Anything).Return([]*entity.Category{{ID: 1, Name: "Home"}}, nil).Once()

		rec := performRequest(e, http.MethodGet, "/api/categories", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"category_id":1,"category_name":"Home"}]`, string(decodeEnvelope(t, rec).Data))
	})

	t.Run("create duplicate", func(t *testing.T) {
		e, catalogUC := newCatalogTestServer(t)
		catalogUC.EXPECT().CreateCategory(mock.Anything, "Home").Return(nil, domainerrors.ErrCategoryExists).Once()

		rec := performRequest(e, http.MethodPost, "/api/categories", `{"category_name":"Home"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("rename", func(t *testing.T) {
		e, catalogUC := newCatalogTestServer(t)
		catalogUC.EXPECT().UpdateCategory(mock.Anything, int64(1), "House").Return(&entity.Category{ID: 1, Name: "House"}, nil).Once()

		rec := performRequest(e, http.MethodPut, "/api/categories/1", `{"category_name":"House"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete in use", func(t *testing.T) {
		e, catalogUC := newCatalogTestServer(t)
		catalogUC.EXPECT().DeleteCategory(mock.Anything, int64(1)).Return(nil, domainerrors.ErrCategoryInUse).Once()

		rec := performRequest(e, http.MethodDelete, "/api/categories/1", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "CATEGORY_IN_USE", decodeEnvelope(t, rec).Error.Code)
	})
}
