package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"servicehub/internal/delivery/api/response"
	"servicehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves services and categories.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ServiceRequest represents the request body for creating or replacing a service
type ServiceRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Duration    string           `json:"duration"`
	ImageURL    string           `json:"image_url"`
	CategoryID  int64            `json:"category_id" validate:"required,gt=0"`
}

func (r *ServiceRequest) toInput() usecase.ServiceInput {
	return usecase.ServiceInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       *r.Price,
		Duration:    r.Duration,
		ImageURL:    r.ImageURL,
		CategoryID:  r.CategoryID,
	}
}

// CategoryRequest represents the request body for creating or renaming a category
type CategoryRequest struct {
	CategoryName string `json:"category_name" validate:"required"`
}

// ListServices handles GET /api/services?category_id=
func (h *CatalogHandler) ListServices(c echo.Context) error {
	var categoryID *int64
	if raw := c.QueryParam("category_id"); raw != "" {
		id, err := parseID(raw, "category_id")
		if err != nil {
			return response.HandleAppError(c, err)
		}
		categoryID = &id
	}

	services, err := h.catalogUC.ListServices(c.Request().Context(), categoryID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newServiceResponses(services))
}

// GetService handles GET /api/services/:id
func (h *CatalogHandler) GetService(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	svc, err := h.catalogUC.GetService(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newServiceResponse(svc))
}

// CreateService handles POST /api/services (admin)
func (h *CatalogHandler) CreateService(c echo.Context) error {
	var req ServiceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	svc, err := h.catalogUC.CreateService(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newServiceResponse(svc))
}

// UpdateService handles PUT /api/services/:id (admin)
func (h *CatalogHandler) UpdateService(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ServiceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	svc, err := h.catalogUC.UpdateService(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newServiceResponse(svc))
}

// DeleteService handles DELETE /api/services/:id (admin)
func (h *CatalogHandler) DeleteService(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	svc, err := h.catalogUC.DeleteService(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newServiceResponse(svc))
}

// ExportServices handles GET /api/services/export (admin)
func (h *CatalogHandler) ExportServices(c echo.Context) error {
	out, err := h.catalogUC.ExportServices(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", out.FileName))

	return c.Blob(http.StatusOK, out.ContentType, out.Content)
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCategoryResponses(categories))
}

// GetCategory handles GET /api/categories/:id
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.catalogUC.GetCategory(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCategoryResponse(category))
}

// CreateCategory handles POST /api/categories (admin)
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.catalogUC.CreateCategory(c.Request().Context(), req.CategoryName)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newCategoryResponse(category))
}

// UpdateCategory handles PUT /api/categories/:id (admin)
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.catalogUC.UpdateCategory(c.Request().Context(), id, req.CategoryName)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCategoryResponse(category))
}

// DeleteCategory handles DELETE /api/categories/:id (admin)
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.catalogUC.DeleteCategory(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCategoryResponse(category))
}
