package handler

import (
	"log/slog"
	"net/http"

	"servicehub/internal/delivery/api/response"
	"servicehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the per-user cart.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddToCartRequest represents the request body for POST /api/cart/add
type AddToCartRequest struct {
	UserID    int64 `json:"userId" validate:"required,gt=0"`
	ServiceID int64 `json:"service_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"gte=0,lte=10000"`
}

// RemoveFromCartRequest represents the request body for DELETE /api/cart/remove
type RemoveFromCartRequest struct {
	UserID    int64 `json:"userId" validate:"required,gt=0"`
	ServiceID int64 `json:"service_id" validate:"required,gt=0"`
}

// ClearCartRequest represents the request body for DELETE /api/cart/clear
type ClearCartRequest struct {
	UserID int64 `json:"userId" validate:"required,gt=0"`
}

// GetCart handles GET /api/cart/:userId
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	lines, err := h.cartUC.GetCart(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCartResponse(lines))
}

// AddToCart handles POST /api/cart/add. A missing quantity means one.
func (h *CartHandler) AddToCart(c echo.Context) error {
	var req AddToCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.cartUC.AddToCart(c.Request().Context(), req.UserID, req.ServiceID, req.Quantity); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, "Service added to cart")
}

// RemoveFromCart handles DELETE /api/cart/remove
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	var req RemoveFromCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.cartUC.RemoveFromCart(c.Request().Context(), req.UserID, req.ServiceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, "Service removed from cart")
}

// ClearCart handles DELETE /api/cart/clear
func (h *CartHandler) ClearCart(c echo.Context) error {
	var req ClearCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.cartUC.ClearCart(c.Request().Context(), req.UserID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, "Cart cleared")
}
