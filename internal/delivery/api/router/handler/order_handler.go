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

const mimeImagePNG = "image/png"

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves checkout, order history and receipts.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CreateOrderRequest represents the request body for POST /api/orders/create
type CreateOrderRequest struct {
	UserID          int64              `json:"userId" validate:"required,gt=0"`
	Items           []OrderItemRequest `json:"items" validate:"dive"`
	DeliveryAddress string             `json:"delivery_address"`
	DeliveryDate    string             `json:"delivery_date"`
}

// OrderItemRequest is one checkout line. Price, when sent, must match the catalog.
type OrderItemRequest struct {
	ServiceID int64            `json:"service_id" validate:"required,gt=0"`
	Quantity  int              `json:"quantity" validate:"gte=0,lte=10000"`
	Price     *decimal.Decimal `json:"price"`
}

// CreateOrder handles POST /api/orders/create
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{
			ServiceID: item.ServiceID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	out, err := h.orderUC.CreateOrder(c.Request().Context(), usecase.CreateOrderInput{
		UserID:          req.UserID,
		Items:           items,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryDate:    req.DeliveryDate,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &CreateOrderResponse{
		Success:     true,
		OrderID:     out.OrderID,
		TotalAmount: out.TotalAmount,
	})
}

// ListOrders handles GET /api/orders/:userId
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponses(orders))
}

// GetReceipt handles GET /api/orders/:userId/:orderId/receipt
func (h *OrderHandler) GetReceipt(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orderID, err := pathID(c, "orderId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	receipt, err := h.orderUC.GetReceipt(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=\"order-%d.png\"", orderID))

	return c.Blob(http.StatusOK, mimeImagePNG, receipt.PNG)
}
