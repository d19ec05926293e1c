package handler

import (
	"net/http"
	"testing"
	"time"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	mockUsecase "servicehub/internal/mocks/usecase"
	"servicehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockOrderUsecase) {
	t.Helper()

	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: newTestLogger()})

	e := newTestEcho()
	e.POST("/api/orders/create", h.CreateOrder)
	e.GET("/api/orders/:userId", h.ListOrders)
	e.GET("/api/orders/:userId/:orderId/receipt", h.GetReceipt)

	return e, orderUC
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(m *mockUsecase.MockOrderUsecase)
		wantStatus int
		wantCode   string
		wantData   string
	}{
		{
			name: "placed",
			body: `{"userId":7,"items":[{"service_id":5,"price":100,"quantity":2}],"delivery_address":"1 Main St","delivery_date":"2026-03-12"}`,
			setupMocks: func(m *mockUsecase.MockOrderUsecase) {
				m.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(in usecase.CreateOrderInput) bool {
					return in.UserID == 7 &&
						len(in.Items) == 1 &&
						in.Items[0].ServiceID == 5 &&
						in.Items[0].Quantity == 2 &&
						in.Items[0].Price != nil && in.Items[0].Price.Equal(decimal.NewFromInt(100)) &&
						in.DeliveryAddress == "1 Main St" &&
						in.DeliveryDate == "2026-03-12"
				})).Return(&usecase.CreateOrderOutput{OrderID: 11, TotalAmount: decimal.NewFromInt(200)}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantData:   `{"success":true,"order_id":11,"total_amount":"200"}`,
		},
		{
			name: "line without price",
			body: `{"userId":7,"items":[{"service_id":5}],"delivery_address":"1 Main St","delivery_date":"2026-03-12"}`,
			setupMocks: func(m *mockUsecase.MockOrderUsecase) {
				m.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(in usecase.CreateOrderInput) bool {
					return len(in.Items) == 1 && in.Items[0].Price == nil && in.Items[0].Quantity == 0
				})).Return(&usecase.CreateOrderOutput{OrderID: 12, TotalAmount: decimal.NewFromInt(100)}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantData:   `{"success":true,"order_id":12,"total_amount":"100"}`,
		},
		{
			name: "empty order",
			body: `{"userId":7,"items":[],"delivery_address":"1 Main St","delivery_date":"2026-03-12"}`,
			setupMocks: func(m *mockUsecase.MockOrderUsecase) {
				m.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrEmptyOrder).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "EMPTY_ORDER",
		},
		{
			name:       "invalid item",
			body:       `{"userId":7,"items":[{"service_id":0}],"delivery_address":"x","delivery_date":"2026-03-12"}`,
			setupMocks: func(m *mockUsecase.MockOrderUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "quantity above the line maximum",
			body:       `{"userId":7,"items":[{"service_id":5,"quantity":10001}],"delivery_address":"x","delivery_date":"2026-03-12"}`,
			setupMocks: func(m *mockUsecase.MockOrderUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name: "past delivery date",
			body: `{"userId":7,"items":[{"service_id":5}],"delivery_address":"1 Main St","delivery_date":"2020-01-01"}`,
			setupMocks: func(m *mockUsecase.MockOrderUsecase) {
				m.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidDeliveryDate).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_DELIVERY_DATE",
		},
		{
			name: "tampered price",
			body: `{"userId":7,"items":[{"service_id":5,"price":1}],"delivery_address":"1 Main St","delivery_date":"2026-03-12"}`,
			setupMocks: func(m *mockUsecase.MockOrderUsecase) {
				m.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(nil, errors.Wrap(domainerrors.ErrPriceMismatch.WithDetails("service 5 costs 100"), "price order")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "PRICE_MISMATCH",
		},
		{
			name: "admin refused",
			body: `{"userId":1,"items":[{"service_id":5}],"delivery_address":"1 Main St","delivery_date":"2026-03-12"}`,
			setupMocks: func(m *mockUsecase.MockOrderUsecase) {
				m.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrAdminOrderForbidden).Once()
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "ADMIN_ORDER_FORBIDDEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, orderUC := newOrderTestServer(t)
			tt.setupMocks(orderUC)

			rec := performRequest(e, http.MethodPost, "/api/orders/create", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)

				return
			}
			assert.JSONEq(t, tt.wantData, string(env.Data))
		})
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	e, orderUC := newOrderTestServer(t)
	orderDate := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	orderUC.EXPECT().ListOrders(mock.Anything, int64(7)).Return([]*entity.Order{
		{
			ID:              11,
			UserID:          7,
			DeliveryAddress: "1 Main St",
			DeliveryDate:    time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
			TotalAmount:     decimal.NewFromInt(200),
			Status:          entity.OrderStatusNew,
			OrderDate:       orderDate,
			Items: []*entity.OrderItem{
				{ServiceID: 5, ServiceName: "Cleaning", Quantity: 2, PriceAtPurchase: decimal.NewFromInt(100)},
			},
		},
	}, nil).Once()

	rec := performRequest(e, http.MethodGet, "/api/orders/7", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var orders []OrderResponse
	decodeData(t, rec, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(11), orders[0].OrderID)
	assert.Equal(t, "2026-03-12", orders[0].DeliveryDate)
	assert.True(t, orders[0].TotalAmount.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "new", orders[0].Status)
	require.Len(t, orders[0].Items, 1)
	assert.True(t, orders[0].Items[0].Price.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 2, orders[0].Items[0].Quantity)
}

func TestOrderHandler_GetReceipt(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}

	t.Run("png", func(t *testing.T) {
		e, orderUC := newOrderTestServer(t)
		orderUC.EXPECT().GetReceipt(mock.Anything, int64(7), int64(11)).
			Return(&entity.Receipt{OrderID: 11, PNG: png}, nil).Once()

		rec := performRequest(e, http.MethodGet, "/api/orders/7/11/receipt", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("other user's order", func(t *testing.T) {
		e, orderUC := newOrderTestServer(t)
		orderUC.EXPECT().GetReceipt(mock.Anything, int64(8), int64(11)).
			Return(nil, domainerrors.ErrOrderNotFound).Once()

		rec := performRequest(e, http.MethodGet, "/api/orders/8/11/receipt", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
