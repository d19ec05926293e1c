package postgres

import (
	"context"
	"testing"
	"time"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	placedAt := time.Now()

	mock.ExpectQuery(`INSERT INTO "orders" .* RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectQuery(`INSERT INTO "order_items" .* RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21).AddRow(22))

	order := &entity.Order{
		UserID:          7,
		DeliveryAddress: "1 Main St",
		DeliveryDate:    placedAt,
		TotalAmount:     decimal.RequireFromString("250"),
		Status:          entity.OrderStatusNew,
		Items: []*entity.OrderItem{
			{ServiceID: 5, Quantity: 2, PriceAtPurchase: decimal.RequireFromString("100")},
			{ServiceID: 6, Quantity: 1, PriceAtPurchase: decimal.RequireFromString("50")},
		},
	}

	err := NewOrderRepository(db).Create(context.Background(), order)

	require.NoError(t, err)
	assert.Equal(t, int64(11), order.ID)
	assert.Equal(t, int64(21), order.Items[0].ID)
	assert.Equal(t, int64(22), order.Items[1].ID)
	assert.Equal(t, int64(11), order.Items[1].OrderID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_Create_OutOfRange(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`INSERT INTO "orders" .* RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectQuery(`INSERT INTO "order_items" .* RETURNING "id"`).
		WillReturnError(errors.New(numericOutOfRange))

	order := &entity.Order{
		UserID:      7,
		TotalAmount: decimal.RequireFromString("100"),
		Status:      entity.OrderStatusNew,
		Items:       []*entity.OrderItem{{ServiceID: 5, Quantity: 1, PriceAtPurchase: decimal.RequireFromString("100")}},
	}

	err := NewOrderRepository(db).Create(context.Background(), order)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	order, err := NewOrderRepository(db).FindByID(context.Background(), 99)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE user_id = \$1 ORDER BY order_date DESC, id DESC`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "delivery_address", "delivery_date", "total_amount", "status", "order_date"}).
			AddRow(11, 7, "1 Main St", now, "200.00", "new", now))
	mock.ExpectQuery(`SELECT \* FROM "order_items" WHERE "order_items"."order_id" = \$1 ORDER BY order_items.id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "service_id", "quantity", "price_at_purchase"}).
			AddRow(21, 11, 5, 2, "100.00"))
	mock.ExpectQuery(`SELECT \* FROM "services" WHERE "services"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}).AddRow(5, "Cleaning", "150.00"))

	orders, err := NewOrderRepository(db).ListByUser(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "200", orders[0].TotalAmount.String())
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Cleaning", orders[0].Items[0].ServiceName)
	assert.Equal(t, "100", orders[0].Items[0].PriceAtPurchase.String())
	require.NoError(t, mock.ExpectationsWereMet())
}
