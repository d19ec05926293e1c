package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_GetOrCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO "carts" .* ON CONFLICT \("user_id"\) DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT \* FROM "carts" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "created_at"}).AddRow(9, 42, now))

	cart, err := repo.GetOrCreate(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(9), cart.ID)
	assert.Equal(t, int64(42), cart.UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_FindByUserID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "carts" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "created_at"}))

	cart, err := repo.FindByUserID(context.Background(), 42)

	assert.Nil(t, cart)
	assert.ErrorIs(t, err, repository.ErrCartNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_AddItem_Upsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectQuery(`INSERT INTO "cart_items" .* ON CONFLICT \("cart_id","service_id"\) DO UPDATE SET "quantity"=cart_items.quantity \+ EXCLUDED.quantity RETURNING \*`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "service_id", "quantity"}).AddRow(3, 9, 5, 2))

	item, err := repo.AddItem(context.Background(), 9, 5, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(3), item.ID)
	assert.Equal(t, 2, item.Quantity)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_AddItem_UnknownService(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectQuery(`INSERT INTO "cart_items"`).
		WillReturnError(errors.New(foreignKeyViolation))

	item, err := repo.AddItem(context.Background(), 9, 404, 1)

	assert.Nil(t, item)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Service not found")
}

func TestCartRepository_AddItem_QuantityOutOfRange(t *testing.T) {
	for _, dbErr := range []string{numericOutOfRange, checkViolation} {
		t.Run(dbErr, func(t *testing.T) {
			db, mock := newMockDB(t)

			mock.ExpectQuery(`INSERT INTO "cart_items" .* ON CONFLICT \("cart_id","service_id"\) DO UPDATE`).
				WillReturnError(errors.New(dbErr))

			item, err := NewCartRepository(db).AddItem(context.Background(), 9, 5, 10000)

			assert.Nil(t, item)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCartRepository_RemoveAndClear(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectExec(`DELETE FROM "cart_items" WHERE cart_id = \$1 AND service_id = \$2`).
		WithArgs(9, 5).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "cart_items" WHERE cart_id = \$1`).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.RemoveItem(context.Background(), 9, 5))
	require.NoError(t, repo.Clear(context.Background(), 9))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_ListLines(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectQuery(`SELECT ci.id AS cart_item_id, .* FROM cart_items AS ci JOIN services AS s ON s.id = ci.service_id WHERE ci.cart_id = \$1 ORDER BY ci.id ASC`).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"cart_item_id", "service_id", "quantity", "name", "price", "duration", "image_url"}).
			AddRow(1, 5, 2, "Cleaning", "100.00", "2 hours", "").
			AddRow(2, 6, 1, "Repair", "49.90", "1 hour", "https://img"))

	lines, err := repo.ListLines(context.Background(), 9)

	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "100", lines[0].Price.String())
	assert.Equal(t, "Repair", lines[1].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}
