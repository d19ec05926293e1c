package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_Delete(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "deleted row is returned",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`DELETE FROM "categories" WHERE id = \$1 RETURNING \*`).
					WithArgs(4).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).AddRow(4, "Cleaning", time.Now()))
			},
		},
		{
			name: "missing category",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`DELETE FROM "categories"`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}))
			},
			wantErr: repository.ErrCategoryNotFound,
		},
		{
			name: "category still has services",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`DELETE FROM "categories"`).
					WillReturnError(errors.New(foreignKeyViolation))
			},
			wantErr: domainerrors.ErrCategoryInUse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setup(mock)

			category, err := NewCategoryRepository(db).Delete(context.Background(), 4)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, category)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Cleaning", category.Name)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCategoryRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`INSERT INTO "categories"`).
		WillReturnError(errors.New(uniqueViolation))

	err := NewCategoryRepository(db).Create(context.Background(), &entity.Category{Name: "Cleaning"})

	assert.ErrorIs(t, err, domainerrors.ErrCategoryExists)
}

func TestServiceRepository_FindByIDs(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "services" WHERE id IN \(\$1,\$2\)`).
		WithArgs(5, 6).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "category_id"}).
			AddRow(5, "Cleaning", "100.00", 1))

	services, err := NewServiceRepository(db).FindByIDs(context.Background(), []int64{5, 6})

	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "100", services[5].Price.String())
	assert.NotContains(t, services, int64(6))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceRepository_FindByIDs_Empty(t *testing.T) {
	db, mock := newMockDB(t)

	services, err := NewServiceRepository(db).FindByIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, services)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceRepository_Delete_InUse(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`DELETE FROM "services" WHERE id = \$1 RETURNING \*`).
		WillReturnError(errors.New(foreignKeyViolation))

	service, err := NewServiceRepository(db).Delete(context.Background(), 5)

	assert.Nil(t, service)
	assert.ErrorIs(t, err, domainerrors.ErrServiceInUse)
}

func TestServiceRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE "services" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewServiceRepository(db).Update(context.Background(), &entity.Service{ID: 5, Name: "Cleaning", CategoryID: 1})

	assert.ErrorIs(t, err, repository.ErrServiceNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
