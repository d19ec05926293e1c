package postgres

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	uniqueViolation     = "ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)"
	foreignKeyViolation = "ERROR: update or delete violates foreign key constraint (SQLSTATE 23503)"
	numericOutOfRange   = "ERROR: integer out of range (SQLSTATE 22003)"
	checkViolation      = "ERROR: new row violates check constraint (SQLSTATE 23514)"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}
