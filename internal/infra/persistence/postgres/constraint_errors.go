package postgres

import (
	"regexp"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
	sqlStateCheckViolation      = "23514"
	sqlStateNumericOutOfRange   = "22003"
)

var sqlStateInText = regexp.MustCompile(`\(SQLSTATE (\w{5})\)`)

// sqlState extracts the Postgres error code from a driver error, falling back
// to the "(SQLSTATE xxxxx)" suffix for errors that only carry the text.
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	if m := sqlStateInText.FindStringSubmatch(err.Error()); m != nil {
		return m[1]
	}

	return ""
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || sqlState(err) == sqlStateUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || sqlState(err) == sqlStateForeignKeyViolation
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || sqlState(err) == sqlStateCheckViolation
}

// isOutOfRange reports a value rejected by a CHECK bound or too large for its column type.
func isOutOfRange(err error) bool {
	return isCheckConstraintViolation(err) || sqlState(err) == sqlStateNumericOutOfRange
}
