package postgres

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"servicehub/internal/infra/persistence/migrations"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
)

// Migrator applies the embedded schema migrations.
type Migrator struct {
	m      *migrate.Migrate
	logger *slog.Logger
}

// NewMigrator binds the embedded migrations to an open connection pool.
func NewMigrator(sqlDB *sql.DB, logger *slog.Logger) (*Migrator, error) {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded migrations")
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrator")
	}
	m.Log = &migrateLogger{logger: logger}

	return &Migrator{m: m, logger: logger}, nil
}

// Up applies every pending migration. An up-to-date schema is not an error.
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}

// Down rolls back the given number of migrations.
func (mg *Migrator) Down(steps int) error {
	if steps <= 0 {
		steps = 1
	}
	if err := mg.m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to roll back migrations")
	}

	return nil
}

// Version reports the current schema version. Zero means no migration was applied.
func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "failed to read schema version")
	}

	return version, dirty, nil
}

type migrateLogger struct {
	logger *slog.Logger
}

func (l *migrateLogger) Printf(format string, v ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Info("migrate", slog.String("message", strings.TrimSpace(fmt.Sprintf(format, v...))))
}

func (l *migrateLogger) Verbose() bool {
	return false
}
