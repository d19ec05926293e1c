// Command migrate applies the embedded schema migrations.
//
// Usage:
//
//	migrate up
//	migrate down [-steps N]
//	migrate version
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"servicehub/config"
	logs "servicehub/internal/infra/log"
	"servicehub/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type runParams struct {
	fx.In
	fx.Lifecycle

	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	command := os.Args[1]
	flags := flag.NewFlagSet(command, flag.ExitOnError)
	steps := flags.Int("steps", 1, "number of migrations to roll back")
	_ = flags.Parse(os.Args[2:])

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(func(params runParams) {
			params.Append(fx.Hook{
				OnStart: func(context.Context) error {
					return run(params, command, *steps)
				},
			})
		}),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		slog.Error("Migration failed", slog.String("command", command), slog.Any("error", err))
		os.Exit(1)
	}

	if err := app.Stop(ctx); err != nil {
		slog.Error("Failed to close database", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(params runParams, command string, steps int) error {
	sqlDB, err := params.DB.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	migrator, err := postgres.NewMigrator(sqlDB, params.Logger)
	if err != nil {
		return err
	}

	switch command {
	case "up":
		if err := migrator.Up(); err != nil {
			return err
		}
	case "down":
		if err := migrator.Down(steps); err != nil {
			return err
		}
	case "version":
	default:
		return errors.Errorf("unknown command %q", command)
	}

	version, dirty, err := migrator.Version()
	if err != nil {
		return err
	}
	params.Logger.Info("Schema version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: migrate up | down [-steps N] | version")
}
