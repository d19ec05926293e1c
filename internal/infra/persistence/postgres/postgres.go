package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"servicehub/config"
	"servicehub/internal/domain/lifecycle"
	"servicehub/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/collectors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolCheckInterval = 5 * time.Second
	poolWaitWarnAfter = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	// Metrics is absent in binaries that expose no /metrics route.
	Metrics *metrics.Metrics `optional:"true"`
}

// New opens the shared gorm handle, pings it on start and closes the pool on stop.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	// Unique and FK violations surface as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
	db.Config.TranslateError = true
	// Multi-step writes go through TransactionManager; single statements run bare.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "unwrap postgres sql.DB")
	}

	if params.Metrics != nil {
		if err := params.Metrics.Register(collectors.NewDBStatsCollector(sqlDB, "servicehub")); err != nil {
			return nil, errors.Wrap(err, "register postgres pool metrics")
		}
	}

	watcher := &poolWatcher{stats: sqlDB.Stats, logger: params.Logger}
	stopWatch := make(chan struct{})

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(pingCtx); err != nil {
				return errors.Wrap(err, "ping postgres")
			}
			go watcher.run(poolCheckInterval, stopWatch)

			return nil
		},
		OnStop: func(context.Context) error {
			close(stopWatch)

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolWatcher logs connection-pool contention observed between two checks.
type poolWatcher struct {
	stats  func() sql.DBStats
	logger *slog.Logger
	last   sql.DBStats
}

func (w *poolWatcher) run(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.last = w.stats()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			w.check()
		}
	}
}

// check compares the current pool stats with the previous snapshot and
// reports whether any caller had to wait for a connection.
func (w *poolWatcher) check() bool {
	cur := w.stats()
	waits := cur.WaitCount - w.last.WaitCount
	waited := cur.WaitDuration - w.last.WaitDuration
	w.last = cur

	if waits <= 0 {
		return false
	}

	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}
	w.logger.LogAttrs(context.Background(), level, "postgres pool contention",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)

	return true
}
