package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"servicehub/config"
	deliverycontext "servicehub/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// queryLogger routes gorm output into slog. Statements are tagged with the
// request id of the HTTP call or push delivery that issued them.
type queryLogger struct {
	base      *slog.Logger
	threshold gormlogger.LogLevel
	slowAfter time.Duration
	now       func() time.Time
}

func newQueryLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	threshold := gormlogger.Warn
	if cfg != nil && cfg.Env.Debug {
		threshold = gormlogger.Info
	}

	return &queryLogger{
		base:      base,
		threshold: threshold,
		slowAfter: slowQueryThreshold,
		now:       time.Now,
	}
}

func (q *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	next := *q
	next.threshold = level

	return &next
}

func (q *queryLogger) Info(ctx context.Context, format string, args ...any) {
	q.printf(ctx, gormlogger.Info, slog.LevelInfo, format, args)
}

func (q *queryLogger) Warn(ctx context.Context, format string, args ...any) {
	q.printf(ctx, gormlogger.Warn, slog.LevelWarn, format, args)
}

func (q *queryLogger) Error(ctx context.Context, format string, args ...any) {
	q.printf(ctx, gormlogger.Error, slog.LevelError, format, args)
}

func (q *queryLogger) printf(ctx context.Context, need gormlogger.LogLevel, level slog.Level, format string, args []any) {
	if !q.enabled(need) {
		return
	}
	q.base.LogAttrs(ctx, level, "gorm", q.withRequest(ctx, slog.String("message", fmt.Sprintf(format, args...)))...)
}

// Trace reports failed statements, then slow ones, then everything when
// running at info level. A missing row is a normal lookup outcome.
func (q *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if !q.enabled(gormlogger.Error) {
		return
	}
	took := q.now().Sub(begin)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		attrs := append(q.statement(ctx, fc, took), slog.String("error", err.Error()))
		q.base.LogAttrs(ctx, slog.LevelError, "sql failed", attrs...)
	case q.slowAfter > 0 && took > q.slowAfter && q.enabled(gormlogger.Warn):
		attrs := append(q.statement(ctx, fc, took), slog.Duration("slow_after", q.slowAfter))
		q.base.LogAttrs(ctx, slog.LevelWarn, "sql slow", attrs...)
	case q.enabled(gormlogger.Info):
		q.base.LogAttrs(ctx, slog.LevelInfo, "sql", q.statement(ctx, fc, took)...)
	}
}

func (q *queryLogger) enabled(need gormlogger.LogLevel) bool {
	return q.base != nil && q.threshold != gormlogger.Silent && q.threshold >= need
}

func (q *queryLogger) statement(ctx context.Context, fc func() (string, int64), took time.Duration) []slog.Attr {
	sql, rows := fc()

	return q.withRequest(ctx,
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("took", took),
	)
}

func (q *queryLogger) withRequest(ctx context.Context, attrs ...slog.Attr) []slog.Attr {
	if id := deliverycontext.RequestIDFrom(ctx); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}

	return attrs
}
