package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"servicehub/config"
	deliverycontext "servicehub/internal/delivery/context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func fixedStatement() (string, int64) {
	return "SELECT * FROM services", 3
}

func TestQueryLogger_Trace(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		debug   bool
		took    time.Duration
		err     error
		want    string
		wantNot string
	}{
		{name: "failed statement", took: time.Millisecond, err: errors.New("boom"), want: `"msg":"sql failed"`},
		{name: "missing row is quiet", took: time.Millisecond, err: gorm.ErrRecordNotFound, wantNot: "sql"},
		{name: "slow statement", took: time.Second, want: `"msg":"sql slow"`},
		{name: "fast statement hidden outside debug", took: time.Millisecond, wantNot: "sql"},
		{name: "fast statement shown in debug", debug: true, took: time.Millisecond, want: `"msg":"sql"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := bufferLogger()
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			ql := newQueryLogger(logger, cfg).(*queryLogger)
			ql.now = func() time.Time { return now }

			ql.Trace(context.Background(), now.Add(-tt.took), fixedStatement, tt.err)

			if tt.want != "" {
				assert.Contains(t, buf.String(), tt.want)
				assert.Contains(t, buf.String(), `"rows":3`)
			}
			if tt.wantNot != "" {
				assert.NotContains(t, buf.String(), tt.wantNot)
			}
		})
	}
}

func TestQueryLogger_TagsRequestID(t *testing.T) {
	logger, buf := bufferLogger()
	ql := newQueryLogger(logger, nil)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	ql.Trace(ctx, time.Now().Add(-time.Minute), fixedStatement, nil)

	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
}

func TestQueryLogger_Silent(t *testing.T) {
	logger, buf := bufferLogger()
	ql := newQueryLogger(logger, nil).LogMode(gormlogger.Silent)

	ql.Trace(context.Background(), time.Now(), fixedStatement, errors.New("boom"))
	ql.Error(context.Background(), "boom %d", 1)

	assert.Empty(t, buf.String())
}

func TestPoolWatcher_Check(t *testing.T) {
	logger, buf := bufferLogger()
	current := sql.DBStats{}
	w := &poolWatcher{stats: func() sql.DBStats { return current }, logger: logger}

	assert.False(t, w.check(), "no waits yet")

	current = sql.DBStats{WaitCount: 2, WaitDuration: 10 * time.Millisecond, InUse: 5}
	assert.True(t, w.check())
	assert.Contains(t, buf.String(), `"level":"DEBUG"`)

	buf.Reset()
	current = sql.DBStats{WaitCount: 4, WaitDuration: 200 * time.Millisecond}
	assert.True(t, w.check())
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"waits":2`)

	assert.False(t, w.check(), "no new waits since last check")
}

func TestSQLState(t *testing.T) {
	assert.Equal(t, "23505", sqlState(&pgconn.PgError{Code: "23505"}))
	assert.Equal(t, "23503", sqlState(errors.Wrap(&pgconn.PgError{Code: "23503"}, "delete category")))
	assert.Equal(t, "23505", sqlState(errors.New(uniqueViolation)))
	assert.Empty(t, sqlState(errors.New("connection refused")))

	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isForeignKeyConstraintViolation(errors.New(foreignKeyViolation)))
	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: "23514"}))
	assert.False(t, isUniqueConstraintViolation(errors.New(foreignKeyViolation)))
	assert.True(t, isOutOfRange(&pgconn.PgError{Code: "22003"}))
	assert.True(t, isOutOfRange(errors.New(checkViolation)))
	assert.False(t, isOutOfRange(errors.New(uniqueViolation)))
}
