// Package logs builds the process-wide slog.Logger.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"servicehub/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New writes text logs when env.log.pretty is set and JSON otherwise. Every
// record carries the service and env names.
func New(params Params) (*slog.Logger, error) {
	level, err := parseLogLevel(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	logger := newLogger(os.Stdout, level, params.Config)
	slog.SetDefault(logger)

	return logger, nil
}

func newLogger(w io.Writer, level slog.Level, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level, AddSource: level <= slog.LevelDebug}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	}

	var attrs []any
	for key, value := range map[string]string{"service": cfg.Env.ServiceName, "env": cfg.Env.Env} {
		if value != "" {
			attrs = append(attrs, slog.String(key, value))
		}
	}

	return slog.New(handler).With(attrs...)
}

// parseLogLevel accepts the names slog understands, such as "debug" or "WARN".
// An empty level means info.
func parseLogLevel(raw string) (slog.Level, error) {
	if strings.TrimSpace(raw) == "" {
		return slog.LevelInfo, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo, errors.Wrapf(err, "env.log.level %q", raw)
	}

	return level, nil
}
