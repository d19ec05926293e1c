package middleware

import (
	"log/slog"

	deliverycontext "servicehub/internal/delivery/context"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// AccessLog writes one line per request when enabled. The caller id resolved
// by the auth middleware is attached as user_id.
func AccessLog(logger *slog.Logger, enabled bool) echo.MiddlewareFunc {
	log := slogecho.NewWithConfig(logger, slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithUserAgent:    true,
		WithRequestID:    true,
		Filters: []slogecho.Filter{
			func(echo.Context) bool { return enabled },
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return log(func(c echo.Context) error {
			err := next(c)
			if userID, ok := deliverycontext.CallerID(c.Request().Context()); ok {
				slogecho.AddCustomAttributes(c, slog.Int64("user_id", userID))
			}

			return err
		})
	}
}
