// Package middleware holds the echo middleware shared by the API server and
// the receipt worker.
package middleware

import (
	"log/slog"

	"servicehub/config"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// Common returns the stack every server installs first: panic recovery,
// request ids and the access log, in that order.
func Common(logger *slog.Logger, cfg *config.Config) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		Recover(logger),
		RequestID(logger),
		AccessLog(logger, cfg.Env.Debug),
	}
}

// Recover turns panics into 500 responses and logs the stack through slog.
func Recover(logger *slog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RecoverWithConfig(echomiddleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.ErrorContext(c.Request().Context(), "panic recovered",
				slog.String("path", c.Path()),
				slog.Any("error", err),
				slog.String("stack", string(stack)),
			)

			return err
		},
	})
}
