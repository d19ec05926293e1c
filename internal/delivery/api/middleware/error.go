package middleware

import (
	"log/slog"
	"net/http"

	"servicehub/internal/delivery/api/response"
	deliverycontext "servicehub/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware is the API server's echo.HTTPErrorHandler.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates the error handler.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError renders err unless a response was already written. Server
// side failures are logged with their cause; the client only sees a generic message.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := response.Render(c, err)
	if status < http.StatusInternalServerError {
		return
	}

	ctx := c.Request().Context()
	deliverycontext.LoggerFrom(ctx, m.logger).ErrorContext(ctx, "request failed",
		slog.String("method", c.Request().Method),
		slog.String("route", c.Path()),
		slog.Int("status", status),
		slog.Any("error", err),
	)
}
