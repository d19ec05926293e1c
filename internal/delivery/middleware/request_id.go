package middleware

import (
	"log/slog"

	deliverycontext "servicehub/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// RequestID reuses the caller's X-Request-Id or mints a UUID, echoes it on
// the response and seeds the request context with it and a tagged logger.
func RequestID(logger *slog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator:    uuid.NewString,
		TargetHeader: deliverycontext.HeaderXRequestID,
		RequestIDHandler: func(c echo.Context, requestID string) {
			deliverycontext.SetRequestID(c, requestID)

			ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("request_id", requestID)))
			c.SetRequest(c.Request().WithContext(ctx))
		},
	})
}
