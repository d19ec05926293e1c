package middleware

import (
	"net/http"

	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Metrics records request count and latency labelled by route template.
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			done := m.RequestStarted(c.Request().Method)

			err := next(c)

			status := c.Response().Status
			if err != nil {
				// The error handler has not written yet; predict its status.
				status = statusOf(err)
			}
			done(c.Path(), status)

			return err
		}
	}
}

func statusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
