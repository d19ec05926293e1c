package handler

import (
	"strconv"

	domainerrors "servicehub/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	return parseID(c.Param(name), name)
}

func parseID(raw, name string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a positive integer")
	}

	return id, nil
}
