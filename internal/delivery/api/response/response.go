// Package response renders the JSON envelopes every API endpoint answers with.
package response

import (
	"net/http"
	"strings"

	deliverycontext "servicehub/internal/delivery/context"
	domainerrors "servicehub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuccessResponse is the envelope of a successful call.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is the envelope of a failed call.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo carries a machine-readable code such as "PRICE_MISMATCH".
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// MetaInfo echoes the request id so clients can quote it in bug reports.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// Message is the body of mutations that only report success.
type Message struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func metaOf(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.RequestID(c)}
}

// Success wraps data in the success envelope.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: metaOf(c)})
}

// OK answers 200 with a {success, message} body.
func OK(c echo.Context, message string) error {
	return Success(c, http.StatusOK, Message{Success: true, Message: message})
}

// Error writes the error envelope. Details are withheld from 401, 403 and 5xx answers.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  metaOf(c),
	})
}

// HandleAppError renders err when it carries an AppError. Anything else is
// returned to echo so the server error handler answers with a generic 500.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), detailsOf(appErr))
}

// Render writes the error envelope for any error and returns the status sent.
// Errors raised by echo itself, such as unknown routes or oversized bodies,
// keep their status and get a code derived from it.
func Render(c echo.Context, err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), detailsOf(appErr))

		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		_ = Error(c, httpErr.Code, codeForStatus(httpErr.Code), message, nil)

		return httpErr.Code
	}

	internal := domainerrors.ErrInternalError
	_ = Error(c, internal.HTTPCode(), internal.ErrorCode(), internal.Message(), nil)

	return internal.HTTPCode()
}

func detailsOf(appErr domainerrors.AppError) any {
	if details := appErr.Details(); details != "" {
		return details
	}

	return nil
}

// codeForStatus turns 405 into "METHOD_NOT_ALLOWED".
func codeForStatus(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "HTTP_ERROR"
	}

	return strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_", "'", "").Replace(text))
}
