package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "servicehub/internal/delivery/context"
	domainerrors "servicehub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body
}

func TestSuccessAndOK(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, OK(c, "Cart cleared"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"success":true,"message":"Cart cleared"},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestError_WithholdsDetails(t *testing.T) {
	tests := []struct {
		status      int
		wantDetails bool
	}{
		{status: http.StatusBadRequest, wantDetails: true},
		{status: http.StatusUnauthorized},
		{status: http.StatusForbidden},
		{status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, Error(c, tt.status, "CODE", "msg", "why"))

			body := decodeError(t, rec)
			if tt.wantDetails {
				assert.Equal(t, "why", body.Error.Details)
			} else {
				assert.Nil(t, body.Error.Details)
			}
			assert.Equal(t, "req-1", body.Meta.RequestID)
		})
	}
}

func TestHandleAppError(t *testing.T) {
	c, rec := newContext()
	err := errors.Wrap(domainerrors.ErrPriceMismatch.WithDetails("service 3"), "create order")

	require.NoError(t, HandleAppError(c, err))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "PRICE_MISMATCH", body.Error.Code)
	assert.Equal(t, "service 3", body.Error.Details)

	c, _ = newContext()
	plain := errors.New("boom")
	assert.ErrorIs(t, HandleAppError(c, plain), plain)
}

func TestRender(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "app error", err: domainerrors.ErrServiceNotFound, wantStatus: http.StatusNotFound, wantCode: "SERVICE_NOT_FOUND"},
		{name: "echo error", err: echo.ErrMethodNotAllowed, wantStatus: http.StatusMethodNotAllowed, wantCode: "METHOD_NOT_ALLOWED"},
		{name: "body too large", err: echo.ErrStatusRequestEntityTooLarge, wantStatus: http.StatusRequestEntityTooLarge, wantCode: "REQUEST_ENTITY_TOO_LARGE"},
		{name: "unknown", err: errors.New("pq: connection reset"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			assert.Equal(t, tt.wantStatus, Render(c, tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}
