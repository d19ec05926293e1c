package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "servicehub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantLogged bool
	}{
		{name: "client error", err: domainerrors.ErrCategoryInUse, wantStatus: http.StatusConflict},
		{name: "unknown route", err: echo.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "database failure", err: domainerrors.NewDatabaseExecuteError(errors.New("deadlock"), "save"), wantStatus: http.StatusInternalServerError, wantLogged: true},
		{name: "bare error", err: errors.New("nil map"), wantStatus: http.StatusInternalServerError, wantLogged: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			m := NewErrorMiddleware(slog.New(slog.NewJSONHandler(buf, nil)))

			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/services", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantLogged {
				assert.Contains(t, buf.String(), `"msg":"request failed"`)
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(newTestLogger())

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.NoContent(http.StatusAccepted)

	m.HandleHTTPError(domainerrors.ErrInternalError, c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}
