package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/domain/constants"
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	mockUsecase "servicehub/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Identify(t *testing.T) {
	customer := &entity.User{ID: 7, Email: "ana@example.com", Role: entity.RoleCustomer}

	tests := []struct {
		name       string
		setupReq   func(r *http.Request)
		setupMocks func(m *mockUsecase.MockAuthUsecase)
		wantStatus int
	}{
		{
			name: "bearer token",
			setupReq: func(r *http.Request) {
				r.Header.Set(echo.HeaderAuthorization, "Bearer tok")
			},
			setupMocks: func(m *mockUsecase.MockAuthUsecase) {
				m.EXPECT().IdentifyByToken(mock.Anything, "tok").Return(customer, nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "email header",
			setupReq: func(r *http.Request) {
				r.Header.Set(constants.HeaderUserEmail, "ana@example.com")
			},
			setupMocks: func(m *mockUsecase.MockAuthUsecase) {
				m.EXPECT().IdentifyByEmail(mock.Anything, "ana@example.com").Return(customer, nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "email query",
			setupReq: func(r *http.Request) {
				q := r.URL.Query()
				q.Set(constants.QueryUserEmail, "ana@example.com")
				r.URL.RawQuery = q.Encode()
			},
			setupMocks: func(m *mockUsecase.MockAuthUsecase) {
				m.EXPECT().IdentifyByEmail(mock.Anything, "ana@example.com").Return(customer, nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "no identity",
			setupReq:   func(r *http.Request) {},
			setupMocks: func(m *mockUsecase.MockAuthUsecase) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown email",
			setupReq: func(r *http.Request) {
				r.Header.Set(constants.HeaderUserEmail, "ghost@example.com")
			},
			setupMocks: func(m *mockUsecase.MockAuthUsecase) {
				m.EXPECT().IdentifyByEmail(mock.Anything, "ghost@example.com").Return(nil, domainerrors.ErrUnauthorized).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authUC := mockUsecase.NewMockAuthUsecase(t)
			tt.setupMocks(authUC)

			m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC, Logger: newTestLogger()})

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			tt.setupReq(req)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen *entity.User
			var callerID int64
			err := m.Identify(func(c echo.Context) error {
				seen, _ = GetUser(c)
				callerID, _ = deliverycontext.CallerID(c.Request().Context())

				return okHandler(c)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, customer, seen)
				assert.Equal(t, customer.ID, callerID)
			}
		})
	}
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		user       *entity.User
		wantStatus int
	}{
		{name: "admin", user: &entity.User{ID: 1, Role: entity.RoleAdmin}, wantStatus: http.StatusNoContent},
		{name: "customer", user: &entity.User{ID: 2, Role: entity.RoleCustomer}, wantStatus: http.StatusForbidden},
		{name: "anonymous", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(AuthMiddlewareParams{
				AuthUC: mockUsecase.NewMockAuthUsecase(t),
				Logger: newTestLogger(),
			})

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/admin/users", nil), rec)
			if tt.user != nil {
				c.Set(contextKeyUser, tt.user)
			}

			require.NoError(t, m.RequireAdmin(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
