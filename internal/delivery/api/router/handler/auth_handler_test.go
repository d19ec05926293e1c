package handler

import (
	"net/http"
	"testing"
	"time"

	"servicehub/internal/delivery/api/middleware"
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	mockUsecase "servicehub/internal/mocks/usecase"
	"servicehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockAuthUsecase) {
	t.Helper()

	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newTestLogger()})
	mw := middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AuthUC: authUC, Logger: newTestLogger()})

	e := newTestEcho()
	e.POST("/api/auth/register", h.Register)
	e.POST("/api/auth/login", h.Login)
	e.GET("/api/auth/me", h.Me, mw.Identify)

	return e, authUC
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(m *mockUsecase.MockAuthUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "created",
			body: `{"full_name":"Ana","email":"ana@example.com","password":"secret1"}`,
			setupMocks: func(m *mockUsecase.MockAuthUsecase) {
				m.EXPECT().Register(mock.Anything, usecase.RegisterInput{
					FullName: "Ana",
					Email:    "ana@example.com",
					Password: "secret1",
				}).Return(&entity.User{ID: 7, FullName: "Ana", Email: "ana@example.com", Role: entity.RoleCustomer}, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing password",
			body:       `{"full_name":"Ana","email":"ana@example.com"}`,
			setupMocks: func(m *mockUsecase.MockAuthUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name: "email taken",
			body: `{"full_name":"Ana","email":"ana@example.com","password":"secret1"}`,
			setupMocks: func(m *mockUsecase.MockAuthUsecase) {
				m.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrEmailTaken).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "EMAIL_TAKEN",
		},
		{
			name: "short password",
			body: `{"full_name":"Ana","email":"ana@example.com","password":"123"}`,
			setupMocks: func(m *mockUsecase.MockAuthUsecase) {
				m.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrPasswordTooShort).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "PASSWORD_TOO_SHORT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, authUC := newAuthTestServer(t)
			tt.setupMocks(authUC)

			rec := performRequest(e, http.MethodPost, "/api/auth/register", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)

				return
			}

			var user UserResponse
			decodeData(t, rec, &user)
			assert.Equal(t, int64(7), user.UserID)
			assert.Equal(t, "customer", user.RoleName)
			assert.NotContains(t, rec.Body.String(), "password")
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("token issued", func(t *testing.T) {
		e, authUC := newAuthTestServer(t)
		expires := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
		authUC.EXPECT().Login(mock.Anything, usecase.LoginInput{Email: "ana@example.com", Password: "secret1"}).
			Return(&usecase.LoginOutput{
				User:        &entity.User{ID: 7, Email: "ana@example.com", Role: entity.RoleAdmin},
				AccessToken: "jwt",
				ExpiresAt:   expires,
			}, nil).Once()

		rec := performRequest(e, http.MethodPost, "/api/auth/login", `{"email":"ana@example.com","password":"secret1"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var out LoginResponse
		decodeData(t, rec, &out)
		assert.Equal(t, "jwt", out.AccessToken)
		assert.Equal(t, "Bearer", out.TokenType)
		assert.Equal(t, "admin", out.User.RoleName)
	})

	t.Run("bad credentials", func(t *testing.T) {
		e, authUC := newAuthTestServer(t)
		authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials).Once()

		rec := performRequest(e, http.MethodPost, "/api/auth/login", `{"email":"ana@example.com","password":"nope"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("resolved caller", func(t *testing.T) {
		e, authUC := newAuthTestServer(t)
		authUC.EXPECT().IdentifyByEmail(mock.Anything, "ana@example.com").
			Return(&entity.User{ID: 7, Email: "ana@example.com", Role: entity.RoleCustomer}, nil).Once()

		rec := performRequest(e, http.MethodGet, "/api/auth/me?userEmail=ana@example.com", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var user UserResponse
		decodeData(t, rec, &user)
		assert.Equal(t, int64(7), user.UserID)
	})

	t.Run("anonymous", func(t *testing.T) {
		e, _ := newAuthTestServer(t)

		rec := performRequest(e, http.MethodGet, "/api/auth/me", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
