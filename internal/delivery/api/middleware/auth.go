package middleware

import (
	"log/slog"
	"strings"

	"servicehub/internal/delivery/api/response"
	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/domain/constants"
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	contextKeyUser = "user"
	bearerPrefix   = "Bearer "
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthMiddleware resolves the caller and guards admin routes.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// Identify resolves the caller from, in order, a bearer token, the user-email header and the userEmail query.
// Requests without any identity are rejected with 401.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		req := c.Request()

		var (
			user *entity.User
			err  error
		)

		authHeader := req.Header.Get(echo.HeaderAuthorization)
		email := req.Header.Get(constants.HeaderUserEmail)
		if email == "" {
			email = c.QueryParam(constants.QueryUserEmail)
		}

		switch {
		case strings.HasPrefix(authHeader, bearerPrefix):
			user, err = m.authUC.IdentifyByToken(ctx, strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix)))
		case email != "":
			user, err = m.authUC.IdentifyByEmail(ctx, email)
		default:
			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}

		if err != nil {
			return response.HandleAppError(c, err)
		}

		c.Set(contextKeyUser, user)

		logger := deliverycontext.LoggerFrom(ctx, m.logger).With(slog.Int64("user_id", user.ID))
		ctx = deliverycontext.WithCallerID(ctx, user.ID)
		c.SetRequest(req.WithContext(deliverycontext.WithLogger(ctx, logger)))

		return next(c)
	}
}

// RequireAdmin rejects callers without the admin role. It must run after Identify.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := GetUser(c)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}

		if !user.IsAdmin() {
			m.logger.Warn("Admin route refused", slog.Int64("user_id", user.ID), slog.String("path", c.Path()))

			return response.HandleAppError(c, domainerrors.ErrForbidden)
		}

		return next(c)
	}
}

// GetUser returns the caller resolved by Identify.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(contextKeyUser).(*entity.User)

	return user, ok && user != nil
}
