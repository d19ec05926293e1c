package handler

import (
	"log/slog"
	"net/http"

	"servicehub/internal/delivery/api/middleware"
	"servicehub/internal/delivery/api/response"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const tokenTypeBearer = "Bearer"

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves registration, login and the current caller.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for creating a customer account
type RegisterRequest struct {
	FullName       string `json:"full_name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required"`
	Phone          string `json:"phone"`
	DefaultAddress string `json:"default_address"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.authUC.Register(c.Request().Context(), usecase.RegisterInput{
		FullName:       req.FullName,
		Email:          req.Email,
		Password:       req.Password,
		Phone:          req.Phone,
		DefaultAddress: req.DefaultAddress,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(user))
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &LoginResponse{
		User:        newUserResponse(out.User),
		AccessToken: out.AccessToken,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   out.ExpiresAt,
	})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}
