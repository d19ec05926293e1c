package handler

import (
	"log/slog"
	"net/http"

	"servicehub/internal/delivery/api/response"
	"servicehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves profile updates and the admin user list.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// UpdateProfileRequest represents the request body for PUT /api/users/profile
type UpdateProfileRequest struct {
	UserID         int64  `json:"userId" validate:"required,gt=0"`
	FullName       string `json:"full_name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone"`
	DefaultAddress string `json:"default_address"`
}

// UpdateProfile handles PUT /api/users/profile
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), usecase.UpdateProfileInput{
		UserID:         req.UserID,
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		DefaultAddress: req.DefaultAddress,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// ListUsers handles GET /api/users (admin)
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponses(users))
}

// DeleteUser handles DELETE /api/users/:id (admin)
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.DeleteUser(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}
