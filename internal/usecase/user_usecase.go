package usecase

import (
	"context"

	"servicehub/internal/domain/entity"
)

// UpdateProfileInput defines the editable profile fields of a user.
type UpdateProfileInput struct {
	UserID         int64
	FullName       string
	Email          string
	Phone          string
	DefaultAddress string
}

// UserUsecase defines profile and user administration operations.
type UserUsecase interface {
	GetUser(ctx context.Context, userID int64) (*entity.User, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	DeleteUser(ctx context.Context, userID int64) (*entity.User, error)
}
