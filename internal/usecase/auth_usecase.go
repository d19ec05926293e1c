// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"servicehub/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open a customer account.
type RegisterInput struct {
	FullName       string
	Email          string
	Password       string
	Phone          string
	DefaultAddress string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the signed access token after a successful login.
type LoginOutput struct {
	User        *entity.User
	AccessToken string
	ExpiresAt   time.Time
}

// AuthUsecase defines account creation, login and caller identification.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// IdentifyByToken resolves the user behind a bearer access token.
	IdentifyByToken(ctx context.Context, token string) (*entity.User, error)

	// IdentifyByEmail resolves the user named by the legacy user-email header.
	IdentifyByEmail(ctx context.Context, email string) (*entity.User, error)
}
