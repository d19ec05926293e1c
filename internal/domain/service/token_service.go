package service

import (
	"time"

	"servicehub/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeAccess marks access tokens.
const TokenTypeAccess = "access"

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID int64       `json:"uid"`
	Role   entity.Role `json:"role"`
	Type   string      `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken signs an access token for the user and returns its expiry.
	GenerateAccessToken(user *entity.User) (token string, expiresAt time.Time, err error)

	// ValidateToken checks signature, expiry and type of an access token.
	ValidateToken(tokenString string) (*Claims, error)
}
