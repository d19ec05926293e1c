// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"servicehub/config"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	minLength int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// Cost and minimum length come from the auth config; zero values fall back to bcrypt defaults.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	hasher := &bcryptHasher{cost: bcrypt.DefaultCost}
	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
			hasher.cost = cfg.Auth.BcryptCost
		}
		hasher.minLength = cfg.Auth.PasswordMinLength
	}

	return hasher
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePasswordStrength enforces the minimum length, counted in characters.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < h.minLength {
		return domainerrors.ErrPasswordTooShort.WithDetails(
			fmt.Sprintf("password must be at least %d characters", h.minLength),
		)
	}

	return nil
}
