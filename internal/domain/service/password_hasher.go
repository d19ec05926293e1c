// Package service declares the ports use cases need from infrastructure:
// hashing, tokens, event publishing, receipt encoding and catalog export.
package service

// PasswordHasher stores and checks customer passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
	// ValidatePasswordStrength returns ErrPasswordTooShort for passwords under auth.passwordMinLength.
	ValidatePasswordStrength(password string) error
}
