// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account of the shop: either a customer or an administrator.
type User struct {
	ID             int64     // Database identity.
	FullName       string    // Display name.
	Email          string    // Unique login identifier.
	PasswordHash   string    // bcrypt hash; never serialized.
	Phone          string    // Optional contact phone.
	DefaultAddress string    // Optional default delivery address.
	Role           Role      // Fixed at creation.
	CreatedAt      time.Time // Timestamp of when this account was created.
	UpdatedAt      time.Time // Timestamp of the last modification.
}

// IsAdmin reports whether the user holds the back-office capability.
// Admins manage the catalog but never own a cart or place orders.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
