// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a storefront account. The credential hash never leaves the identity
// subsystem; the cart and catalog only ever see the ID and role.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Login identifier, stored lowercase and trimmed.
	PasswordHash string    // bcrypt hash, written only by the identity service.
	Role         Role      // Either customer or admin.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// NormalizeEmail lowercases and trims an email for storage and lookup so that
// uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
