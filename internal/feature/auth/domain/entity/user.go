// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Role is a user's fixed role. Permissions derive from the role, never from
// per-user grants.
type Role string

const (
	// RoleUser is the default role assigned at registration.
	RoleUser Role = "USER"
	// RoleAdmin grants full control over the user directory.
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user (UUID string).
	ID string `gorm:"primaryKey;size:36"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users; the unique index is the
	// authoritative guard against concurrent duplicate registration.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Name is the user's display name.
	Name string `gorm:"size:100;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Role determines what the user may do. Stored as its string value.
	Role Role `gorm:"size:16;not null;default:USER"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
