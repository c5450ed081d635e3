package entity

import "time"

// PasswordResetToken is a single-use credential for resetting a password.
// A token is valid until ExpiresAt (inclusive) and is deleted once consumed.
type PasswordResetToken struct {
	Token     string    // Opaque random value (64-character hex string)
	UserID    string    // Owning user ID
	ExpiresAt time.Time // Expiry; ExpiresAt before now means expired
	CreatedAt time.Time // Creation time
}

// IsExpired reports whether the token's expiry is strictly in the past.
// A token expiring exactly now is still accepted.
func (t *PasswordResetToken) IsExpired() bool {
	return t.ExpiresAt.Before(time.Now())
}
