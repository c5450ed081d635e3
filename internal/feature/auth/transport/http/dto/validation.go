package dto

import (
	"errors"
	"strings"
	"unicode"
)

// ErrWeakPassword is returned when a password fails the strength policy.
var ErrWeakPassword = errors.New("password must contain at least 1 lowercase, 1 uppercase, 1 number and 1 special character")

// NormalizeEmail trims surrounding whitespace, removes inner spaces and
// lowercases the address. Normalization is a transport concern; the core
// compares stored emails exactly.
func NormalizeEmail(email string) string {
	normalized := strings.TrimSpace(email)
	normalized = strings.ReplaceAll(normalized, " ", "")
	return strings.ToLower(normalized)
}

// ValidatePasswordStrength enforces the password policy beyond length:
// at least one lowercase letter, one uppercase letter, one digit and one
// special character. Length bounds are handled by binding tags.
func ValidatePasswordStrength(password string) error {
	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit || !hasSpecial {
		return ErrWeakPassword
	}
	return nil
}
