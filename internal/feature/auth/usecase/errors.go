package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned uniformly for an unknown email or a
	// wrong password. Callers must not be able to tell which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidRefreshToken is returned when a refresh token fails
	// verification or its subject no longer exists.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrResetTokenNotFound is returned when a password-reset token does not
	// match any stored record.
	ErrResetTokenNotFound = errors.New("password reset token not found")

	// ErrResetTokenExpired is returned when a password-reset token matched a
	// record but its expiry is in the past.
	ErrResetTokenExpired = errors.New("password reset token expired")
)
