package usecase

import "errors"

var (
	// ErrForbidden is returned when the principal may not act on the target
	// resource (cross-user access without the ADMIN role).
	ErrForbidden = errors.New("access denied")

	// ErrSelfRoleChange is returned when a non-admin attempts to change the
	// role field, even on their own record.
	ErrSelfRoleChange = errors.New("users cannot change their own role")

	// ErrSelfDelete is returned when an admin attempts to delete their own
	// account.
	ErrSelfDelete = errors.New("cannot delete own account")

	// ErrInvalidRole is returned when a supplied role is not part of the
	// closed role enum.
	ErrInvalidRole = errors.New("invalid role")
)
