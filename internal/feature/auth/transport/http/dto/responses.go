package dto

import (
	"time"

	"account_backend/internal/feature/auth/usecase"
)

// UserProfile is the outward representation of a user. The password hash is
// never part of any response body.
type UserProfile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthResponse is the response body for successful register and login calls.
type AuthResponse struct {
	User         UserProfile `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	ExpiresIn    int         `json:"expiresIn"`
}

// RefreshResponse is the response body for a successful token refresh.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
}

// RequestPasswordResetResponse is the response body for a reset request.
// Token is a correlation identifier, never the reset token itself.
type RequestPasswordResetResponse struct {
	Message   string `json:"message"`
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}

// MessageResponse is a generic message-only response body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UserProfileFrom converts a usecase profile to its response representation.
func UserProfileFrom(p usecase.Profile) UserProfile {
	return UserProfile{
		ID:        p.ID,
		Email:     p.Email,
		Name:      p.Name,
		Role:      string(p.Role),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
