package dto

// RequestPasswordResetReq represents the request body for /auth/requestPasswordReset.
type RequestPasswordResetReq struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordReq represents the request body for /auth/resetPassword.
type ResetPasswordReq struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8,max=128"`
}
