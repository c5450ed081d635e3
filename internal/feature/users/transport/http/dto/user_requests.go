// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

// CreateUserReq represents the request body for the admin-only POST /users.
// Unlike self-registration, an admin may set the role explicitly.
type CreateUserReq struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=128"`
	Role     string `json:"role" binding:"omitempty,oneof=USER ADMIN"`
}

// UpdateUserReq represents the request body for PATCH /users/:id.
// All fields are optional; absent fields are left unchanged.
type UpdateUserReq struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=100"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8,max=128"`
	Role     *string `json:"role" binding:"omitempty,oneof=USER ADMIN"`
}
