// Package dto defines data transfer objects for the roles feature's HTTP transport layer.
package dto

import "account_backend/internal/feature/roles/catalog"

// PermissionItem is one permission code with its description.
type PermissionItem struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// RolePermissionResponse is the response body describing one role.
type RolePermissionResponse struct {
	Role        string           `json:"role"`
	DisplayName string           `json:"displayName"`
	Description string           `json:"description"`
	Permissions []PermissionItem `json:"permissions"`
}

// CheckRolePermissionReq represents the request body for /roles/check-permission.
type CheckRolePermissionReq struct {
	Role       string `json:"role" binding:"required"`
	Permission string `json:"permission" binding:"required"`
}

// CheckRolePermissionResponse is the response body for a permission check.
type CheckRolePermissionResponse struct {
	Role       string `json:"role"`
	Permission string `json:"permission"`
	Allowed    bool   `json:"allowed"`
}

// RolePermissionFrom converts a catalog entry to its response representation.
func RolePermissionFrom(definition catalog.RolePermissions) RolePermissionResponse {
	permissions := make([]PermissionItem, len(definition.Permissions))
	for i, p := range definition.Permissions {
		permissions[i] = PermissionItem{Code: p.Code, Description: p.Description}
	}
	return RolePermissionResponse{
		Role:        string(definition.Role),
		DisplayName: definition.DisplayName,
		Description: definition.Description,
		Permissions: permissions,
	}
}
