// Package catalog holds the static role → permission mapping.
// The catalog is immutable and queried only for introspection and policy
// checks; it is never persisted or mutated at runtime.
package catalog

import "account_backend/internal/feature/auth/domain/entity"

// Permission is a single permission code with its human description.
type Permission struct {
	Code        string
	Description string
}

// RolePermissions is a catalog entry for one role.
type RolePermissions struct {
	Role        entity.Role
	DisplayName string
	Description string
	Permissions []Permission
}

// RoleCatalog is the closed list of roles and their permissions, loaded at
// process start.
var RoleCatalog = []RolePermissions{
	{
		Role:        entity.RoleAdmin,
		DisplayName: "Administrador",
		Description: "Controle total de usuários, autenticação e auditoria",
		Permissions: []Permission{
			{Code: "users:read", Description: "Listar e consultar todos os usuários com filtros e paginação"},
			{Code: "users:create", Description: "Criar novos usuários e definir seus cargos"},
			{Code: "users:update", Description: "Atualizar qualquer informação de qualquer usuário"},
			{Code: "users:delete", Description: "Remover usuários do sistema"},
			{Code: "auth:password:reset:any", Description: "Solicitar e confirmar resets de senha para qualquer usuário"},
		},
	},
	{
		Role:        entity.RoleUser,
		DisplayName: "Usuário",
		Description: "Acesso básico aos próprios dados e operações de autenticação",
		Permissions: []Permission{
			{Code: "users:read:self", Description: "Consultar o próprio perfil com /users/me"},
			{Code: "users:list", Description: "Visualizar a lista geral de usuários (campos públicos)"},
			{Code: "auth:tokens:refresh", Description: "Renovar o access token a partir do refresh token"},
			{Code: "auth:password:reset:self", Description: "Solicitar e concluir reset da própria senha"},
		},
	},
}

// Find returns the catalog entry for role, or false when the role is absent.
func Find(role entity.Role) (RolePermissions, bool) {
	for _, definition := range RoleCatalog {
		if definition.Role == role {
			return definition, true
		}
	}
	return RolePermissions{}, false
}

// HasPermission reports whether role grants the given permission code.
// An unknown role grants nothing.
func HasPermission(role entity.Role, code string) bool {
	definition, ok := Find(role)
	if !ok {
		return false
	}
	for _, permission := range definition.Permissions {
		if permission.Code == code {
			return true
		}
	}
	return false
}
