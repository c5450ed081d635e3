// Package usecase はrolesフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"errors"
	"log/slog"

	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/feature/roles/catalog"
)

// ErrRoleNotFound is returned when a role is absent from the catalog.
// With a closed role enum this is defensive; it should not occur in practice.
var ErrRoleNotFound = errors.New("role not found")

// CheckResult はロールと権限コードの照合結果です。
type CheckResult struct {
	Role       entity.Role
	Permission string
	Allowed    bool
}

// RolesUsecase はロールカタログの参照ロジックを実装します。
// カタログは読み取り専用のため、リクエスト間で共有しても安全です。
type RolesUsecase struct {
	definitions []catalog.RolePermissions
}

// NewRolesUsecase はRolesUsecaseの新しいインスタンスを生成します。
func NewRolesUsecase() *RolesUsecase {
	return &RolesUsecase{definitions: catalog.RoleCatalog}
}

// ListPermissions は全ロールの権限定義を返します。
func (u *RolesUsecase) ListPermissions() []catalog.RolePermissions {
	return u.definitions
}

// GetRolePermissions は指定ロールの権限定義を返します。
// カタログに存在しないロールはErrRoleNotFoundになります。
func (u *RolesUsecase) GetRolePermissions(role entity.Role) (*catalog.RolePermissions, error) {
	definition, ok := catalog.Find(role)
	if !ok {
		slog.Warn("role not found in catalog", "role", role)
		return nil, ErrRoleNotFound
	}
	return &definition, nil
}

// CheckPermission は指定ロールが権限コードを持つかを判定します。
func (u *RolesUsecase) CheckPermission(role entity.Role, permission string) (*CheckResult, error) {
	if _, ok := catalog.Find(role); !ok {
		slog.Warn("role not found in catalog", "role", role)
		return nil, ErrRoleNotFound
	}
	return &CheckResult{
		Role:       role,
		Permission: permission,
		Allowed:    catalog.HasPermission(role, permission),
	}, nil
}
