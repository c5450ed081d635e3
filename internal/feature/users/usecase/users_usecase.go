// Package usecase はusersフィーチャーのビジネスロジックを実装します。
//
// ユーザーディレクトリのCRUDと、操作ごとの認可ルール（所有権・ロール）を
// ここで評価します。ルールの評価順序は固定です:
// 対象の存在確認 → 本人/管理者チェック → ロール昇格ガード →
// 管理者自己削除ガード → メール一意性の再確認。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"account_backend/internal/feature/auth/domain/entity"
	authusecase "account_backend/internal/feature/auth/usecase"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// authフィーチャーと同じアダプター実装がこのインターフェースも満たします。
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindAll(ctx context.Context, page, limit int) ([]*entity.User, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
}

// PasswordHasher はパスワードのハッシュ化を抽象化します。
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
}

// IDGenerator は新規ユーザーIDの生成を抽象化します。
type IDGenerator func() string

// Principal は認証済みリクエストの主体です。
type Principal = authusecase.Profile

// CreateUserInput は管理者によるユーザー作成の入力です。
// Roleが空の場合はUSERになります。
type CreateUserInput struct {
	Email    string
	Name     string
	Password string
	Role     entity.Role
}

// UpdateUserInput はユーザー更新の入力です。nilのフィールドは変更されません。
type UpdateUserInput struct {
	Email    *string
	Name     *string
	Password *string
	Role     *entity.Role
}

// UsersUsecase はユーザーディレクトリのビジネスロジックを実装します。
type UsersUsecase struct {
	users  UserRepository
	hasher PasswordHasher
	newID  IDGenerator
}

// NewUsersUsecase はUsersUsecaseの新しいインスタンスを生成します。
func NewUsersUsecase(users UserRepository, hasher PasswordHasher, newID IDGenerator) *UsersUsecase {
	return &UsersUsecase{
		users:  users,
		hasher: hasher,
		newID:  newID,
	}
}

// FindMe はログイン中ユーザー自身のプロフィールを取得します。
// トークンが有効でもユーザーが削除済みの場合はErrUserNotFoundを返します。
func (u *UsersUsecase) FindMe(ctx context.Context, principalID string) (*authusecase.Profile, error) {
	user, err := u.users.FindByID(ctx, principalID)
	if err != nil {
		return nil, err
	}
	return profilePtr(user), nil
}

// FindAll はページネーション付きで全ユーザーと総件数を取得します。
// 総件数はレスポンスのページネーションメタ情報に使用されます。
// 管理者専用ルートのガードはトランスポート層で適用されます。
func (u *UsersUsecase) FindAll(ctx context.Context, page, limit int) ([]*authusecase.Profile, int64, error) {
	users, err := u.users.FindAll(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	total, err := u.users.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	profiles := make([]*authusecase.Profile, len(users))
	for i, user := range users {
		profiles[i] = profilePtr(user)
	}
	return profiles, total, nil
}

// FindOne は指定IDのユーザーを取得します。
// 存在確認を認可チェックより先に行います（エラー順序で存在を漏らさないため、
// この順序は全操作で共通です）。一般ユーザーは自分自身のみ参照できます。
func (u *UsersUsecase) FindOne(ctx context.Context, id string, principal *Principal) (*authusecase.Profile, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if principal.Role != entity.RoleAdmin && principal.ID != id {
		return nil, ErrForbidden
	}

	return profilePtr(user), nil
}

// Create は管理者による新規ユーザー作成を処理します。
// 登録と異なり、管理者はロールを指定できます（省略時はUSER）。
func (u *UsersUsecase) Create(ctx context.Context, input CreateUserInput) (*authusecase.Profile, error) {
	role := input.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	if _, err := u.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, authusecase.ErrEmailAlreadyExists
	} else if !errors.Is(err, authusecase.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hashed, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		ID:       u.newID(),
		Email:    input.Email,
		Name:     input.Name,
		Password: hashed,
		Role:     role,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	slog.Info("user created by admin", "user_id", user.ID, "role", user.Role)
	return profilePtr(user), nil
}

// Update は既存ユーザーの更新を処理します。認可ルールは固定の順序で評価されます:
//  1. 対象が存在しない場合、ErrUserNotFound
//  2. 本人でも管理者でもない場合、ErrForbidden
//  3. 一般ユーザーによるロール変更は自分自身に対してもErrSelfRoleChange
//  4. メールアドレス変更時は他ユーザーとの一意性を再確認し、衝突時はErrEmailAlreadyExists
func (u *UsersUsecase) Update(ctx context.Context, id string, input UpdateUserInput, principal *Principal) (*authusecase.Profile, error) {
	existing, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	isOwner := principal.ID == id
	isAdmin := principal.Role == entity.RoleAdmin

	if !isOwner && !isAdmin {
		return nil, ErrForbidden
	}

	// ロール昇格ガードは他のフィールド更新より先に評価する
	if input.Role != nil && !isAdmin {
		return nil, ErrSelfRoleChange
	}
	if input.Role != nil && !input.Role.Valid() {
		return nil, ErrInvalidRole
	}

	if input.Email != nil && *input.Email != existing.Email {
		if _, err := u.users.FindByEmail(ctx, *input.Email); err == nil {
			return nil, authusecase.ErrEmailAlreadyExists
		} else if !errors.Is(err, authusecase.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to check existing email: %w", err)
		}
		existing.Email = *input.Email
	}

	if input.Name != nil {
		existing.Name = *input.Name
	}
	if input.Role != nil && isAdmin {
		existing.Role = *input.Role
	}
	if input.Password != nil {
		hashed, err := u.hasher.Hash(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		existing.Password = hashed
	}

	if err := u.users.Update(ctx, existing); err != nil {
		return nil, err
	}

	updated, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	slog.Info("user updated", "user_id", id, "by", principal.ID)
	return profilePtr(updated), nil
}

// Delete は指定IDのユーザーを削除します。
// 管理者であっても自分自身のアカウントは削除できません（ErrSelfDelete）。
func (u *UsersUsecase) Delete(ctx context.Context, id string, principal *Principal) error {
	if _, err := u.users.FindByID(ctx, id); err != nil {
		return err
	}

	if principal.ID == id {
		return ErrSelfDelete
	}

	if err := u.users.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("user deleted", "user_id", id, "by", principal.ID)
	return nil
}

// profilePtr はパスワードハッシュを除外した外部向け表現に変換します。
func profilePtr(user *entity.User) *authusecase.Profile {
	return &authusecase.Profile{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
