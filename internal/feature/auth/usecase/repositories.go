package usecase

import (
	"context"

	"account_backend/internal/feature/auth/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindAll はページネーション付きで全ユーザーを作成日時の降順で取得します。
	FindAll(ctx context.Context, page, limit int) ([]*entity.User, error)

	// Update は既存ユーザーのフィールドを更新します。
	Update(ctx context.Context, user *entity.User) error

	// UpdatePassword は指定ユーザーのパスワードハッシュのみを更新します。
	UpdatePassword(ctx context.Context, userID, passwordHash string) error

	// Delete は指定されたIDのユーザーを削除します。
	Delete(ctx context.Context, id string) error
}

// ResetTokenRepository はパスワードリセットトークンの永続化層を抽象化します。
type ResetTokenRepository interface {
	// Create は新しいリセットトークンをストレージに永続化します。
	Create(ctx context.Context, token *entity.PasswordResetToken) error

	// FindByToken はトークン値で一致するレコードを取得します。
	// 存在しない場合、ErrResetTokenNotFoundを返します。
	// 期限切れトークンも有効期限から少なくとも24時間は取得可能である必要が
	// あります（呼び出し側がIsExpiredで期限切れエラーを区別するため）。
	// 保持期間を過ぎたトークンはErrResetTokenNotFoundになることがあります。
	FindByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error)

	// Delete はトークンを削除します（使用済みトークンの無効化）。
	Delete(ctx context.Context, token string) error
}
