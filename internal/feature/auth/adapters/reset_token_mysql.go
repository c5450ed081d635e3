package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/feature/auth/usecase"
)

// resetTokenMySQL はResetTokenRepositoryインターフェースのMySQL実装です。
type resetTokenMySQL struct {
	db *gorm.DB
}

// resetTokenMySQLがResetTokenRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ResetTokenRepository = (*resetTokenMySQL)(nil)

// NewResetTokenMySQL はresetTokenMySQLの新しいインスタンスを生成します。
func NewResetTokenMySQL(db *gorm.DB) *resetTokenMySQL {
	return &resetTokenMySQL{db: db}
}

// Create はリセットトークンをデータベースに追加します。
func (r *resetTokenMySQL) Create(ctx context.Context, token *entity.PasswordResetToken) error {
	model := ResetTokenModelFromEntity(token)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByToken はトークン値で一致するレコードを取得します。
// 存在しない場合、usecase.ErrResetTokenNotFoundを返します。
func (r *resetTokenMySQL) FindByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error) {
	var model ResetTokenModel
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrResetTokenNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// Delete はトークンを削除します。存在しないトークンの削除はエラーになりません。
func (r *resetTokenMySQL) Delete(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&ResetTokenModel{}).Error
}
