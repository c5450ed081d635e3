// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/feature/auth/usecase"
)

// userMySQL はUserRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type userMySQL struct {
	db *gorm.DB
}

// userMySQLがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userMySQL)(nil)

// NewUserMySQL は指定されたgorm.DB接続でuserMySQLの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserMySQL(db *gorm.DB) *userMySQL {
	return &userMySQL{db: db}
}

// Create はユーザーをデータベースに追加します。
// 同じメールアドレスのユーザーが既に存在する場合、usecase.ErrEmailAlreadyExistsを返します。
// ユニーク制約がコミット時に検出した重複も同じエラーに正規化されます。
func (r *userMySQL) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return translateDuplicate(err)
	}
	return nil
}

// FindByEmail はメールアドレスでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userMySQL) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID はIDでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userMySQL) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindAll はページネーション付きで全ユーザーを作成日時の降順で取得します。
// page・limitが不正な場合はデフォルト値（1ページ目・10件）を使用します。
func (r *userMySQL) FindAll(ctx context.Context, page, limit int) ([]*entity.User, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var users []*entity.User
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Count は登録済みユーザーの総件数を返します。
// FindAllのページネーションメタ情報の算出に使用されます。
func (r *userMySQL) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.User{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Update は既存ユーザーのフィールドを更新します。
// メールアドレス変更が他ユーザーと衝突する場合、usecase.ErrEmailAlreadyExistsを返します。
func (r *userMySQL) Update(ctx context.Context, u *entity.User) error {
	result := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", u.ID).Updates(map[string]interface{}{
		"email":    u.Email,
		"name":     u.Name,
		"password": u.Password,
		"role":     u.Role,
	})
	if result.Error != nil {
		return translateDuplicate(result.Error)
	}
	// DSNのclientFoundRows=trueによりRowsAffectedは一致行数を報告するため、
	// 値が変わらない更新でも既存行が0件扱いになることはない
	if result.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// UpdatePassword は指定ユーザーのパスワードハッシュのみを更新します。
func (r *userMySQL) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", userID).
		Update("password", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// Delete は指定されたIDのユーザーを削除します。
// 該当ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userMySQL) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// translateDuplicate はMySQLのユニークキー重複エラーをドメインエラーへ変換します。
func translateDuplicate(err error) error {
	// MySQLエラー1062: ユニークキーの重複エントリ
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return usecase.ErrEmailAlreadyExists
	}
	// SQLite（テスト用インメモリDB）の同種エラーも同様に扱う
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return usecase.ErrEmailAlreadyExists
	}
	return err
}
