// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/platform/reset"
	"account_backend/internal/platform/token"
)

// passwordResetMessage はアカウントの存在有無に関わらず常に同じ文面で返されます。
// ユーザー列挙攻撃を防止するため、この文面を分岐させてはいけません。
const passwordResetMessage = "Se o email estiver cadastrado, enviaremos instruções para resetar a senha"

// PasswordHasher はパスワードのハッシュ化と照合を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/hash）ではなくコンシューマー（usecase）が定義します。
type PasswordHasher interface {
	// Hash は平文パスワードのソルト付きダイジェストを生成します。
	Hash(plaintext string) (string, error)
	// Compare は平文とダイジェストの一致を検証します。
	Compare(plaintext, digest string) bool
	// CompareDummy はユーザー未検出時にも比較コストを消費するためのダミー照合です。
	CompareDummy(plaintext string) bool
}

// TokenService はアクセス/リフレッシュトークンの発行と検証を抽象化します。
type TokenService interface {
	// GenerateTokens はペイロードを両クラスのシークレットで署名します。
	GenerateTokens(payload token.Payload) (*token.Pair, error)
	// GenerateAccessToken はアクセストークンのみを再発行します。
	GenerateAccessToken(payload token.Payload) (string, int, error)
	// VerifyRefreshToken はリフレッシュ用シークレットで署名と有効期限を検証します。
	VerifyRefreshToken(tokenString string) (*token.Payload, error)
}

// ResetTokenGenerator は単回使用のリセットトークン生成を抽象化します。
type ResetTokenGenerator interface {
	// GenerateToken は暗号学的に安全なランダムトークンを生成します。
	GenerateToken() (*reset.Token, error)
}

// Profile はパスワードハッシュを除外したユーザーの外部向け表現です。
type Profile struct {
	ID        string
	Email     string
	Name      string
	Role      entity.Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AuthResult は登録・ログイン成功時の結果です。
type AuthResult struct {
	User         Profile
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
}

// RefreshResult はトークン更新成功時の結果です。
type RefreshResult struct {
	AccessToken string
	ExpiresIn   int
}

// ResetRequestResult はパスワードリセット要求の結果です。
// CorrelationID はリクエスト毎に新規生成され、アカウントの存在を漏らしません。
type ResetRequestResult struct {
	Message       string
	CorrelationID string
	ExpiresIn     int
}

// AuthUsecase は認証ビジネスロジックを実装します。
type AuthUsecase struct {
	users       UserRepository
	resetTokens ResetTokenRepository
	hasher      PasswordHasher
	tokens      TokenService
	resetGen    ResetTokenGenerator
}

// NewAuthUsecase はAuthUsecaseの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、コラボレーターを外部から注入します。
func NewAuthUsecase(
	users UserRepository,
	resetTokens ResetTokenRepository,
	hasher PasswordHasher,
	tokens TokenService,
	resetGen ResetTokenGenerator,
) *AuthUsecase {
	return &AuthUsecase{
		users:       users,
		resetTokens: resetTokens,
		hasher:      hasher,
		tokens:      tokens,
		resetGen:    resetGen,
	}
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録し、トークンペアを発行します。
// ロールは常にUSERに固定され、呼び出し側から制御できません。
// メールアドレス重複時はErrEmailAlreadyExistsを返します。
func (u *AuthUsecase) Register(ctx context.Context, email, name, password string) (*AuthResult, error) {
	// 既存メールの事前チェック（UX用の早期リターン）。
	// 平行登録のレースはストレージ層のユニーク制約が最終的に防ぐ。
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		ID:       uuid.NewString(),
		Email:    email,
		Name:     name,
		Password: hashed,
		Role:     entity.RoleUser,
	}
	if err := u.users.Create(ctx, user); err != nil {
		// 制約違反（コミット時に発覚した重複）も事前チェックと同じエラーに揃える
		return nil, err
	}

	result, err := u.issueTokens(user)
	if err != nil {
		return nil, err
	}

	slog.Info("user registered", "user_id", user.ID)
	return result, nil
}

// Login はユーザーを認証し、成功時にトークンペアを返します。
// メール未登録とパスワード不一致は同一のErrInvalidCredentialsになります。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// 常にパスワード検証コストを消費する
			u.hasher.CompareDummy(password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	if !u.hasher.Compare(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	result, err := u.issueTokens(user)
	if err != nil {
		return nil, err
	}

	slog.Info("user login successful", "user_id", user.ID)
	return result, nil
}

// Refresh はリフレッシュトークンを検証し、新しいアクセストークンを発行します。
// リフレッシュトークン自体はローテーションしません（アクセストークンのみ再発行）。
// 検証失敗・対象ユーザー不在はいずれもErrInvalidRefreshTokenになります。
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*RefreshResult, error) {
	payload, err := u.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := u.users.FindByID(ctx, payload.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}

	// 現在のユーザー情報で再署名する（ロール変更を反映させるため）
	accessToken, expiresIn, err := u.tokens.GenerateAccessToken(token.Payload{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	slog.Info("token refreshed", "user_id", user.ID)
	return &RefreshResult{AccessToken: accessToken, ExpiresIn: expiresIn}, nil
}

// RequestPasswordReset はリセットトークンを発行します。
// アカウントの存在有無に関わらず同一のメッセージと新規相関IDを返します。
// トークンが永続化されるのはユーザーが実在する場合のみです。
func (u *AuthUsecase) RequestPasswordReset(ctx context.Context, email string) (*ResetRequestResult, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	generated, err := u.resetGen.GenerateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate reset token: %w", err)
	}

	if user != nil {
		resetToken := &entity.PasswordResetToken{
			Token:     generated.Value,
			UserID:    user.ID,
			ExpiresAt: generated.ExpiresAt,
			CreatedAt: time.Now(),
		}
		if err := u.resetTokens.Create(ctx, resetToken); err != nil {
			return nil, fmt.Errorf("failed to store reset token: %w", err)
		}
		slog.Info("password reset token created", "user_id", user.ID)
	} else {
		slog.Info("password reset requested for unknown email")
	}

	return &ResetRequestResult{
		Message:       passwordResetMessage,
		CorrelationID: uuid.NewString(),
		ExpiresIn:     generated.ExpiresInSeconds,
	}, nil
}

// ResetPassword はリセットトークンを消費して新しいパスワードを設定します。
// トークン不明はErrResetTokenNotFound、期限切れ（厳密にexpiresAt < now）は
// ErrResetTokenExpiredを返します。成功時はトークンを削除し再使用を防ぎます。
func (u *AuthUsecase) ResetPassword(ctx context.Context, tokenValue, newPassword string) error {
	resetToken, err := u.resetTokens.FindByToken(ctx, tokenValue)
	if err != nil {
		if errors.Is(err, ErrResetTokenNotFound) {
			return ErrResetTokenNotFound
		}
		return fmt.Errorf("failed to find reset token: %w", err)
	}

	if resetToken.IsExpired() {
		return ErrResetTokenExpired
	}

	hashed, err := u.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := u.users.UpdatePassword(ctx, resetToken.UserID, hashed); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	// 使用済みトークンは必ず削除し、リプレイを防止する
	if err := u.resetTokens.Delete(ctx, tokenValue); err != nil {
		return fmt.Errorf("failed to invalidate reset token: %w", err)
	}

	slog.Info("password reset completed", "user_id", resetToken.UserID)
	return nil
}

// ValidateUser は検証済みトークンのsubjectからプリンシパルを再構成します。
// ユーザーが存在しない場合はエラーではなくnilを返し、拒否の判断は呼び出し側に委ねます。
func (u *AuthUsecase) ValidateUser(ctx context.Context, userID string) (*Profile, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}
	profile := profileFrom(user)
	return &profile, nil
}

// issueTokens はユーザー情報からトークンペアを生成し、結果DTOを組み立てます。
func (u *AuthUsecase) issueTokens(user *entity.User) (*AuthResult, error) {
	pair, err := u.tokens.GenerateTokens(token.Payload{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}
	return &AuthResult{
		User:         profileFrom(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

// profileFrom はパスワードハッシュを除外した外部向け表現に変換します。
func profileFrom(user *entity.User) Profile {
	return Profile{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
