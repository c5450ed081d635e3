// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/auth/transport/http/dto"
	"account_backend/internal/feature/auth/usecase"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は新規ユーザーを登録し、トークンペアを発行します。
	Register(ctx context.Context, email, name, password string) (*usecase.AuthResult, error)
	// Login はユーザーを認証し、成功時にトークンペアを返します。
	Login(ctx context.Context, email, password string) (*usecase.AuthResult, error)
	// Refresh はリフレッシュトークンから新しいアクセストークンを発行します。
	Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshResult, error)
	// RequestPasswordReset はパスワードリセットトークンを発行します。
	RequestPasswordReset(ctx context.Context, email string) (*usecase.ResetRequestResult, error)
	// ResetPassword はリセットトークンを消費して新しいパスワードを設定します。
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - メールアドレス重複時は409を返却
// - 成功時は201でプロフィールとトークンペアを返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Dados inválidos fornecidos"})
		return
	}
	if err := dto.ValidatePasswordStrength(req.Password); err != nil {
		slog.Warn("register password policy failed", "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Senha deve conter ao menos 1 minúscula, 1 maiúscula, 1 número e 1 caractere especial"})
		return
	}
	email := dto.NormalizeEmail(req.Email)

	result, err := h.auth.Register(c.Request.Context(), email, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("register failed: email in use", "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Email já está em uso"})
			return
		}
		internalError(c, "register failed", err)
		return
	}

	slog.Info("user register successful", "user_id", result.User.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, authResponse(result))
}

// Login はユーザーログインAPIエンドポイントを処理します。
// メール未登録とパスワード不一致は完全に同一のレスポンスになります。
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Dados inválidos fornecidos"})
		return
	}
	email := dto.NormalizeEmail(req.Email)

	result, err := h.auth.Login(c.Request.Context(), email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Credenciais inválidas"})
			return
		}
		internalError(c, "login failed", err)
		return
	}

	slog.Info("user login successful", "user_id", result.User.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, authResponse(result))
}

// Refresh はアクセストークン再発行APIエンドポイントを処理します。
// 検証エラーの種別（署名不正・期限切れ・ユーザー不在）は応答から判別できません。
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("refresh validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Dados inválidos fornecidos"})
		return
	}

	result, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidRefreshToken) {
			slog.Warn("refresh failed", "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Refresh token inválido ou expirado"})
			return
		}
		internalError(c, "refresh failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.RefreshResponse{
		AccessToken: result.AccessToken,
		ExpiresIn:   result.ExpiresIn,
	})
}

// RequestPasswordReset はパスワードリセット要求APIエンドポイントを処理します。
// アカウントの存在有無に関わらずレスポンスは同一です。
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req dto.RequestPasswordResetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("password reset request validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Dados inválidos fornecidos"})
		return
	}
	email := dto.NormalizeEmail(req.Email)

	result, err := h.auth.RequestPasswordReset(c.Request.Context(), email)
	if err != nil {
		internalError(c, "password reset request failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.RequestPasswordResetResponse{
		Message:   result.Message,
		Token:     result.CorrelationID,
		ExpiresIn: result.ExpiresIn,
	})
}

// ResetPassword はパスワードリセット確定APIエンドポイントを処理します。
// - トークン不明時は404を返却
// - トークン期限切れ時は400を返却
// - 成功時は200を返却
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("password reset validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Dados inválidos fornecidos"})
		return
	}
	if err := dto.ValidatePasswordStrength(req.NewPassword); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Senha deve conter ao menos 1 minúscula, 1 maiúscula, 1 número e 1 caractere especial"})
		return
	}

	if err := h.auth.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, usecase.ErrResetTokenNotFound):
			slog.Warn("password reset failed: invalid token", "remote_addr", c.ClientIP())
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Token de reset inválido"})
		case errors.Is(err, usecase.ErrResetTokenExpired):
			slog.Warn("password reset failed: expired token", "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Token de reset expirado"})
		default:
			internalError(c, "password reset failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Senha atualizada com sucesso"})
}

// authResponse は登録・ログイン共通のレスポンスを組み立てます。
func authResponse(result *usecase.AuthResult) dto.AuthResponse {
	return dto.AuthResponse{
		User:         dto.UserProfileFrom(result.User),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	}
}

// internalError は未分類エラーを500に変換します。内部詳細はログにのみ残します。
func internalError(c *gin.Context, msg string, err error) {
	slog.Error(msg, "error", err, "remote_addr", c.ClientIP())
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Erro interno do servidor"})
}
