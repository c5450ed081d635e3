// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/auth/domain/entity"
	authdto "account_backend/internal/feature/auth/transport/http/dto"
	"account_backend/internal/feature/auth/transport/middleware"
	authusecase "account_backend/internal/feature/auth/usecase"
	dto "account_backend/internal/feature/users/transport/http/dto"
	"account_backend/internal/feature/users/usecase"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// UsersUsecase はユーザーディレクトリ操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UsersUsecase interface {
	FindMe(ctx context.Context, principalID string) (*authusecase.Profile, error)
	FindAll(ctx context.Context, page, limit int) ([]*authusecase.Profile, int64, error)
	FindOne(ctx context.Context, id string, principal *usecase.Principal) (*authusecase.Profile, error)
	Create(ctx context.Context, input usecase.CreateUserInput) (*authusecase.Profile, error)
	Update(ctx context.Context, id string, input usecase.UpdateUserInput, principal *usecase.Principal) (*authusecase.Profile, error)
	Delete(ctx context.Context, id string, principal *usecase.Principal) error
}

// UsersHandler はユーザーディレクトリのHTTPリクエストを処理します。
type UsersHandler struct {
	users UsersUsecase
}

// NewUsersHandler はUsersHandlerの新しいインスタンスを生成します。
func NewUsersHandler(users UsersUsecase) *UsersHandler {
	return &UsersHandler{users: users}
}

// FindMe は GET /users/me を処理します。
func (h *UsersHandler) FindMe(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, authdto.ErrorResponse{Error: "Token de acesso inválido ou expirado"})
		return
	}

	profile, err := h.users.FindMe(c.Request.Context(), principal.ID)
	if err != nil {
		h.writeError(c, "find me failed", err)
		return
	}
	c.JSON(http.StatusOK, authdto.UserProfileFrom(*profile))
}

// FindAll は GET /users を処理します（管理者専用ルート）。
// page・limitはクエリパラメータで指定し、不正な値は400を返します。
// レスポンスはプロフィール一覧とページネーションメタ情報のエンベロープです。
func (h *UsersHandler) FindAll(c *gin.Context) {
	page, ok := h.queryInt(c, "page", defaultPage, 1, 1000)
	if !ok {
		return
	}
	limit, ok := h.queryInt(c, "limit", defaultLimit, 1, maxLimit)
	if !ok {
		return
	}

	profiles, total, err := h.users.FindAll(c.Request.Context(), page, limit)
	if err != nil {
		h.writeError(c, "list users failed", err)
		return
	}

	out := make([]authdto.UserProfile, len(profiles))
	for i, p := range profiles {
		out[i] = authdto.UserProfileFrom(*p)
	}
	c.JSON(http.StatusOK, dto.NewUserListResponse(out, page, limit, total))
}

// FindOne は GET /users/:id を処理します。
func (h *UsersHandler) FindOne(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, authdto.ErrorResponse{Error: "Token de acesso inválido ou expirado"})
		return
	}

	profile, err := h.users.FindOne(c.Request.Context(), c.Param("id"), principal)
	if err != nil {
		h.writeError(c, "find user failed", err)
		return
	}
	c.JSON(http.StatusOK, authdto.UserProfileFrom(*profile))
}

// Create は POST /users を処理します（管理者専用ルート）。
func (h *UsersHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, authdto.ErrorResponse{Error: "Dados inválidos fornecidos"})
		return
	}
	if err := authdto.ValidatePasswordStrength(req.Password); err != nil {
		c.JSON(http.StatusBadRequest, authdto.ErrorResponse{Error: "Senha deve conter ao menos 1 minúscula, 1 maiúscula, 1 número e 1 caractere especial"})
		return
	}

	profile, err := h.users.Create(c.Request.Context(), usecase.CreateUserInput{
		Email:    authdto.NormalizeEmail(req.Email),
		Name:     req.Name,
		Password: req.Password,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		h.writeError(c, "create user failed", err)
		return
	}
	c.JSON(http.StatusCreated, authdto.UserProfileFrom(*profile))
}

// Update は PATCH /users/:id を処理します。
func (h *UsersHandler) Update(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, authdto.ErrorResponse{Error: "Token de acesso inválido ou expirado"})
		return
	}

	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, authdto.ErrorResponse{Error: "Dados inválidos fornecidos"})
		return
	}
	if req.Password != nil {
		if err := authdto.ValidatePasswordStrength(*req.Password); err != nil {
			c.JSON(http.StatusBadRequest, authdto.ErrorResponse{Error: "Senha deve conter ao menos 1 minúscula, 1 maiúscula, 1 número e 1 caractere especial"})
			return
		}
	}

	input := usecase.UpdateUserInput{
		Name:     req.Name,
		Password: req.Password,
	}
	if req.Email != nil {
		normalized := authdto.NormalizeEmail(*req.Email)
		input.Email = &normalized
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		input.Role = &role
	}

	profile, err := h.users.Update(c.Request.Context(), c.Param("id"), input, principal)
	if err != nil {
		h.writeError(c, "update user failed", err)
		return
	}
	c.JSON(http.StatusOK, authdto.UserProfileFrom(*profile))
}

// Delete は DELETE /users/:id を処理します（管理者専用ルート）。
// 成功時は204を返します。
func (h *UsersHandler) Delete(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, authdto.ErrorResponse{Error: "Token de acesso inválido ou expirado"})
		return
	}

	if err := h.users.Delete(c.Request.Context(), c.Param("id"), principal); err != nil {
		h.writeError(c, "delete user failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// queryInt はクエリパラメータを整数として解析します。
// 不正な値の場合は400を書き込み、falseを返します。
func (h *UsersHandler) queryInt(c *gin.Context, name string, def, min, max int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < min || value > max {
		c.JSON(http.StatusBadRequest, authdto.ErrorResponse{Error: "Dados inválidos fornecidos"})
		return 0, false
	}
	return value, true
}

// writeError はドメインエラーをHTTPステータスと固定メッセージへ変換します。
func (h *UsersHandler) writeError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, authusecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, authdto.ErrorResponse{Error: "Usuário não encontrado"})
	case errors.Is(err, usecase.ErrSelfRoleChange):
		c.JSON(http.StatusForbidden, authdto.ErrorResponse{Error: "Usuários não podem alterar o próprio papel"})
	case errors.Is(err, usecase.ErrSelfDelete):
		c.JSON(http.StatusForbidden, authdto.ErrorResponse{Error: "Não é possível deletar sua própria conta"})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, authdto.ErrorResponse{Error: "Acesso negado"})
	case errors.Is(err, authusecase.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, authdto.ErrorResponse{Error: "Email já está em uso"})
	case errors.Is(err, usecase.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, authdto.ErrorResponse{Error: "Papel inválido"})
	default:
		slog.Error(msg, "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, authdto.ErrorResponse{Error: "Erro interno do servidor"})
	}
}
