// Package handler はrolesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/auth/domain/entity"
	authdto "account_backend/internal/feature/auth/transport/http/dto"
	"account_backend/internal/feature/roles/catalog"
	dto "account_backend/internal/feature/roles/transport/http/dto"
	"account_backend/internal/feature/roles/usecase"
)

// RolesUsecase はロールカタログ参照のユースケースを定義します。
type RolesUsecase interface {
	ListPermissions() []catalog.RolePermissions
	GetRolePermissions(role entity.Role) (*catalog.RolePermissions, error)
	CheckPermission(role entity.Role, permission string) (*usecase.CheckResult, error)
}

// RolesHandler はロールカタログのHTTPリクエストを処理します。
type RolesHandler struct {
	roles RolesUsecase
}

// NewRolesHandler はRolesHandlerの新しいインスタンスを生成します。
func NewRolesHandler(roles RolesUsecase) *RolesHandler {
	return &RolesHandler{roles: roles}
}

// List は GET /roles を処理し、全ロールの権限定義を返します。
func (h *RolesHandler) List(c *gin.Context) {
	definitions := h.roles.ListPermissions()
	out := make([]dto.RolePermissionResponse, len(definitions))
	for i, definition := range definitions {
		out[i] = dto.RolePermissionFrom(definition)
	}
	c.JSON(http.StatusOK, out)
}

// Get は GET /roles/:role を処理します。
// カタログに存在しないロールは404を返します。
func (h *RolesHandler) Get(c *gin.Context) {
	definition, err := h.roles.GetRolePermissions(entity.Role(c.Param("role")))
	if err != nil {
		if errors.Is(err, usecase.ErrRoleNotFound) {
			c.JSON(http.StatusNotFound, authdto.ErrorResponse{Error: "Cargo não encontrado"})
			return
		}
		slog.Error("get role permissions failed", "error", err)
		c.JSON(http.StatusInternalServerError, authdto.ErrorResponse{Error: "Erro interno do servidor"})
		return
	}
	c.JSON(http.StatusOK, dto.RolePermissionFrom(*definition))
}

// CheckPermission は POST /roles/check-permission を処理します。
func (h *RolesHandler) CheckPermission(c *gin.Context) {
	var req dto.CheckRolePermissionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("check permission validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, authdto.ErrorResponse{Error: "Dados inválidos fornecidos"})
		return
	}

	result, err := h.roles.CheckPermission(entity.Role(req.Role), req.Permission)
	if err != nil {
		if errors.Is(err, usecase.ErrRoleNotFound) {
			c.JSON(http.StatusNotFound, authdto.ErrorResponse{Error: "Cargo não encontrado"})
			return
		}
		slog.Error("check permission failed", "error", err)
		c.JSON(http.StatusInternalServerError, authdto.ErrorResponse{Error: "Erro interno do servidor"})
		return
	}

	c.JSON(http.StatusOK, dto.CheckRolePermissionResponse{
		Role:       string(result.Role),
		Permission: result.Permission,
		Allowed:    result.Allowed,
	})
}
