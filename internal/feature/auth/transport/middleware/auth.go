// Package middleware provides the request-authentication and authorization
// guards applied by the router.
package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/feature/auth/usecase"
	"account_backend/internal/platform/token"
)

// ContextPrincipal is the gin context key holding the authenticated principal.
const ContextPrincipal = "principal"

// TokenVerifier はアクセストークンの検証を抽象化します。
type TokenVerifier interface {
	// VerifyAccessToken はアクセス用シークレットで署名と有効期限を検証します。
	VerifyAccessToken(tokenString string) (*token.Payload, error)
}

// UserValidator は検証済みトークンのsubjectからプリンシパルを再構成します。
type UserValidator interface {
	// ValidateUser はユーザーが存在しない場合、エラーではなくnilを返します。
	ValidateUser(ctx context.Context, userID string) (*usecase.Profile, error)
}

// AuthRequired はBearerアクセストークンを検証し、プリンシパルをコンテキストへ
// 格納するGinミドルウェアを返します。検証失敗・ユーザー不在は401で中断します。
func AuthRequired(verifier TokenVerifier, users UserValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token de acesso inválido ou expirado"})
			return
		}

		payload, err := verifier.VerifyAccessToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token de acesso inválido ou expirado"})
			return
		}

		// トークンが有効でも、subjectのユーザーが消えていれば拒否する
		principal, err := users.ValidateUser(c.Request.Context(), payload.UserID)
		if err != nil || principal == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token de acesso inválido ou expirado"})
			return
		}

		c.Set(ContextPrincipal, principal)
		c.Next()
	}
}

// RequireAdmin はプリンシパルがADMINロールを持つことを要求するガードです。
// AuthRequiredの後段で使用します。
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token de acesso inválido ou expirado"})
			return
		}
		if principal.Role != entity.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Acesso negado"})
			return
		}
		c.Next()
	}
}

// PrincipalFrom はコンテキストから認証済みプリンシパルを取り出します。
func PrincipalFrom(c *gin.Context) (*usecase.Profile, bool) {
	value, exists := c.Get(ContextPrincipal)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*usecase.Profile)
	return principal, ok
}

// bearerToken はAuthorizationヘッダーからBearerトークンを抽出します。
func bearerToken(c *gin.Context) (string, bool) {
	const prefix = "Bearer "
	auth := c.GetHeader("Authorization")
	if len(auth) <= len(prefix) || auth[:len(prefix)] != prefix {
		return "", false
	}
	return auth[len(prefix):], true
}
