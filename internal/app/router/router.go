package router

import (
	"github.com/gin-gonic/gin"

	authhandler "account_backend/internal/feature/auth/transport/handler"
	"account_backend/internal/feature/auth/transport/middleware"
	roleshandler "account_backend/internal/feature/roles/transport/handler"
	usershandler "account_backend/internal/feature/users/transport/handler"
	"account_backend/internal/platform/http/handler"
)

// NewRouter はルートテーブルを組み立てます。
// 認可はルート単位の明示的なガード（AuthRequired / RequireAdmin）で適用し、
// 所有権ベースのルールはユースケース内で評価されます。
func NewRouter(
	authHandler *authhandler.AuthHandler,
	usersHandler *usershandler.UsersHandler,
	rolesHandler *roleshandler.RolesHandler,
	verifier middleware.TokenVerifier,
	validator middleware.UserValidator,
) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)

	// 認証エンドポイント
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/requestPasswordReset", authHandler.RequestPasswordReset)
		auth.POST("/resetPassword", authHandler.ResetPassword)
	}

	// 認証必須のルート
	authRequired := middleware.AuthRequired(verifier, validator)

	users := r.Group("/users")
	users.Use(authRequired)
	{
		users.GET("/me", usersHandler.FindMe)
		users.GET("/:id", usersHandler.FindOne)
		users.PATCH("/:id", usersHandler.Update)

		// 管理者専用
		admin := users.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("", usersHandler.FindAll)
			admin.POST("", usersHandler.Create)
			admin.DELETE("/:id", usersHandler.Delete)
		}
	}

	roles := r.Group("/roles")
	roles.Use(authRequired)
	{
		roles.GET("", rolesHandler.List)
		roles.GET("/:role", rolesHandler.Get)
		roles.POST("/check-permission", rolesHandler.CheckPermission)
	}

	return r
}
