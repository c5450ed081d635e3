package main

import (
	"log"

	"github.com/google/uuid"
	redisv9 "github.com/redis/go-redis/v9"

	"account_backend/internal/app/di"
	"account_backend/internal/app/router"
	"account_backend/internal/config"
	authadapters "account_backend/internal/feature/auth/adapters"
	authhandler "account_backend/internal/feature/auth/transport/handler"
	authusecase "account_backend/internal/feature/auth/usecase"
	roleshandler "account_backend/internal/feature/roles/transport/handler"
	rolesusecase "account_backend/internal/feature/roles/usecase"
	usershandler "account_backend/internal/feature/users/transport/handler"
	usersusecase "account_backend/internal/feature/users/usecase"
	infradb "account_backend/internal/platform/db"
	"account_backend/internal/platform/hash"
	infraredis "account_backend/internal/platform/redis"
	"account_backend/internal/platform/reset"
	"account_backend/internal/platform/token"
)

func main() {
	// 設定
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// JWTシークレットチェック（開発中の注意喚起）
	if cfg.JWT.AccessSecret == "" || cfg.JWT.RefreshSecret == "" {
		log.Println("[WARN] JWT secrets are not set. Set strong distinct secrets in production.")
	}

	// db
	db := infradb.OpenDB(cfg.DB)

	// Redis（未設定・接続不可の場合はMySQLフォールバック）
	var rdb *redisv9.Client
	if cfg.Redis.Host != "" {
		if tmp, err := infraredis.NewRedisClient(cfg.Redis); err != nil {
			log.Println("[WARN] Redis unavailable. Falling back to MySQL for reset tokens.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	resetTokenRepo := di.NewResetTokenRepository(rdb, db)

	// Platform services
	hasher := hash.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokenService := token.NewService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpires,
		cfg.JWT.RefreshExpires,
	)
	resetGenerator := reset.NewGenerator(cfg.Auth.ResetTokenExpiry)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, resetTokenRepo, hasher, tokenService, resetGenerator)
	usersUC := usersusecase.NewUsersUsecase(userRepo, hasher, uuid.NewString)
	rolesUC := rolesusecase.NewRolesUsecase()

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	usersH := usershandler.NewUsersHandler(usersUC)
	rolesH := roleshandler.NewRolesHandler(rolesUC)

	// ルータ生成
	r := router.NewRouter(authH, usersH, rolesH, tokenService, authUC)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
