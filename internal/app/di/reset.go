package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"account_backend/internal/feature/auth/adapters"
	"account_backend/internal/feature/auth/usecase"
	"account_backend/internal/platform/resetstore"
)

// NewResetTokenRepository creates a ResetTokenRepository implementation.
// If Redis is available, it returns a Redis-backed implementation whose TTL
// handles token expiry cleanup. Otherwise, it falls back to MySQL.
func NewResetTokenRepository(rdb *redis.Client, db *gorm.DB) usecase.ResetTokenRepository {
	if rdb != nil {
		return resetstore.NewResetRedis(rdb, "pwreset")
	}
	return adapters.NewResetTokenMySQL(db)
}
