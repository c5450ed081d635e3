// Package resetstore provides a Redis-backed password-reset token repository.
package resetstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/feature/auth/usecase"
)

// expiredRetention is how long an expired token stays readable before Redis
// evicts it. Within this window a stale token resolves and reports expired
// (400) instead of not-found (404), matching the MySQL store's behavior.
const expiredRetention = 24 * time.Hour

// ResetRedis implements usecase.ResetTokenRepository using Redis.
// Tokens are stored with a TTL covering their expiry plus a retention
// window, so Redis also handles cleanup of abandoned tokens.
type ResetRedis struct {
	client *redis.Client
	prefix string
}

var _ usecase.ResetTokenRepository = (*ResetRedis)(nil)

// NewResetRedis creates a new ResetRedis instance.
func NewResetRedis(client *redis.Client, prefix string) *ResetRedis {
	if prefix == "" {
		prefix = "pwreset"
	}
	return &ResetRedis{
		client: client,
		prefix: prefix,
	}
}

// tokenKey returns the Redis key for a reset token.
func (r *ResetRedis) tokenKey(token string) string {
	return fmt.Sprintf("%s:%s", r.prefix, token)
}

// Create persists a new reset token to Redis with a TTL.
func (r *ResetRedis) Create(ctx context.Context, token *entity.PasswordResetToken) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal reset token: %w", err)
	}

	ttl := time.Until(token.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("reset token already expired")
	}

	return r.client.Set(ctx, r.tokenKey(token.Token), data, ttl+expiredRetention).Err()
}

// FindByToken retrieves a reset token by its value.
func (r *ResetRedis) FindByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error) {
	data, err := r.client.Get(ctx, r.tokenKey(token)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, usecase.ErrResetTokenNotFound
		}
		return nil, err
	}

	var resetToken entity.PasswordResetToken
	if err := json.Unmarshal(data, &resetToken); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reset token: %w", err)
	}

	return &resetToken, nil
}

// Delete removes a consumed token. Deleting an absent token is not an error.
func (r *ResetRedis) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, r.tokenKey(token)).Err()
}
