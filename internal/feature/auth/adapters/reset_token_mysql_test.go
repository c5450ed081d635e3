package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/feature/auth/usecase"
)

// setupResetTokenTestDB prepares an in-memory SQLite database for reset-token testing.
func setupResetTokenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&ResetTokenModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestResetTokenMySQL_Create(t *testing.T) {
	db := setupResetTokenTestDB(t)
	repo := NewResetTokenMySQL(db)

	token := &entity.PasswordResetToken{
		Token:     "token-value",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}

	err := repo.Create(context.Background(), token)

	require.NoError(t, err)
	got, err := repo.FindByToken(context.Background(), "token-value")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
}

func TestResetTokenMySQL_FindByToken(t *testing.T) {
	t.Run("existing token preserves expiry", func(t *testing.T) {
		db := setupResetTokenTestDB(t)
		repo := NewResetTokenMySQL(db)

		expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)
		err := repo.Create(context.Background(), &entity.PasswordResetToken{
			Token:     "token-value",
			UserID:    "user-1",
			ExpiresAt: expiresAt,
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)

		got, err := repo.FindByToken(context.Background(), "token-value")

		require.NoError(t, err)
		assert.WithinDuration(t, expiresAt, got.ExpiresAt, time.Second)
		assert.False(t, got.IsExpired())
	})

	t.Run("missing token", func(t *testing.T) {
		db := setupResetTokenTestDB(t)
		repo := NewResetTokenMySQL(db)

		_, err := repo.FindByToken(context.Background(), "no-such-token")

		assert.ErrorIs(t, err, usecase.ErrResetTokenNotFound)
	})
}

func TestResetTokenMySQL_Delete(t *testing.T) {
	t.Run("deleted token cannot be found again", func(t *testing.T) {
		db := setupResetTokenTestDB(t)
		repo := NewResetTokenMySQL(db)

		err := repo.Create(context.Background(), &entity.PasswordResetToken{
			Token:     "token-value",
			UserID:    "user-1",
			ExpiresAt: time.Now().Add(time.Hour),
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)

		err = repo.Delete(context.Background(), "token-value")

		require.NoError(t, err)
		_, err = repo.FindByToken(context.Background(), "token-value")
		assert.ErrorIs(t, err, usecase.ErrResetTokenNotFound)
	})

	t.Run("deleting a missing token is not an error", func(t *testing.T) {
		db := setupResetTokenTestDB(t)
		repo := NewResetTokenMySQL(db)

		err := repo.Delete(context.Background(), "no-such-token")

		assert.NoError(t, err)
	})
}
