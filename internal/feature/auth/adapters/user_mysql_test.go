package adapters

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError turns the driver's unique-constraint error into
// gorm.ErrDuplicatedKey, matching the MySQL path.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// seedUser creates a test user in the database for testing.
func seedUser(t *testing.T, db *gorm.DB, id, email string, createdAt time.Time) *entity.User {
	t.Helper()

	user := &entity.User{
		ID:        id,
		Email:     email,
		Name:      "Test User",
		Password:  "hashed_password",
		Role:      entity.RoleUser,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	err := db.Create(user).Error
	require.NoError(t, err, "failed to seed user")

	return user
}

func TestNewUserMySQL(t *testing.T) {
	db := setupTestDB(t)

	repo := NewUserMySQL(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestUserMySQL_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := &entity.User{
			ID:       "user-1",
			Email:    "test@example.com",
			Name:     "Test User",
			Password: "hashed_password",
			Role:     entity.RoleUser,
		}

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
		assert.False(t, user.UpdatedAt.IsZero(), "UpdatedAt is not set")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)
		seedUser(t, db, "user-1", "test@example.com", time.Now())

		dup := &entity.User{
			ID:       "user-2",
			Email:    "test@example.com",
			Name:     "Another User",
			Password: "hashed_password",
			Role:     entity.RoleUser,
		}

		err := repo.Create(context.Background(), dup)

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})
}

func TestUserMySQL_FindByEmail(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)
		seedUser(t, db, "user-1", "test@example.com", time.Now())

		user, err := repo.FindByEmail(context.Background(), "test@example.com")

		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
	})

	t.Run("missing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		_, err := repo.FindByEmail(context.Background(), "nobody@example.com")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserMySQL_FindByID(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)
		seedUser(t, db, "user-1", "test@example.com", time.Now())

		user, err := repo.FindByID(context.Background(), "user-1")

		require.NoError(t, err)
		assert.Equal(t, "test@example.com", user.Email)
	})

	t.Run("missing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		_, err := repo.FindByID(context.Background(), "ghost")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserMySQL_FindAll(t *testing.T) {
	// 作成日時をずらした15ユーザーを用意する（新しい順に user-14 ... user-0）
	seedFifteen := func(t *testing.T, db *gorm.DB) {
		base := time.Now().Add(-time.Hour)
		for i := 0; i < 15; i++ {
			seedUser(t, db,
				fmt.Sprintf("user-%d", i),
				fmt.Sprintf("user%d@example.com", i),
				base.Add(time.Duration(i)*time.Minute))
		}
	}

	t.Run("first page is newest first", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)
		seedFifteen(t, db)

		users, err := repo.FindAll(context.Background(), 1, 10)

		require.NoError(t, err)
		require.Len(t, users, 10)
		assert.Equal(t, "user-14", users[0].ID)
		assert.Equal(t, "user-5", users[9].ID)
	})

	t.Run("second page holds the remainder", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)
		seedFifteen(t, db)

		users, err := repo.FindAll(context.Background(), 2, 10)

		require.NoError(t, err)
		require.Len(t, users, 5)
		assert.Equal(t, "user-4", users[0].ID)
		assert.Equal(t, "user-0", users[4].ID)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)
		seedFifteen(t, db)

		users, err := repo.FindAll(context.Background(), 3, 10)

		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("invalid paging falls back to defaults", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)
		seedFifteen(t, db)

		users, err := repo.FindAll(context.Background(), 0, -1)

		require.NoError(t, err)
		assert.Len(t, users, 10)
	})
}

func TestUserMySQL_Count(t *testing.T) {
	t.Run("counts all users regardless of paging", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)
		seedUser(t, db, "user-1", "one@example.com", time.Now())
		seedUser(t, db, "user-2", "two@example.com", time.Now())
		seedUser(t, db, "user-3", "three@example.com", time.Now())

		total, err := repo.Count(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})

	t.Run("empty table", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		total, err := repo.Count(context.Background())

		require.NoError(t, err)
		assert.Zero(t, total)
	})
}

func TestUserMySQL_Update(t *testing.T) {
	t.Run("successful update", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)
		user := seedUser(t, db, "user-1", "test@example.com", time.Now())

		user.Name = "Renamed"
		user.Role = entity.RoleAdmin
		err := repo.Update(context.Background(), user)

		require.NoError(t, err)
		got, err := repo.FindByID(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
		assert.Equal(t, entity.RoleAdmin, got.Role)
	})

	t.Run("unchanged values still succeed", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)
		user := seedUser(t, db, "user-1", "test@example.com", time.Now())

		// 既存の値と同一の内容で更新しても既存ユーザーが
		// 見つからない扱いにならないこと
		err := repo.Update(context.Background(), user)

		require.NoError(t, err)
		got, err := repo.FindByID(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, "test@example.com", got.Email)
	})

	t.Run("email collision with another user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)
		user := seedUser(t, db, "user-1", "one@example.com", time.Now())
		seedUser(t, db, "user-2", "two@example.com", time.Now())

		user.Email = "two@example.com"
		err := repo.Update(context.Background(), user)

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})

	t.Run("missing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		err := repo.Update(context.Background(), &entity.User{ID: "ghost", Email: "x@example.com"})

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserMySQL_UpdatePassword(t *testing.T) {
	t.Run("only the password changes", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)
		seedUser(t, db, "user-1", "test@example.com", time.Now())

		err := repo.UpdatePassword(context.Background(), "user-1", "new_hash")

		require.NoError(t, err)
		got, err := repo.FindByID(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, "new_hash", got.Password)
		assert.Equal(t, "test@example.com", got.Email)
	})

	t.Run("missing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		err := repo.UpdatePassword(context.Background(), "ghost", "new_hash")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserMySQL_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)
		seedUser(t, db, "user-1", "test@example.com", time.Now())

		err := repo.Delete(context.Background(), "user-1")

		require.NoError(t, err)
		_, err = repo.FindByID(context.Background(), "user-1")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("missing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		err := repo.Delete(context.Background(), "ghost")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
