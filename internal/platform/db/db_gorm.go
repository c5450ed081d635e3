// Package db opens the MySQL connection used by the repositories.
package db

import (
	"fmt"
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"account_backend/internal/config"
	"account_backend/internal/feature/auth/adapters"
	"account_backend/internal/feature/auth/domain/entity"
)

// retryInterval is the wait between connection attempts.
const retryInterval = 3 * time.Second

// Opener abstracts gorm.Open so connection retry logic can be tested
// without a real database.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN assembles the MySQL DSN. A Cloud SQL instance name takes
// precedence over Host/Port and switches to the unix-socket form.
// clientFoundRows=true makes UPDATE report matched rows rather than
// changed rows, so a no-op update of an existing row is not mistaken
// for a missing row.
func BuildDSN(cfg config.DB) string {
	if cfg.Instance != "" {
		return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local&clientFoundRows=true",
			cfg.User, cfg.Password, cfg.Instance, cfg.Name)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local&clientFoundRows=true",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// ConnectWithRetry keeps calling opener until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %s: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(retryInterval)
	}
}

// OpenDB connects to MySQL with a bounded retry loop and optionally runs
// the schema migration. Startup fails hard when the database never answers.
func OpenDB(cfg config.DB) *gorm.DB {
	opener := func(dsn string) (*gorm.DB, error) {
		return gorm.Open(gmysql.Open(dsn), &gorm.Config{TranslateError: true})
	}

	db, err := ConnectWithRetry(BuildDSN(cfg), 60*time.Second, opener)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.RunMigrations {
		// マイグレーション（User, PasswordResetToken）
		if err := db.AutoMigrate(
			&entity.User{},
			&adapters.ResetTokenModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
