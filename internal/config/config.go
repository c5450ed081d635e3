// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains every tunable the service reads at startup.
type Config struct {
	Port  string `env:"PORT" envDefault:"8080"`
	DB    DB     `envPrefix:"DB_"`
	Redis Redis  `envPrefix:"REDIS_"`
	JWT   JWT    `envPrefix:"JWT_"`
	Auth  Auth   `envPrefix:"AUTH_"`
}

// DB contains MySQL connection parameters.
type DB struct {
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME"`
	Host     string `env:"HOST" envDefault:"127.0.0.1"`
	Port     string `env:"PORT" envDefault:"3306"`
	// Instance is the Cloud SQL unix-socket instance name. When set it takes
	// precedence over Host/Port.
	Instance      string `env:"INSTANCE_CONNECTION_NAME"`
	RunMigrations bool   `env:"RUN_MIGRATIONS" envDefault:"false"`
}

// Redis contains Redis connection parameters. An empty Host disables Redis
// and the service falls back to MySQL for reset-token storage.
type Redis struct {
	Host     string `env:"HOST"`
	Port     string `env:"PORT" envDefault:"6379"`
	Password string `env:"PASSWORD"`
}

// JWT contains signing secrets and lifetimes for both token classes.
// Access and refresh tokens are signed with distinct secrets so that one
// class can never be replayed as the other.
type JWT struct {
	AccessSecret   string        `env:"ACCESS_SECRET"`
	AccessExpires  time.Duration `env:"ACCESS_EXPIRES" envDefault:"15m"`
	RefreshSecret  string        `env:"REFRESH_SECRET"`
	RefreshExpires time.Duration `env:"REFRESH_EXPIRES" envDefault:"168h"`
}

// Auth contains credential-lifecycle parameters.
type Auth struct {
	BcryptCost       int           `env:"BCRYPT_COST" envDefault:"10"`
	ResetTokenExpiry time.Duration `env:"RESET_TOKEN_EXPIRES" envDefault:"1h"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
