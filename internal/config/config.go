// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev" validate:"oneof=dev staging production"`
	Version     string `env:"VERSION" envDefault:"dev"`

	StoreDriver string `env:"STORE_DRIVER" envDefault:"postgres" validate:"oneof=postgres sqlite memory"`
	DBUser      string `env:"DB_USER" envDefault:"postgres"`
	DBPassword  string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBPort      string `env:"DB_PORT" envDefault:"5432" validate:"numeric"`
	DBName      string `env:"DB_NAME" envDefault:"prestige"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"data/prestige.db"`

	ContentPath      string        `env:"CONTENT_PATH"`
	DeadLetterPath   string        `env:"DEAD_LETTER_PATH" envDefault:"logs/deadletter.jsonl"`
	EventMaxRetries  int           `env:"EVENT_MAX_RETRIES" envDefault:"5" validate:"min=0"`
	EventRetryDelay  time.Duration `env:"EVENT_RETRY_DELAY" envDefault:"2s"`
	SessionCacheSize int           `env:"SESSION_CACHE_SIZE" envDefault:"1024" validate:"min=1"`
	SessionTTL       time.Duration `env:"SESSION_TTL" envDefault:"30m" validate:"min=1s"`

	APIKey         string   `env:"API_KEY" validate:"required"`
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	// A missing .env is fine; real env vars may be set instead.
	_ = godotenv.Load()
	return Parse()
}

// Parse builds a Config from the current environment without reading .env.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, formatError(err)
	}
	if cfg.StoreDriver == StoreDriverSQLite && cfg.SQLitePath == "" {
		return nil, fmt.Errorf("SQLITE_PATH must be set when STORE_DRIVER=sqlite")
	}
	return cfg, nil
}

func formatError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid config: %w", err)
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		if e.Field() == "APIKey" && e.Tag() == "required" {
			msgs = append(msgs, "API_KEY environment variable must be set for security")
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s failed %s", e.Field(), e.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
