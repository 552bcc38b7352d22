// Package config loads the service configuration from the environment
// and, optionally, from a config file named by CONFIG_FILE.
package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "jose"

// Config holds the whole service configuration.
type Config struct {
	AppPort  string
	Database Database
	Auth     Auth
	RabbitMQ RabbitMQ
}

// Database selects the persistence backend and sizes its connection pool.
type Database struct {
	Driver          string // sqlite, postgres or memory
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogLevel        string
}

// Auth configures token issuance and verification.
type Auth struct {
	JWTSecret    string
	TokenTTL     time.Duration
	HeaderScheme string
}

// RabbitMQ configures domain event publishing. An empty URL disables it.
type RabbitMQ struct {
	URL      string
	Exchange string
	Queue    string
	Consume  bool
}

// Enabled reports whether events should be published.
func (r RabbitMQ) Enabled() bool {
	return r.URL != ""
}

// Load reads the configuration using Viper.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "data.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("TOKEN_TTL", "300s")
	v.SetDefault("AUTH_HEADER_SCHEME", "JWT")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "inventory")
	v.SetDefault("RABBITMQ_QUEUE", "inventory_events")
	v.SetDefault("RABBITMQ_CONSUME", false)
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	cfg := &Config{
		AppPort: v.GetString("APP_PORT"),
		Database: Database{
			Driver:          strings.ToLower(v.GetString("DB_DRIVER")),
			DSN:             v.GetString("DATABASE_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			LogLevel:        strings.ToLower(v.GetString("DB_LOG_LEVEL")),
		},
		Auth: Auth{
			JWTSecret:    v.GetString("JWT_SECRET"),
			TokenTTL:     v.GetDuration("TOKEN_TTL"),
			HeaderScheme: v.GetString("AUTH_HEADER_SCHEME"),
		},
		RabbitMQ: RabbitMQ{
			URL:      v.GetString("RABBITMQ_URL"),
			Exchange: v.GetString("RABBITMQ_EXCHANGE"),
			Queue:    v.GetString("RABBITMQ_QUEUE"),
			Consume:  v.GetBool("RABBITMQ_CONSUME"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Auth.JWTSecret == defaultJWTSecret {
		log.Println("JWT_SECRET is not set, using the built-in development secret")
	}
	return cfg, nil
}

// Validate checks the values Load cannot default sensibly.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite", "postgres", "memory":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.Database.Driver != "memory" && c.Database.DSN == "" {
		return fmt.Errorf("DATABASE_DSN is required for driver %s", c.Database.Driver)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.Auth.TokenTTL)
	}
	if strings.TrimSpace(c.Auth.HeaderScheme) == "" {
		return fmt.Errorf("AUTH_HEADER_SCHEME must not be empty")
	}
	return nil
}
