// Package config loads the process configuration from the environment.
//
// A .env file in the working directory is loaded first when present; values
// already set in the environment take precedence over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// SigningAlgorithm is the only token algorithm the service issues and accepts.
const SigningAlgorithm = "HS256"

var ErrMissingJWTSecret = errors.New("no JWT_SECRET provided")

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DBConnectionString string        `env:"DB_CONNECTION_STRING,required,notEmpty"`
	DBMaxOpenConns     int           `env:"DB_MAX_OPEN_CONNS" envDefault:"50"`
	DBMaxIdleConns     int           `env:"DB_MAX_IDLE_CONNS" envDefault:"25"`
	DBConnMaxLifetime  time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	RunMigrations      bool          `env:"RUN_MIGRATIONS" envDefault:"true"`

	JWTSecret      string        `env:"JWT_SECRET"`
	JWTAlgorithm   string        `env:"JWT_ALGORITHM" envDefault:"HS256"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"15m"`
	LoginTokenTTL  time.Duration `env:"LOGIN_TOKEN_TTL" envDefault:"24h"`

	// Redis backs the token deny-list when set; the database table is used otherwise.
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

// Load reads .env (if any) and parses the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return ErrMissingJWTSecret
	}
	if c.JWTAlgorithm != SigningAlgorithm {
		return fmt.Errorf("unsupported JWT_ALGORITHM %q, only %s is supported", c.JWTAlgorithm, SigningAlgorithm)
	}
	if c.AccessTokenTTL <= 0 || c.LoginTokenTTL <= 0 {
		return errors.New("token lifetimes must be positive")
	}
	return nil
}
