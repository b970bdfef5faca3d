package config

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// ErrSigningConfigMissing aborts startup when the JWT signing settings are
// incomplete. It is never surfaced per request.
var ErrSigningConfigMissing = errors.New("config: JWT_SECRET, JWT_ISSUER and JWT_AUDIENCE are required")

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// PasswordScheme selects the verifier algorithm: "sha256" (legacy,
	// compatible with existing verifiers) or "bcrypt".
	PasswordScheme string `env:"PASSWORD_SCHEME, default=sha256"`

	JWT   JWTConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type JWTConfig struct {
	Secret   string `env:"JWT_SECRET"`
	Issuer   string `env:"JWT_ISSUER"`
	Audience string `env:"JWT_AUDIENCE"`
	// ExpirationMinutes is kept as a string on purpose: a missing or
	// unparseable value silently falls back to 60 minutes, matching the
	// legacy system.
	ExpirationMinutes string `env:"JWT_EXPIRATION_MINUTES"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=user_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the settings that must be present before the process may
// serve traffic.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" || c.JWT.Issuer == "" || c.JWT.Audience == "" {
		return ErrSigningConfigMissing
	}
	return nil
}

// TokenTTL returns the configured token lifetime, defaulting to 60 minutes
// when the value is absent or not a number.
func (c *Config) TokenTTL() time.Duration {
	minutes, err := strconv.ParseFloat(c.JWT.ExpirationMinutes, 64)
	if err != nil || minutes <= 0 {
		minutes = 60
	}
	return time.Duration(minutes * float64(time.Minute))
}
