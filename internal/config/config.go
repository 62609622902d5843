// Package config loads and validates the application configuration.
//
// Configuration is environment-sourced (optionally via a `.env` file)
// with the RAILBOARD_ prefix, mapped into structs by koanf and checked
// with validator tags so the process fails fast on missing values.
//
// Env vars map to nested keys on the first underscore after the
// prefix: RAILBOARD_SERVER_READ_TIMEOUT -> server.read_timeout.
package config

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Loads a `.env` file into the process environment before any env
	// var is read. No explicit call needed.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config is the root configuration object.
//
// Observability is a pointer because it is optional; defaults are
// injected when it is absent.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime. Timeouts
// are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool
// tuning.
type DatabaseConfig struct {
	Host     string `koanf:"host" validate:"required"`
	Port     int    `koanf:"port" validate:"required"`
	User     string `koanf:"user" validate:"required"`
	Password string `koanf:"password" validate:"required"`
	Name     string `koanf:"name" validate:"required"`
	SSLMode  string `koanf:"ssl_mode" validate:"required"`
	MaxConns int    `koanf:"max_conns"`
	MinConns int    `koanf:"min_conns"`
}

// AuthConfig stores the authentication secrets and token settings.
//
// SecretKey signs session tokens; it is loaded once at startup and
// never rotated at runtime. AdminSecret is the server-side value a
// registration request must match exactly to be granted the admin
// role. TokenLifetime defaults to one hour when unset.
type AuthConfig struct {
	SecretKey     string        `koanf:"secret_key" validate:"required"`
	AdminSecret   string        `koanf:"admin_secret" validate:"required"`
	TokenLifetime time.Duration `koanf:"token_lifetime"`
}

// envPrefix is stripped from environment variable names before mapping.
const envPrefix = "RAILBOARD_"

// Load reads configuration from the environment, unmarshals it,
// validates required fields, and applies defaults for the optional
// observability block.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Only the first underscore separates the section from the key, so
	// snake_case leaf names survive: DATABASE_SSL_MODE -> database.ssl_mode.
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, err
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, err
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, err
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}
	if mainConfig.Observability.LogLevel == "" {
		mainConfig.Observability.LogLevel = DefaultObservabilityConfig().LogLevel
	}
	if mainConfig.Observability.LogFormat == "" {
		mainConfig.Observability.LogFormat = DefaultObservabilityConfig().LogFormat
	}
	mainConfig.Observability.ServiceName = "railboard"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, err
	}

	return mainConfig, nil
}

// IsProduction reports whether the application runs in production
// mode. Non-production responses may include error details; production
// responses never do.
func (c *Config) IsProduction() bool {
	return c.Primary.Env == "production"
}
