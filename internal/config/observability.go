package config

import (
	"fmt"
	"time"
)

// ObservabilityConfig groups logging configuration. It can be omitted
// entirely, in which case defaults are injected at load time.
type ObservabilityConfig struct {
	// ServiceName identifies this service in logs. Forced to
	// "railboard" at load time regardless of input.
	ServiceName string `koanf:"service_name"`

	// Environment labels log output; derived from primary.env.
	Environment string `koanf:"environment"`

	// LogLevel is the verbosity threshold (debug/info/warn/error).
	LogLevel string `koanf:"log_level"`

	// LogFormat selects "json" or "console" output.
	LogFormat string `koanf:"log_format"`

	// SlowQueryThreshold is the duration beyond which a query is
	// flagged as slow. Supplied as a parseable duration ("250ms").
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold"`
}

// DefaultObservabilityConfig provides the defaults used when the
// observability block is absent.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName:        "railboard",
		Environment:        "development",
		LogLevel:           "info",
		LogFormat:          "json",
		SlowQueryThreshold: 100 * time.Millisecond,
	}
}

// Validate applies the checks that go beyond struct tags.
func (c *ObservabilityConfig) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.LogFormat)
	}

	if c.SlowQueryThreshold < 0 {
		return fmt.Errorf("slow_query_threshold must be non-negative")
	}

	return nil
}

// GetLogLevel returns the effective log level, defaulting by
// environment when unset: info in production, debug in development.
func (c *ObservabilityConfig) GetLogLevel() string {
	if c.LogLevel == "" {
		if c.Environment == "production" {
			return "info"
		}
		return "debug"
	}
	return c.LogLevel
}
