package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// ValidateConfig checks the configuration and reports all problems at once.
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors
	add := func(field, format string, args ...interface{}) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		add("server.port", "must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if !oneOf(cfg.Log.Format, "json", "console") {
		add("log.format", "must be json or console, got %q", cfg.Log.Format)
	}

	switch cfg.Database.Driver {
	case "sqlite":
		if cfg.Database.Path == "" {
			add("database.path", "is required for the sqlite driver")
		}
	case "postgres":
		if cfg.Database.DSN == "" {
			add("database.dsn", "is required for the postgres driver")
		}
	default:
		add("database.driver", "must be sqlite or postgres, got %q", cfg.Database.Driver)
	}

	switch cfg.Storage.Driver {
	case "sqlite", "postgres":
		if cfg.Storage.Driver != cfg.Database.Driver {
			add("storage.driver", "%q requires database.driver %q", cfg.Storage.Driver, cfg.Storage.Driver)
		}
	case "redis":
		if cfg.Redis.URL == "" {
			add("redis.url", "is required when storage.driver is redis")
		}
	case "memory":
		if cfg.Env == Production {
			add("storage.driver", "memory storage is not allowed in production")
		}
	default:
		add("storage.driver", "must be sqlite, postgres, redis or memory, got %q", cfg.Storage.Driver)
	}
	if strings.TrimSpace(cfg.Storage.Key) == "" {
		add("storage.key", "must not be empty")
	}

	if cfg.Shopping.DaysAhead < 1 || cfg.Shopping.DaysAhead > 31 {
		add("shopping.days_ahead", "must be between 1 and 31, got %d", cfg.Shopping.DaysAhead)
	}
	if !oneOf(strings.ToLower(cfg.Shopping.WeekStart), "sunday", "monday") {
		add("shopping.week_start", "must be sunday or monday, got %q", cfg.Shopping.WeekStart)
	}
	if _, err := cfg.Shopping.Location(); err != nil {
		add("shopping.timezone", "%v", err)
	}

	switch cfg.Meals.Source {
	case "db":
	case "http":
		if cfg.Meals.BaseURL == "" {
			add("meals.base_url", "is required when meals.source is http")
		}
	default:
		add("meals.source", "must be db or http, got %q", cfg.Meals.Source)
	}

	if cfg.RateLimit.Enabled {
		if cfg.Redis.URL == "" {
			add("redis.url", "is required when rate_limit.enabled is set")
		}
		if cfg.RateLimit.GeneratePerHour <= 0 {
			add("rate_limit.generate_per_hour", "must be positive")
		}
	}

	if cfg.S3.Enabled && cfg.S3.Bucket == "" {
		add("s3.bucket", "is required when s3.enabled is set")
	}

	if cfg.Env == Production {
		for _, o := range cfg.CORS.AllowedOrigins {
			if o == "*" {
				add("cors.allowed_origins", "wildcard origin is not allowed in production")
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
