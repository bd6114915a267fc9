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

var validBackends = map[Backend]bool{
	BackendSQLite: true,
	BackendRedis:  true,
	BackendMemory: true,
}

// ValidateConfig checks that the loaded configuration is usable for the
// selected backend.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if !validBackends[cfg.StoreBackend] {
		errors = append(errors, fmt.Sprintf("unknown store backend %q (expected sqlite, redis or memory)", cfg.StoreBackend))
	}

	switch cfg.StoreBackend {
	case BackendSQLite:
		if cfg.SQLitePath == "" {
			errors = append(errors, "sqlite backend requires CALORIX_SQLITE_PATH or a data directory")
		}
	case BackendRedis:
		if cfg.RedisURL == "" {
			errors = append(errors, "redis backend requires CALORIX_REDIS_URL")
		}
		if cfg.RedisDB < 0 {
			errors = append(errors, "CALORIX_REDIS_DB must not be negative")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
