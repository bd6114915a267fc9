package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Backend names a state persistence backend.
type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendRedis  Backend = "redis"
	BackendMemory Backend = "memory"
)

// Config holds all configuration for the application
type Config struct {
	// Storage configuration
	DataDir      string
	StoreBackend Backend
	SQLitePath   string

	// Redis configuration
	RedisURL      string
	RedisPassword string
	RedisDB       int

	// Assistant configuration
	AIBaseURL string
	AIModel   string

	// Integration sync
	SyncInterval time.Duration
}

// LoadConfig creates a new Config instance with values from environment variables
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	// Load configuration based on environment
	switch env {
	case CI, Test:
		loadTestConfig(cfg)
	case Development, Production:
		if err := loadLocalConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadTestConfig keeps everything in memory so tests and CI never touch disk
func loadTestConfig(cfg *Config) {
	cfg.StoreBackend = BackendMemory
	cfg.SQLitePath = ""
	cfg.RedisURL = os.Getenv("CALORIX_REDIS_URL")
	cfg.AIBaseURL = os.Getenv("CALORIX_AI_URL")
	cfg.AIModel = os.Getenv("CALORIX_AI_MODEL")
	cfg.SyncInterval = parseInterval(os.Getenv("CALORIX_SYNC_INTERVAL"))
}

// loadLocalConfig loads configuration for a local install
func loadLocalConfig(cfg *Config) error {
	dataDir := os.Getenv("CALORIX_DATA_DIR")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".calorix")
	}
	cfg.DataDir = dataDir

	cfg.StoreBackend = Backend(os.Getenv("CALORIX_STORE"))
	if cfg.StoreBackend == "" {
		cfg.StoreBackend = BackendSQLite
	}

	cfg.SQLitePath = os.Getenv("CALORIX_SQLITE_PATH")
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = filepath.Join(dataDir, "calorix.db")
	}

	cfg.RedisURL = os.Getenv("CALORIX_REDIS_URL")
	if cfg.RedisURL == "" {
		cfg.RedisURL = "localhost:6379"
	}
	cfg.RedisPassword = os.Getenv("CALORIX_REDIS_PASSWORD")
	if db := os.Getenv("CALORIX_REDIS_DB"); db != "" {
		n, err := strconv.Atoi(db)
		if err != nil {
			return fmt.Errorf("invalid CALORIX_REDIS_DB %q: %w", db, err)
		}
		cfg.RedisDB = n
	}

	cfg.AIBaseURL = os.Getenv("CALORIX_AI_URL")
	cfg.AIModel = os.Getenv("CALORIX_AI_MODEL")
	cfg.SyncInterval = parseInterval(os.Getenv("CALORIX_SYNC_INTERVAL"))

	if cfg.StoreBackend == BackendSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return nil
}

// parseInterval parses a sync interval, falling back to zero so the scheduler
// applies its own default.
func parseInterval(value string) time.Duration {
	if value == "" {
		return 0
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return 0
	}
	return d
}
