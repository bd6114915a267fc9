package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/calorix/calorix/config"
	"github.com/calorix/calorix/internal/state"
	"github.com/calorix/calorix/internal/store"
)

func main() {
	// A local .env is optional
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	st, err := openStore(cfg)
	if err != nil {
		log.Fatalf("failed to open state store: %v", err)
	}

	container := state.New(st)
	Execute(container, cfg)
}

func openStore(cfg *config.Config) (store.StateStore, error) {
	switch cfg.StoreBackend {
	case config.BackendSQLite:
		return store.NewSQLiteStore(cfg.SQLitePath)
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisURL,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return store.NewRedisStore(client), nil
	case config.BackendMemory:
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
