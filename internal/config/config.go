package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

const (
	IDStrategyCount    = "count"
	IDStrategySequence = "sequence"
)

type AppConfig struct {
	Port    string
	GinMode string
	LogMode string

	StoreDriver string
	StorePath   string
	StorageKey  string

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	IDStrategy string
}

func Load() (AppConfig, error) {
	_ = godotenv.Load() // load .env if present

	cfg := AppConfig{
		Port:          getEnv("PORT", "8080"),
		GinMode:       os.Getenv("GIN_MODE"),
		LogMode:       getEnv("LOG_MODE", "dev"),
		StoreDriver:   strings.ToLower(getEnv("STORE_DRIVER", DriverFile)),
		StorePath:     getEnv("STORE_PATH", "./data"),
		StorageKey:    getEnv("STORAGE_KEY", "employeeData"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		IDStrategy:    strings.ToLower(getEnv("ID_STRATEGY", IDStrategyCount)),
	}

	if raw := strings.TrimSpace(os.Getenv("REDIS_DB")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return AppConfig{}, fmt.Errorf("REDIS_DB must be a non-negative integer")
		}
		cfg.RedisDB = n
	}

	switch cfg.StoreDriver {
	case DriverMemory, DriverFile, DriverSQLite:
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return AppConfig{}, fmt.Errorf("missing required env: DATABASE_URL")
		}
	case DriverRedis:
		if cfg.RedisAddr == "" {
			return AppConfig{}, fmt.Errorf("missing required env: REDIS_ADDR")
		}
	default:
		return AppConfig{}, fmt.Errorf("unsupported STORE_DRIVER: %s", cfg.StoreDriver)
	}

	switch cfg.IDStrategy {
	case IDStrategyCount, IDStrategySequence:
	default:
		return AppConfig{}, fmt.Errorf("unsupported ID_STRATEGY: %s", cfg.IDStrategy)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
