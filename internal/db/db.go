package db

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/Amrutha2803/employee-list/internal/config"
	"github.com/Amrutha2803/employee-list/internal/storage"
	"github.com/Amrutha2803/employee-list/internal/storage/file"
	"github.com/Amrutha2803/employee-list/internal/storage/memory"
	"github.com/Amrutha2803/employee-list/internal/storage/postgres"
	"github.com/Amrutha2803/employee-list/internal/storage/redis"
	"github.com/Amrutha2803/employee-list/internal/storage/sqlite"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const sqliteFile = "employees.db"

func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse db url: %w", err)
	}

	// Set session defaults for every new connection in the pool.
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, `SET application_name = 'employee-list'`)
		return err
	}

	// Reasonable pool sizes for dev
	cfg.MaxConns = 10
	cfg.MinConns = 1
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping failed: %w", err)
	}
	return pool, nil
}

// OpenBackend builds the key-value backend named by cfg.StoreDriver.
func OpenBackend(ctx context.Context, cfg config.AppConfig) (storage.Backend, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return memory.New(), nil
	case config.DriverFile:
		return file.New(cfg.StorePath)
	case config.DriverSQLite:
		return sqlite.New(ctx, filepath.Join(cfg.StorePath, sqliteFile))
	case config.DriverPostgres:
		pool, err := NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		b, err := postgres.New(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return b, nil
	case config.DriverRedis:
		return redis.New(ctx, redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", cfg.StoreDriver)
	}
}
