// Package redis keeps each key as a plain redis string with no expiry.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/Amrutha2803/employee-list/internal/storage"

	goredis "github.com/redis/go-redis/v9"
)

var _ storage.Backend = (*Backend)(nil)

type Backend struct {
	client *goredis.Client
}

type Options struct {
	Addr     string
	Password string
	DB       int
}

func New(ctx context.Context, opts Options) (*Backend, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	return &Backend{client: client}, nil
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := b.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

func (b *Backend) Put(ctx context.Context, key string, value []byte) error {
	if err := b.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (b *Backend) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

func (b *Backend) Close() error {
	return b.client.Close()
}
