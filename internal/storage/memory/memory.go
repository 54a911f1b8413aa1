package memory

import (
	"context"
	"sync"

	"github.com/Amrutha2803/employee-list/internal/storage"
)

var _ storage.Backend = (*Backend)(nil)

type Backend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func New() *Backend {
	return &Backend{data: map[string][]byte{}}
}

func (b *Backend) Get(_ context.Context, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (b *Backend) Put(_ context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[key] = append([]byte(nil), value...)
	return nil
}

func (b *Backend) Ping(context.Context) error { return nil }

func (b *Backend) Close() error { return nil }
