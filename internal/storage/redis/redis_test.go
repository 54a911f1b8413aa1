package redis

import (
	"context"
	"testing"

	"github.com/Amrutha2803/employee-list/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackendWithMiniredis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	b, err := New(ctx, Options{Addr: mr.Addr()})
	require.NoError(t, err)
	defer b.Close()

	_, err = b.Get(ctx, "employeeData")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, b.Put(ctx, "employeeData", []byte(`[{"empId":1}]`)))

	got, err := b.Get(ctx, "employeeData")
	require.NoError(t, err)
	assert.Equal(t, `[{"empId":1}]`, string(got))

	raw, err := mr.Get("employeeData")
	require.NoError(t, err)
	assert.Equal(t, `[{"empId":1}]`, raw)
	assert.Zero(t, mr.TTL("employeeData"))

	assert.NoError(t, b.Ping(ctx))
}

func TestNewFailsWhenUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := New(context.Background(), Options{Addr: addr})
	assert.Error(t, err)
}
