package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/wb_storefront/internal/identity/redis"
)

func newStore(t *testing.T) *redis.IdentityStore {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return redis.NewIdentityStore(rdb)
}

func TestIdentityStore_GetEmpty(t *testing.T) {
	store := newStore(t)

	id, ok, err := store.Get(context.Background(), "default")
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, id)
}

func TestIdentityStore_SetThenGet(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "default", "cart-abc"))

	id, ok, err := store.Get(ctx, "default")
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, "cart-abc", id)
}

// SetNX: повторный Set не перетирает первый токен.
func TestIdentityStore_WriteOnce(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "default", "cart-abc"))
	require.NoError(t, store.Set(ctx, "default", "cart-xyz"))

	id, ok, err := store.Get(ctx, "default")
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, "cart-abc", id)
}
