package ontraport_test

import (
	"context"
	"testing"
	"time"

	"github.com/fivetwenty-io/ontraport-client/pkg/ontraport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	t.Parallel()

	cache := ontraport.NewMemoryCache(10)
	ctx := context.Background()

	entry := &ontraport.CacheEntry{
		Data:      []byte("test data"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}

	err := cache.Set(ctx, "key1", entry)
	require.NoError(t, err)

	retrieved, err := cache.Get(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, entry.Data, retrieved.Data)
}

func TestMemoryCache_GetNonExistent(t *testing.T) {
	t.Parallel()

	cache := ontraport.NewMemoryCache(10)

	_, err := cache.Get(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key not found")
}

func TestMemoryCache_GetExpired(t *testing.T) {
	t.Parallel()

	cache := ontraport.NewMemoryCache(10)
	ctx := context.Background()

	entry := &ontraport.CacheEntry{
		Data:      []byte("test data"),
		ExpiresAt: time.Now().Add(-1 * time.Hour),
	}

	err := cache.Set(ctx, "key1", entry)
	require.NoError(t, err)

	_, err = cache.Get(ctx, "key1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry expired")
}

func TestMemoryCache_NoExpiry(t *testing.T) {
	t.Parallel()

	cache := ontraport.NewMemoryCache(10)
	ctx := context.Background()

	// Zero ExpiresAt means the entry lives until explicitly cleared.
	err := cache.Set(ctx, "key1", &ontraport.CacheEntry{Data: []byte("x")})
	require.NoError(t, err)

	_, err = cache.Get(ctx, "key1")
	require.NoError(t, err)
}

func TestMemoryCache_Delete(t *testing.T) {
	t.Parallel()

	cache := ontraport.NewMemoryCache(10)
	ctx := context.Background()

	err := cache.Set(ctx, "key1", &ontraport.CacheEntry{Data: []byte("x")})
	require.NoError(t, err)
	assert.True(t, cache.Has(ctx, "key1"))

	err = cache.Delete(ctx, "key1")
	require.NoError(t, err)
	assert.False(t, cache.Has(ctx, "key1"))

	// Deleting again is idempotent.
	err = cache.Delete(ctx, "key1")
	require.NoError(t, err)
}

func TestMemoryCache_Clear(t *testing.T) {
	t.Parallel()

	cache := ontraport.NewMemoryCache(10)
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		err := cache.Set(ctx, key, &ontraport.CacheEntry{Data: []byte("x")})
		require.NoError(t, err)
	}

	err := cache.Clear(ctx)
	require.NoError(t, err)

	for _, key := range []string{"a", "b", "c"} {
		assert.False(t, cache.Has(ctx, key))
	}
}

func TestMemoryCache_EvictsOldest(t *testing.T) {
	t.Parallel()

	cache := ontraport.NewMemoryCache(2)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", &ontraport.CacheEntry{Data: []byte("1")}))
	require.NoError(t, cache.Set(ctx, "b", &ontraport.CacheEntry{Data: []byte("2")}))
	require.NoError(t, cache.Set(ctx, "c", &ontraport.CacheEntry{Data: []byte("3")}))

	assert.False(t, cache.Has(ctx, "a"))
	assert.True(t, cache.Has(ctx, "b"))
	assert.True(t, cache.Has(ctx, "c"))
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	cache := ontraport.NewNoOpCache()
	ctx := context.Background()

	err := cache.Set(ctx, "key1", &ontraport.CacheEntry{Data: []byte("x")})
	require.NoError(t, err)

	_, err = cache.Get(ctx, "key1")
	require.Error(t, err)
	assert.False(t, cache.Has(ctx, "key1"))
}
