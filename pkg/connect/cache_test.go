package connect_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/connect/internal/constants"
	"github.com/fivetwenty-io/connect/pkg/connect"
)

func liveEntry(data string) *connect.CacheEntry {
	return &connect.CacheEntry{
		Data:      []byte(data),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}
}

func TestCacheKey(t *testing.T) {
	t.Parallel()

	a := connect.CacheKey("key", "https://connect.example.com/v3/countries/")
	b := connect.CacheKey("key", "https://connect.example.com/v3/collections/")

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, connect.CacheKey("key", "https://connect.example.com/v3/countries/"))
	assert.NotEqual(t, a, connect.CacheKey("other-account", "https://connect.example.com/v3/countries/"))
}

func TestCacheable(t *testing.T) {
	t.Parallel()

	assert.True(t, connect.Cacheable("search/images/"))
	assert.True(t, connect.Cacheable("countries/"))
	assert.False(t, connect.Cacheable("downloads/"))
	assert.False(t, connect.Cacheable("/downloads/"))
}

func TestMemoryCache_SetAndGet(t *testing.T) {
	t.Parallel()

	cache := connect.NewMemoryCache(10)
	ctx := context.Background()

	entry := &connect.CacheEntry{
		Data:      []byte("test data"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
		ETag:      "abc123",
	}

	require.NoError(t, cache.Set(ctx, "key1", entry))

	retrieved, err := cache.Get(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, entry.Data, retrieved.Data)
	assert.Equal(t, entry.ETag, retrieved.ETag)
	assert.True(t, cache.Has(ctx, "key1"))
}

func TestMemoryCache_GetNonExistent(t *testing.T) {
	t.Parallel()

	cache := connect.NewMemoryCache(10)

	_, err := cache.Get(context.Background(), "nonexistent")
	require.ErrorIs(t, err, constants.ErrKeyNotFound)
}

func TestMemoryCache_GetExpired(t *testing.T) {
	t.Parallel()

	cache := connect.NewMemoryCache(10)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "old", &connect.CacheEntry{
		Data:      []byte("stale"),
		ExpiresAt: time.Now().Add(-1 * time.Minute),
	}))

	_, err := cache.Get(ctx, "old")
	require.ErrorIs(t, err, constants.ErrEntryExpired)
	assert.Equal(t, 0, cache.Len())
}

func TestMemoryCache_Eviction(t *testing.T) {
	t.Parallel()

	cache := connect.NewMemoryCache(2)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", liveEntry("a")))
	require.NoError(t, cache.Set(ctx, "b", liveEntry("b")))
	require.NoError(t, cache.Set(ctx, "a", liveEntry("a2")))
	require.NoError(t, cache.Set(ctx, "c", liveEntry("c")))

	assert.Equal(t, 2, cache.Len())
	assert.False(t, cache.Has(ctx, "b"))

	entry, err := cache.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("a2"), entry.Data)
}

func TestMemoryCache_DeleteClearCleanup(t *testing.T) {
	t.Parallel()

	cache := connect.NewMemoryCache(10)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", liveEntry("a")))
	require.NoError(t, cache.Set(ctx, "b", liveEntry("b")))
	require.NoError(t, cache.Set(ctx, "stale", &connect.CacheEntry{ExpiresAt: time.Now().Add(-time.Second)}))

	cache.Cleanup()
	assert.Equal(t, 2, cache.Len())

	require.NoError(t, cache.Delete(ctx, "a"))
	assert.False(t, cache.Has(ctx, "a"))

	require.NoError(t, cache.Clear(ctx))
	assert.Equal(t, 0, cache.Len())
}

func TestMemoryCache_GetReturnsCopy(t *testing.T) {
	t.Parallel()

	cache := connect.NewMemoryCache(10)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", liveEntry("a")))

	entry, err := cache.Get(ctx, "a")
	require.NoError(t, err)
	entry.ETag = "changed"

	again, err := cache.Get(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, again.ETag)
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	cache := connect.NewNoOpCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", liveEntry("a")))

	_, err := cache.Get(ctx, "a")
	require.ErrorIs(t, err, constants.ErrCacheDisabled)
	assert.False(t, cache.Has(ctx, "a"))
	require.NoError(t, cache.Delete(ctx, "a"))
	require.NoError(t, cache.Clear(ctx))
}

func TestCacheChain(t *testing.T) {
	t.Parallel()

	l1 := connect.NewMemoryCache(10)
	l2 := connect.NewMemoryCache(10)
	chain := connect.NewCacheChain(l1, l2)
	ctx := context.Background()

	require.NoError(t, l2.Set(ctx, "a", liveEntry("from l2")))

	entry, err := chain.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("from l2"), entry.Data)
	assert.True(t, l1.Has(ctx, "a"))

	require.NoError(t, chain.Set(ctx, "b", liveEntry("b")))
	assert.True(t, l1.Has(ctx, "b"))
	assert.True(t, l2.Has(ctx, "b"))

	require.NoError(t, chain.Delete(ctx, "b"))
	assert.False(t, chain.Has(ctx, "b"))

	require.NoError(t, chain.Clear(ctx))
	_, err = chain.Get(ctx, "a")
	require.ErrorIs(t, err, constants.ErrKeyNotFoundInAnyCache)
}

func TestNewCacheFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("nil config yields memory cache", func(t *testing.T) {
		t.Parallel()

		cache, err := connect.NewCacheFromConfig(nil)
		require.NoError(t, err)
		assert.IsType(t, &connect.MemoryCache{}, cache)
	})

	t.Run("memory", func(t *testing.T) {
		t.Parallel()

		cache, err := connect.NewCacheFromConfig(&connect.CacheConfig{Type: connect.CacheTypeMemory, MaxSize: 5})
		require.NoError(t, err)
		assert.IsType(t, &connect.MemoryCache{}, cache)
	})

	t.Run("none", func(t *testing.T) {
		t.Parallel()

		cache, err := connect.NewCacheFromConfig(&connect.CacheConfig{Type: connect.CacheTypeNone})
		require.NoError(t, err)
		assert.IsType(t, &connect.NoOpCache{}, cache)
	})

	t.Run("nats requires config", func(t *testing.T) {
		t.Parallel()

		_, err := connect.NewCacheFromConfig(&connect.CacheConfig{Type: connect.CacheTypeNATS})
		require.ErrorIs(t, err, constants.ErrNATSConfigRequired)
	})

	t.Run("unsupported type", func(t *testing.T) {
		t.Parallel()

		_, err := connect.NewCacheFromConfig(&connect.CacheConfig{Type: "redis"})
		require.ErrorIs(t, err, constants.ErrUnsupportedCacheType)
	})
}
