package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"newsfeed-api/core/interfaces"
	"newsfeed-api/pkg/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, prefix string) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)

	cache, err := NewRedisCache(config.RedisConfig{Address: server.Addr(), KeyPrefix: prefix})
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })

	return cache, server
}

func TestNewRedisCache_EmptyAddress(t *testing.T) {
	_, err := NewRedisCache(config.RedisConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "address cannot be empty")
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()

	_, err := NewRedisCache(config.RedisConfig{Address: addr})

	assert.Error(t, err)
}

func TestRedisCache_SetAndGet(t *testing.T) {
	cache, _ := newTestCache(t, "")
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "content:https://example.com", []byte("payload"), time.Minute))

	got, err := cache.Get(ctx, "content:https://example.com")

	require.NoError(t, err)
	assert.Equal(t, "payload", string(got))
}

func TestRedisCache_Miss(t *testing.T) {
	cache, _ := newTestCache(t, "")

	_, err := cache.Get(context.Background(), "missing")

	assert.True(t, errors.Is(err, interfaces.ErrCacheMiss))
}

func TestRedisCache_TTL(t *testing.T) {
	cache, server := newTestCache(t, "")
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))
	assert.Equal(t, time.Minute, server.TTL("k"))

	server.FastForward(2 * time.Minute)

	_, err := cache.Get(ctx, "k")
	assert.True(t, errors.Is(err, interfaces.ErrCacheMiss))
}

func TestRedisCache_ZeroTTLNeverExpires(t *testing.T) {
	cache, server := newTestCache(t, "")

	require.NoError(t, cache.Set(context.Background(), "k", []byte("v"), 0))

	assert.Equal(t, time.Duration(0), server.TTL("k"))
}

func TestRedisCache_KeyPrefix(t *testing.T) {
	cache, server := newTestCache(t, "newsfeed:")
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "content:a", []byte("v"), time.Minute))

	assert.True(t, server.Exists("newsfeed:content:a"))
	assert.False(t, server.Exists("content:a"))
}

func TestRedisCache_Delete(t *testing.T) {
	cache, server := newTestCache(t, "")
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, cache.Delete(ctx, "k"))
	require.NoError(t, cache.Delete(ctx, "never-set"))

	assert.False(t, server.Exists("k"))
}

func TestRedisCache_Ping(t *testing.T) {
	cache, server := newTestCache(t, "")

	assert.NoError(t, cache.Ping(context.Background()))

	server.Close()
	assert.Error(t, cache.Ping(context.Background()))
}
