package cache

import (
	"context"
	"testing"
	"time"

	"beverage-kg/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedis_BypassWithoutClient(t *testing.T) {
	ctx := context.Background()
	r := NewRedisWithClient(nil, 0, nil)

	assert.Equal(t, defaultTTL, r.ttl)
	assert.Error(t, r.Ping(ctx))
	assert.NoError(t, r.Close())

	require.NoError(t, r.SetJSON(ctx, "resolve:fp:abc", map[string]string{"a": "b"}, time.Minute))

	var out map[string]string
	found, err := r.GetJSON(ctx, "resolve:fp:abc", &out)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, out)

	assert.NoError(t, r.Delete(ctx, "resolve:fp:abc"))

	n, err := r.PurgeStale(ctx, "resolve", "fp")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRedis_NilReceiver(t *testing.T) {
	var r *Redis
	ctx := context.Background()

	assert.Error(t, r.Ping(ctx))
	assert.NoError(t, r.Close())
	found, err := r.GetJSON(ctx, "k", &struct{}{})
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, r.SetJSON(ctx, "k", 1, 0))
}

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *Redis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := NewRedisWithClient(client, 30*time.Second, nil)
	t.Cleanup(func() { _ = r.Close() })
	return mr, r
}

func TestRedis_SetGetJSON(t *testing.T) {
	ctx := context.Background()
	mr, r := newMiniRedis(t)

	require.NoError(t, r.Ping(ctx))

	var out map[string]string
	found, err := r.GetJSON(ctx, "resolve:fp:miss", &out)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, r.SetJSON(ctx, "resolve:fp:hit", map[string]string{"term": "Grande"}, 0))
	assert.Equal(t, 30*time.Second, mr.TTL("resolve:fp:hit"))

	found, err = r.GetJSON(ctx, "resolve:fp:hit", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Grande", out["term"])

	require.NoError(t, r.SetJSON(ctx, "resolve:fp:short", 1, time.Second))
	mr.FastForward(2 * time.Second)
	var n int
	found, err = r.GetJSON(ctx, "resolve:fp:short", &n)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, r.Delete(ctx, "resolve:fp:hit"))
	assert.False(t, mr.Exists("resolve:fp:hit"))
}

func TestRedis_GetJSONCorruptValue(t *testing.T) {
	mr, r := newMiniRedis(t)
	require.NoError(t, mr.Set("resolve:fp:bad", "{not json"))

	var out map[string]string
	found, err := r.GetJSON(context.Background(), "resolve:fp:bad", &out)
	assert.Error(t, err)
	assert.False(t, found)
}

func TestRedis_PurgeStale(t *testing.T) {
	ctx := context.Background()
	mr, r := newMiniRedis(t)

	for _, k := range []string{"resolve:new:a", "resolve:new:b", "resolve:old:a", "resolve:older:b", "other:old:a"} {
		require.NoError(t, mr.Set(k, "{}"))
	}

	n, err := r.PurgeStale(ctx, "resolve", "new")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, mr.Exists("resolve:new:a"))
	assert.True(t, mr.Exists("resolve:new:b"))
	assert.False(t, mr.Exists("resolve:old:a"))
	assert.False(t, mr.Exists("resolve:older:b"))
	assert.True(t, mr.Exists("other:old:a"))

	n, err = r.PurgeStale(ctx, " ", "new")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRedis_ServerGoneReturnsErrors(t *testing.T) {
	ctx := context.Background()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	r := NewRedisWithClient(client, 0, nil)
	defer func() { _ = r.Close() }()
	mr.Close()

	var out map[string]string
	found, err := r.GetJSON(ctx, "resolve:fp:x", &out)
	assert.Error(t, err)
	assert.False(t, found)
	assert.Error(t, r.SetJSON(ctx, "resolve:fp:x", out, 0))
	assert.True(t, r.warnedUnavailable.Load())
}

func TestNewRedis_ConnectsOrBypasses(t *testing.T) {
	mr := miniredis.RunT(t)

	r := NewRedis(config.RedisConfig{Host: mr.Host(), Port: mr.Port()}, nil)
	t.Cleanup(func() { _ = r.Close() })
	assert.False(t, r.isUnavailable())
	assert.Equal(t, defaultTTL, r.ttl)
	require.NoError(t, r.Ping(context.Background()))

	down := NewRedis(config.RedisConfig{Host: "127.0.0.1", Port: "1", TTL: time.Minute}, nil)
	assert.True(t, down.isUnavailable())
	assert.Equal(t, time.Minute, down.ttl)
}
