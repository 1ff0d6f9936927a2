package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	svc, err := NewRedisService(RedisConfig{Host: mr.Host(), Port: mr.Port()})
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })

	return svc, mr
}

type payload struct {
	Pages []string `json:"pages"`
}

func TestProductMapCacheRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CacheProductMap(ctx, "abc", payload{Pages: []string{"/login"}}, time.Minute))

	var got payload
	require.NoError(t, svc.GetProductMap(ctx, "abc", &got))
	assert.Equal(t, []string{"/login"}, got.Pages)

	ttl, err := svc.GetTTL(ctx, productMapPrefix+"abc")
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestGetProductMap_Miss(t *testing.T) {
	svc, _ := newTestService(t)

	var got payload
	err := svc.GetProductMap(context.Background(), "missing", &got)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestProductMapCacheExpires(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CacheProductMap(ctx, "abc", payload{}, time.Second))
	mr.FastForward(2 * time.Second)

	exists, err := svc.Exists(ctx, productMapPrefix+"abc")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestInvalidateProductMaps(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CacheProductMap(ctx, "one", payload{}, time.Minute))
	require.NoError(t, svc.CacheProductMap(ctx, "two", payload{}, time.Minute))
	require.NoError(t, svc.Set(ctx, "other", "keep", time.Minute))

	require.NoError(t, svc.InvalidateProductMaps(ctx))

	keys, err := svc.Keys(ctx, "*")
	require.NoError(t, err)
	assert.Equal(t, []string{"other"}, keys)
}

func TestNewRedisService_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port := mr.Host(), mr.Port()
	mr.Close()

	svc, err := NewRedisService(RedisConfig{Host: host, Port: port})
	assert.Error(t, err)
	assert.Nil(t, svc)
}
