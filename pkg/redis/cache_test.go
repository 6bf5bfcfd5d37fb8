package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func unreachableClient(t *testing.T) *Client {
	t.Helper()
	config := NewRedisConfig().WithHost("127.0.0.1").WithPort(1)
	config.DialTimeout = 200 * time.Millisecond
	client, err := NewClient(config)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, NewRedisConfig().Validate())
	require.Error(t, NewRedisConfig().WithHost("").Validate())
	require.Error(t, NewRedisConfig().WithPort(70000).Validate())
	require.Error(t, NewRedisConfig().WithDatabase(16).Validate())
	require.Error(t, NewRedisConfig().WithCacheTTL("regions", -time.Second).Validate())

	_, err := NewClient(NewRedisConfig().WithPort(0))
	require.Error(t, err)
}

func TestCache_KeysAndTTL(t *testing.T) {
	client := unreachableClient(t)
	client.config.WithCacheTTL("regions", time.Minute)

	named := NewCache(client, NewCacheOptions().WithCacheName("regions"))
	require.Equal(t, "regions::status", named.buildCacheKey("status"))
	require.Equal(t, time.Minute, named.getTTL())

	fallback := NewCache(client, NewCacheOptions().WithCacheName("other"))
	require.Equal(t, client.config.DefaultCacheTTL, fallback.getTTL())

	anonymous := NewCache(client, NewCacheOptions().WithTTL(time.Second))
	require.Equal(t, "status", anonymous.buildCacheKey("status"))
	require.Equal(t, time.Second, anonymous.getTTL())
}

func TestCache_UnreachableServer(t *testing.T) {
	cache := NewCache(unreachableClient(t), nil)
	ctx := context.Background()

	require.Error(t, cache.Set(ctx, "key", map[string]string{"a": "b"}))

	var dest map[string]string
	found, err := cache.Get(ctx, "key", &dest)
	require.Error(t, err)
	require.False(t, found)
}

func TestClient_HealthCheckDown(t *testing.T) {
	check := unreachableClient(t).HealthCheck(context.Background())

	require.Equal(t, StatusDown, check.Status)
	require.Equal(t, "127.0.0.1:1", check.Details["address"])
	require.NotEmpty(t, check.Details["error"])
}
