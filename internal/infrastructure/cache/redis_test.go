package cache

import (
	"context"
	"testing"
	"time"

	"portal-api/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedis_DisabledIsNoop(t *testing.T) {
	r := NewRedis(config.RedisConfig{}, nil)
	ctx := context.Background()

	require.NoError(t, r.SetJSON(ctx, "k", map[string]int{"a": 1}, time.Minute))

	var out map[string]int
	hit, err := r.GetJSON(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	assert.NoError(t, r.Delete(ctx, "k"))
	assert.NoError(t, r.DeleteByPattern(ctx, "lca:list:*"))
	assert.ErrorIs(t, r.Ping(ctx), ErrUnavailable)
	assert.NoError(t, r.Close())
}

func TestRedis_NilReceiver(t *testing.T) {
	var r *Redis
	hit, err := r.GetJSON(context.Background(), "k", &struct{}{})
	assert.NoError(t, err)
	assert.False(t, hit)
}

func TestRedis_WrappedClientSurfacesErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	r := NewRedisWithClient(client, 0, nil)
	t.Cleanup(func() { _ = r.Close() })
	ctx := context.Background()

	assert.Equal(t, 600*time.Second, r.ttl)

	var out map[string]int
	hit, err := r.GetJSON(ctx, "lca:list:x", &out)
	assert.Error(t, err)
	assert.False(t, hit)
	assert.True(t, r.warnedUnavailable.Load())

	assert.Error(t, r.Delete(ctx, "lca:list:x"))
	assert.Error(t, r.Ping(ctx))
}
