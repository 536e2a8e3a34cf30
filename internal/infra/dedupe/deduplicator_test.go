package dedupe

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"marketbot/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestDeduplicator(t *testing.T, ttl time.Duration) (*redisDeduplicator, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return newRedisDeduplicator(client, ttl), server
}

func TestRedisDeduplicator_FirstSeen(t *testing.T) {
	d, server := newTestDeduplicator(t, time.Minute)
	ctx := context.Background()

	first, err := d.FirstSeen(ctx, "update:100")
	require.NoError(t, err)
	assert.True(t, first)

	again, err := d.FirstSeen(ctx, "update:100")
	require.NoError(t, err)
	assert.False(t, again)

	other, err := d.FirstSeen(ctx, "update:101")
	require.NoError(t, err)
	assert.True(t, other)

	assert.True(t, server.Exists(keyPrefix+"update:100"))
}

func TestRedisDeduplicator_ExpiresAfterTTL(t *testing.T) {
	d, server := newTestDeduplicator(t, time.Minute)
	ctx := context.Background()

	_, err := d.FirstSeen(ctx, "push:abc")
	require.NoError(t, err)

	server.FastForward(2 * time.Minute)

	first, err := d.FirstSeen(ctx, "push:abc")
	require.NoError(t, err)
	assert.True(t, first)
}

func TestRedisDeduplicator_ErrorTreatedAsFirstSeen(t *testing.T) {
	d, server := newTestDeduplicator(t, time.Minute)
	server.Close()

	first, err := d.FirstSeen(context.Background(), "update:1")
	assert.Error(t, err)
	assert.True(t, first)
}

func TestRedisDeduplicator_Release(t *testing.T) {
	d, server := newTestDeduplicator(t, time.Minute)
	ctx := context.Background()

	_, err := d.FirstSeen(ctx, "push:retry")
	require.NoError(t, err)
	require.NoError(t, d.Release(ctx, "push:retry"))
	assert.False(t, server.Exists(keyPrefix+"push:retry"))

	first, err := d.FirstSeen(ctx, "push:retry")
	require.NoError(t, err)
	assert.True(t, first)

	assert.NoError(t, d.Release(ctx, "never-seen"))
}

func TestRedisDeduplicator_DefaultTTL(t *testing.T) {
	d, _ := newTestDeduplicator(t, 0)
	assert.Equal(t, defaultTTL, d.ttl)
}

func TestNew_WithoutRedisConfig(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	d := New(Params{
		Lc:     lc,
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	first, err := d.FirstSeen(context.Background(), "anything")
	require.NoError(t, err)
	assert.True(t, first)
	assert.IsType(t, noopDeduplicator{}, d)
}

func TestNew_WithRedisConfig(t *testing.T) {
	server := miniredis.RunT(t)
	lc := fxtest.NewLifecycle(t)

	d := New(Params{
		Lc:     lc,
		Config: &config.Config{Redis: &config.RedisConfig{Addr: server.Addr(), DedupeTTL: time.Hour}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	lc.RequireStart()
	defer lc.RequireStop()

	first, err := d.FirstSeen(context.Background(), "update:5")
	require.NoError(t, err)
	assert.True(t, first)

	again, err := d.FirstSeen(context.Background(), "update:5")
	require.NoError(t, err)
	assert.False(t, again)
}
