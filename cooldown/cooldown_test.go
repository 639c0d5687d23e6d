package cooldown

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/WelcomerTeam/Swyft/discord"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "ping:42", Key("ping", 42))
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1700000000, 0)

	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	ok, remaining, err := store.Acquire(ctx, "ping:1", 5*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, remaining)

	now = now.Add(2 * time.Second)

	ok, remaining, err = store.Acquire(ctx, "ping:1", 5*time.Second)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 3*time.Second, remaining)

	ok, _, err = store.Acquire(ctx, "ping:2", 5*time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "keys are independent")

	now = now.Add(3 * time.Second)

	ok, _, err = store.Acquire(ctx, "ping:1", 5*time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "cooldown ends at expiry")

	require.NoError(t, store.Reset(ctx, "ping:1"))

	ok, _, err = store.Acquire(ctx, "ping:1", 5*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryStoreSweep(t *testing.T) {
	now := time.Unix(1700000000, 0)

	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	_, _, _ = store.Acquire(context.Background(), "a", time.Second)
	_, _, _ = store.Acquire(context.Background(), "b", time.Minute)

	now = now.Add(2 * time.Second)

	assert.Equal(t, 1, store.Sweep())
	assert.Len(t, store.expires, 1)
}

func TestMemoryStoreValidation(t *testing.T) {
	store := NewMemoryStore()

	_, _, err := store.Acquire(context.Background(), "", time.Second)
	assert.ErrorIs(t, err, discord.ErrPrecondition)

	_, _, err = store.Acquire(context.Background(), "key", 0)
	assert.ErrorIs(t, err, discord.ErrPrecondition)

	require.NoError(t, store.Close())

	_, _, err = store.Acquire(context.Background(), "key", time.Second)
	assert.ErrorIs(t, err, ErrStoreClosed)
}

// TestRedisStore needs a redis server, given by SWYFT_TEST_REDIS_ADDRESS.
func TestRedisStore(t *testing.T) {
	address := os.Getenv("SWYFT_TEST_REDIS_ADDRESS")
	if address == "" {
		t.Skip("SWYFT_TEST_REDIS_ADDRESS not set")
	}

	ctx := context.Background()

	store, err := NewRedisStore(ctx, RedisOptions{Address: address, Prefix: "swyft:test:" + t.Name()}, zerolog.Nop())
	require.NoError(t, err)

	defer store.Close()

	require.NoError(t, store.Reset(ctx, "ping:1"))

	ok, _, err := store.Acquire(ctx, "ping:1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, remaining, err := store.Acquire(ctx, "ping:1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Greater(t, remaining, time.Duration(0))
	assert.LessOrEqual(t, remaining, time.Minute)

	require.NoError(t, store.Reset(ctx, "ping:1"))

	// A key written without a ttl never frees up, so it is reported instead of retried.
	require.NoError(t, store.redisClient.Set(ctx, store.key("ping:2"), 1, 0).Err())

	_, _, err = store.Acquire(ctx, "ping:2", time.Minute)
	assert.ErrorIs(t, err, ErrNoExpiry)

	require.NoError(t, store.Reset(ctx, "ping:2"))
}

func TestRemainingTTL(t *testing.T) {
	remaining, retry, err := remainingTTL(1500 * time.Millisecond)
	require.NoError(t, err)
	assert.False(t, retry)
	assert.Equal(t, 1500*time.Millisecond, remaining)

	remaining, retry, err = remainingTTL(0)
	require.NoError(t, err)
	assert.False(t, retry)
	assert.Zero(t, remaining)

	_, retry, err = remainingTTL(-2)
	require.NoError(t, err)
	assert.True(t, retry)

	_, retry, err = remainingTTL(-1)
	assert.ErrorIs(t, err, ErrNoExpiry)
	assert.False(t, retry)

	_, retry, err = remainingTTL(-5)
	assert.Error(t, err)
	assert.False(t, retry)
}
