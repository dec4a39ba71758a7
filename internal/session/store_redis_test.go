package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redisClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set, skipping redis tests")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())
	return client
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	store := NewRedisStore(redisClient(t), "admin-console:test:"+t.Name())
	t.Cleanup(func() { _ = store.Delete(ctx) })

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrTokenNotFound)

	require.NoError(t, store.Save(ctx, "tok-1", time.Minute))
	tok, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)

	require.NoError(t, store.Delete(ctx))
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestStub_WithRedisStore(t *testing.T) {
	ctx := context.Background()
	store := NewRedisStore(redisClient(t), "admin-console:test:"+t.Name())
	t.Cleanup(func() { _ = store.Delete(ctx) })

	first := NewStub(newTestIssuer(t), store, nil)
	require.NoError(t, first.Init(ctx))

	second := NewStub(newTestIssuer(t), store, nil)
	require.NoError(t, second.Init(ctx))
	assert.Equal(t, first.Token(), second.Token(), "a restarted console resumes the stored session")
}
