package lock

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

// Тесты требуют живой Redis: REDIS_ADDR=localhost:6379 go test ./internal/lock/...
func newTestRedis(t *testing.T) *Redis {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR is not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	require.NoError(t, client.Ping(context.Background()).Err())
	t.Cleanup(func() { client.Close() })

	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	return NewRedis(client, 2*time.Second, 200*time.Millisecond, log)
}

func TestRedis_LockExclusive(t *testing.T) {
	r := newTestRedis(t)
	ctx := context.Background()
	key := "test:" + t.Name()

	unlock, err := r.Lock(ctx, key)
	require.NoError(t, err)

	_, err = r.Lock(ctx, key)
	assert.ErrorIs(t, err, ErrLockTimeout)

	unlock()

	unlock2, err := r.Lock(ctx, key)
	require.NoError(t, err)
	unlock2()
}

func TestRedis_UnlockKeepsForeignLock(t *testing.T) {
	r := newTestRedis(t)
	ctx := context.Background()
	key := "test:" + t.Name()

	unlock, err := r.Lock(ctx, key)
	require.NoError(t, err)

	// чужой владелец перехватил ключ после истечения ttl
	require.NoError(t, r.client.Set(ctx, keyPrefix+key, "other", time.Second).Err())
	unlock()

	val, err := r.client.Get(ctx, keyPrefix+key).Result()
	require.NoError(t, err)
	assert.Equal(t, "other", val)

	r.client.Del(ctx, keyPrefix+key)
}
