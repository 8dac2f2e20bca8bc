package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*redisRepository, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return &redisRepository{client: client}, server
}

func TestRedisRepository_SetGetDelete(t *testing.T) {
	repo, server := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "booking:intent:order_1", map[string]string{"userId": "user-1"}, time.Minute))

	value, err := repo.Get(ctx, "booking:intent:order_1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"userId":"user-1"}`, value)
	assert.Equal(t, time.Minute, server.TTL("booking:intent:order_1"))

	require.NoError(t, repo.Delete(ctx, "booking:intent:order_1"))

	value, err = repo.Get(ctx, "booking:intent:order_1")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestRedisRepository_TrySetNX(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	acquired, err := repo.TrySetNX(ctx, "reminders:worker:lock", "owner-a", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)

	acquired, err = repo.TrySetNX(ctx, "reminders:worker:lock", "owner-b", time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)

	value, err := repo.Get(ctx, "reminders:worker:lock")
	require.NoError(t, err)
	assert.Equal(t, `"owner-a"`, value)
}

func TestRedisRepository_PushToList(t *testing.T) {
	repo, server := newTestRepository(t)

	require.NoError(t, repo.PushToList(context.Background(), "reconciliation:appointments", "a", "b"))

	items, err := server.List("reconciliation:appointments")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, items)
}

func TestRedisRepository_SortedSet(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SortedSetAdd(ctx, "reminders:scheduled", 300, "late"))
	require.NoError(t, repo.SortedSetAdd(ctx, "reminders:scheduled", 100, "early"))
	require.NoError(t, repo.SortedSetAdd(ctx, "reminders:scheduled", 200, "middle"))

	t.Run("range is ordered by score and bounded by max", func(t *testing.T) {
		members, err := repo.SortedSetRangeByScore(ctx, "reminders:scheduled", 200, 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"early", "middle"}, members)
	})

	t.Run("range honours limit", func(t *testing.T) {
		members, err := repo.SortedSetRangeByScore(ctx, "reminders:scheduled", 1000, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"early"}, members)
	})

	t.Run("remove reports presence once", func(t *testing.T) {
		removed, err := repo.SortedSetRemove(ctx, "reminders:scheduled", "early")
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = repo.SortedSetRemove(ctx, "reminders:scheduled", "early")
		require.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestRedisRepository_ErrorsAreWrapped(t *testing.T) {
	repo, server := newTestRepository(t)
	server.Close()

	_, err := repo.Get(context.Background(), "any")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get data from redis with key any")
}

func TestRedisRepository_IncrementWithTTL(t *testing.T) {
	repo, server := newTestRepository(t)
	ctx := context.Background()

	count, err := repo.IncrementWithTTL(ctx, "ORDER_CREATE:user-1:1", 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, 30*time.Second, server.TTL("ORDER_CREATE:user-1:1"))

	server.FastForward(10 * time.Second)

	count, err = repo.IncrementWithTTL(ctx, "ORDER_CREATE:user-1:1", 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, 20*time.Second, server.TTL("ORDER_CREATE:user-1:1"))
}
