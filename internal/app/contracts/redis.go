package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	PushToList(ctx context.Context, key string, values ...interface{}) error
	IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	SortedSetAdd(ctx context.Context, key string, score float64, member string) error
	SortedSetRangeByScore(ctx context.Context, key string, max float64, limit int64) ([]string, error)
	SortedSetRemove(ctx context.Context, key string, member string) (bool, error)
}
