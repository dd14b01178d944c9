package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStorageRepository stores browser session storage in Redis.
// Every write refreshes the key TTL, so idle sessions expire on their own.
type RedisStorageRepository struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStorageRepository creates a new Redis storage repository
func NewRedisStorageRepository(client *redis.Client, ttl time.Duration) *RedisStorageRepository {
	return &RedisStorageRepository{client: client, prefix: "vetcare:storage:", ttl: ttl}
}

// Get gets a value by key
func (r *RedisStorageRepository) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, r.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// Set inserts or overwrites a key
func (r *RedisStorageRepository) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, r.prefix+key, value, r.ttl).Err()
}

// Delete removes the given keys
func (r *RedisStorageRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.prefix + k
	}
	return r.client.Del(ctx, full...).Err()
}
