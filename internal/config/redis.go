package config

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Redis is the global redis client, set when STORE_DRIVER=redis
var Redis *redis.Client

// ConnectRedis opens the redis client and checks it answers
func ConnectRedis(ctx context.Context, cfg *Config, log *logrus.Entry) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	Redis = client
	log.WithField("addr", cfg.Redis.Addr).Info("redis connected")
	return client, nil
}

// CloseRedis closes the redis client
func CloseRedis() error {
	if Redis == nil {
		return nil
	}
	return Redis.Close()
}

// RedisHealthCheck pings redis
func RedisHealthCheck(ctx context.Context) error {
	if Redis == nil {
		return fmt.Errorf("redis not initialized")
	}
	return Redis.Ping(ctx).Err()
}
