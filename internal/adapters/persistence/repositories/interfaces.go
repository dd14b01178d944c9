package repositories

import (
	"context"
	"time"
)

// StorageRepository is a string key-value store backing browser session storage
type StorageRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// StalePurger removes entries that were not written since cutoff
type StalePurger interface {
	DeleteStale(ctx context.Context, cutoff time.Time) (int64, error)
}
