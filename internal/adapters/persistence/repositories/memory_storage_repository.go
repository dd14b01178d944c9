package repositories

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	updatedAt time.Time
}

// MemoryStorageRepository keeps browser session storage in process memory
type MemoryStorageRepository struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStorageRepository creates an empty in-memory repository
func NewMemoryStorageRepository() *MemoryStorageRepository {
	return &MemoryStorageRepository{entries: make(map[string]memoryEntry), now: time.Now}
}

// Get gets a value by key
func (r *MemoryStorageRepository) Get(_ context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[key]
	return e.value, ok, nil
}

// Set inserts or overwrites a key
func (r *MemoryStorageRepository) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = memoryEntry{value: value, updatedAt: r.now()}
	return nil
}

// Delete removes the given keys
func (r *MemoryStorageRepository) Delete(_ context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range keys {
		delete(r.entries, k)
	}
	return nil
}

// DeleteStale deletes entries not updated since cutoff
func (r *MemoryStorageRepository) DeleteStale(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for k, e := range r.entries {
		if e.updatedAt.Before(cutoff) {
			delete(r.entries, k)
			n++
		}
	}
	return n, nil
}

// Len returns the number of stored keys
func (r *MemoryStorageRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
