// Package cache provides the response cache for unified search. It computes
// canonical cache keys from request semantics and stores serialized
// responses with a TTL, backed by Redis in production and an in-memory map
// in tests.
package cache

import (
	"context"
	"sync"
	"time"
)

// Cache is the response-cache contract consumed by the search orchestrator.
type Cache interface {
	// Get returns the cached value for key, or found=false on a miss.
	Get(ctx context.Context, key string) (value []byte, found bool)

	// Set stores value under key for the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes the entry for key, if present.
	Delete(ctx context.Context, key string) error
}

// memoryEntry is one stored value with its expiry.
type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache is a process-local Cache implementation. Used in tests and as
// a fallback when no Redis address is configured.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
	}
}

// Get implements Cache.Get. Expired entries count as misses and are pruned
// lazily.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	return entry.value, true
}

// Set implements Cache.Set.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Delete implements Cache.Delete.
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

// Len returns the number of live entries. Test helper.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// NoOpCache is a Cache that never hits. Every search goes to the providers.
type NoOpCache struct{}

// NewNoOpCache creates a cache that stores nothing.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// Get always misses.
func (NoOpCache) Get(context.Context, string) ([]byte, bool) { return nil, false }

// Set discards the value.
func (NoOpCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

// Delete is a no-op.
func (NoOpCache) Delete(context.Context, string) error { return nil }

// Compile-time interface checks.
var (
	_ Cache = (*MemoryCache)(nil)
	_ Cache = (*NoOpCache)(nil)
)
