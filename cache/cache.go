// Package cache is a small keyed query cache for catalog reads. Keys are
// a canonical serialization of (endpoint, filter parts) and mutations
// invalidate by endpoint prefix.
package cache

import (
	"strings"
	"sync"
	"time"
)

type entry struct {
	data      interface{}
	fetchedAt time.Time
}

type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

// Key builds the canonical cache key for an endpoint and its filter
// parts. Callers must pass parts in a fixed order so equal queries map to
// equal keys.
func Key(endpoint string, parts ...string) string {
	if len(parts) == 0 {
		return endpoint
	}
	return endpoint + "?" + strings.Join(parts, "&")
}

func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Since(e.fetchedAt) > c.ttl {
		return nil, false
	}
	return e.data, true
}

func (c *Cache) Set(key string, data interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{data: data, fetchedAt: time.Now()}
}

// InvalidatePrefix drops every entry whose key starts with prefix. Called
// after mutations that change what the cached queries would return.
func (c *Cache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}
