// Package cache provides the in-memory secret cache that sits in front of the
// credential store. It is a pure performance layer: it is never the source of
// truth, and every failure mode degrades to a miss and a reload from storage.
package cache

import (
	"sync"
	"time"
)

// DefaultTTL is how long a cached secret is served before forcing a reload.
const DefaultTTL = time.Hour

type entry struct {
	secret    string
	expiresAt time.Time
}

// SecretCache memoizes client secret lookups by client key with a bounded
// TTL. Safe for concurrent use. Values are immutable per key until an
// explicit rotation invalidates them, so last-write-wins semantics on Set are
// acceptable.
type SecretCache struct {
	mu      sync.RWMutex
	entries map[string]entry

	now func() time.Time // injectable for tests
}

func NewSecretCache() *SecretCache {
	return &SecretCache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached secret for a client key, or a miss when the key is
// absent or the entry has expired.
func (c *SecretCache) Get(key string) (string, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().After(e.expiresAt) {
		return "", false
	}
	return e.secret, true
}

// Set stores a secret under a client key. A non-positive ttl falls back to
// DefaultTTL.
func (c *SecretCache) Set(key, secret string, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c.mu.Lock()
	c.entries[key] = entry{secret: secret, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
}

// Invalidate drops the entry for a client key. Called on secret rotation and
// on any status change away from enabled.
func (c *SecretCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
