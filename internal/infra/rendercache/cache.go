package rendercache

import (
	"sync"
	"time"
)

// PageCache is an in-memory cache of rendered public-page payloads,
// keyed by public path, with TTL. Publishing or (de)activating a page
// invalidates its path; between the DB write and the invalidation a
// stale render may still be served, which is the documented contract.
type PageCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

type entry struct {
	value   interface{}
	fetched time.Time
}

// Pages is the process-wide cache used by the public site handler.
var Pages = New(5 * time.Minute)

// New creates a PageCache with the given TTL.
func New(ttl time.Duration) *PageCache {
	return &PageCache{entries: map[string]entry{}, ttl: ttl}
}

// Get returns the cached value for a path, if fresh.
func (c *PageCache) Get(path string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[path]
	if !ok || time.Since(e.fetched) >= c.ttl {
		return nil, false
	}
	return e.value, true
}

// Set stores a rendered payload for a path.
func (c *PageCache) Set(path string, value interface{}) {
	c.mu.Lock()
	c.entries[path] = entry{value: value, fetched: time.Now()}
	c.mu.Unlock()
}

// Invalidate clears the cached payload for a path so the next read
// triggers a fresh resolve.
func (c *PageCache) Invalidate(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}
