package translate

import (
	"sync"
	"time"
)

// cache is a size- and TTL-bounded translation cache. When full, the oldest
// entry is evicted first. Expired entries are dropped on read.
type cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	order   []string // insertion order, oldest first
	max     int
	ttl     time.Duration
	now     func() time.Time
}

type cacheEntry struct {
	value    string
	storedAt time.Time
}

func newCache(max int, ttl time.Duration) *cache {
	if max <= 0 {
		max = 1
	}
	return &cache{
		entries: make(map[string]cacheEntry, max),
		max:     max,
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *cache) get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if c.ttl > 0 && c.now().Sub(e.storedAt) > c.ttl {
		delete(c.entries, key)
		return "", false
	}
	return e.value, true
}

func (c *cache) set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		for len(c.entries) >= c.max && len(c.order) > 0 {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = cacheEntry{value: value, storedAt: c.now()}
}

func (c *cache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
