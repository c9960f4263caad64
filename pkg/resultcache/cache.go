package resultcache

import (
	"strings"
	"sync"
	"time"
)

// Cache memoizes full pipeline responses by normalized query key.
// Entries expire TTL after write and are lazily evicted on Get. When the
// cache is full, Put evicts the insertion-oldest entry (FIFO, not LRU:
// repeated queries cluster on a small set of fixed emotion prompts, so
// recency tracking buys nothing here).
type Cache struct {
	mu       sync.Mutex
	entries  map[string]entry
	order    []string // insertion order, may contain stale keys
	ttl      time.Duration
	capacity int
}

type entry struct {
	payload   interface{}
	expiresAt time.Time
}

func New(ttl time.Duration, capacity int) *Cache {
	if capacity <= 0 {
		capacity = 500
	}
	return &Cache{
		entries:  make(map[string]entry),
		ttl:      ttl,
		capacity: capacity,
	}
}

// NormalizeKey derives the cache key from raw user text:
// trim, collapse internal whitespace, lowercase.
func NormalizeKey(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), " "))
}

// Get returns the cached payload for key, or false if absent or expired.
// Expired entries are evicted on read.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return e.payload, true
}

// Put stores payload under key. At capacity, the insertion-oldest live
// entry is evicted first. Re-putting an existing key updates the payload
// and expiry but keeps its original queue position.
func (c *Cache) Put(key string, payload interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = entry{payload: payload, expiresAt: time.Now().Add(c.ttl)}
		return
	}

	if len(c.entries) >= c.capacity {
		c.evictOldestLocked()
	}

	c.entries[key] = entry{payload: payload, expiresAt: time.Now().Add(c.ttl)}
	c.order = append(c.order, key)
}

// evictOldestLocked pops queue heads until one still maps to a live entry.
// Heads may be stale when their entries already expired on read.
func (c *Cache) evictOldestLocked() {
	for len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		if _, ok := c.entries[oldest]; ok {
			delete(c.entries, oldest)
			return
		}
	}
}

// Len reports the number of live entries (expired-but-unread included).
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Reset drops all entries. For tests.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
	c.order = nil
}
