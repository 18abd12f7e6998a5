package resolver

import "sync"

// memoCache is a bounded FIFO cache of resolutions keyed by snapshot
// fingerprint. Keys are content-derived, so entries never go stale; the
// bound only caps memory.
type memoCache struct {
	mu      sync.Mutex
	cap     int
	entries map[[32]byte]Resolution
	order   [][32]byte
}

// newMemoCache creates a cache holding up to capacity entries.
// A capacity of zero or less disables caching.
func newMemoCache(capacity int) *memoCache {
	return &memoCache{
		cap:     capacity,
		entries: make(map[[32]byte]Resolution),
	}
}

func (c *memoCache) get(key [32]byte) (Resolution, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.entries[key]
	return r, ok
}

func (c *memoCache) put(key [32]byte, r Resolution) {
	if c.cap <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		return
	}
	if len(c.order) >= c.cap {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = r
	c.order = append(c.order, key)
}

func (c *memoCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
