package tvmaze

import (
	"sync"
	"time"

	"github.com/vmunix/marquee/internal/movie"
)

type cacheEntry struct {
	record  movie.RawRecord
	expires time.Time
}

type cache struct {
	mu      sync.RWMutex
	entries map[int]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func newCache(ttl time.Duration) *cache {
	return &cache{
		entries: make(map[int]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// get returns a copy of the cached record.
func (c *cache) get(id int) (*movie.RawRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[id]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expires) {
		return nil, false
	}
	rec := entry.record
	return &rec, true
}

func (c *cache) set(id int, rec movie.RawRecord) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, e := range c.entries {
		if now.After(e.expires) {
			delete(c.entries, k)
		}
	}
	c.entries[id] = cacheEntry{
		record:  rec,
		expires: now.Add(c.ttl),
	}
}
