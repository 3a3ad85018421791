// Package cache provides a small generic cache for expensive intermediate
// render buffers (blurred frames, noise fields, grain tiles).
//
// Every renderer instance owns its own caches; nothing here is shared
// globally, so a preview renderer and an export renderer never interfere.
// Entries are keyed by a signature computed from dimensions and effect
// parameters, and the owner clears the cache wholesale on resize.
package cache

import (
	"sort"
	"sync"
)

// Cache is a generic cache with a soft entry limit. When the cache grows
// past the limit, the least recently used quarter is evicted.
//
// Cache is safe for concurrent use and must not be copied after creation.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[V]
	limit   int
	tick    int64
}

type entry[V any] struct {
	value V
	atime int64
}

// New creates a cache with the given soft limit. A limit of 0 means
// unlimited.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*entry[V]),
		limit:   limit,
	}
}

// Get retrieves a value, reporting whether it was present.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.tick++
	e.atime = c.tick
	return e.value, true
}

// Set stores a value, evicting old entries if the soft limit is exceeded.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	c.entries[key] = &entry[V]{value: value, atime: c.tick}
	c.evict()
}

// GetOrCreate returns the cached value for key, calling create under the
// lock to fill a miss. Concurrent callers never create the same entry twice.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.tick++
		e.atime = c.tick
		return e.value
	}

	value := create()
	c.tick++
	c.entries[key] = &entry[V]{value: value, atime: c.tick}
	c.evict()
	return value
}

// Clear removes all entries. Called on resize: every cached buffer is tied
// to the dimensions it was rendered at.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*entry[V])
	c.tick = 0
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evict removes least recently used entries until the cache is at 75% of
// its soft limit. Caller must hold c.mu.
func (c *Cache[K, V]) evict() {
	if c.limit <= 0 || len(c.entries) <= c.limit {
		return
	}

	target := c.limit * 3 / 4
	if target < 1 {
		target = 1
	}

	type aged struct {
		key   K
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{key: k, atime: e.atime})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].atime < all[j].atime })

	for i := 0; i < len(all) && len(c.entries) > target; i++ {
		delete(c.entries, all[i].key)
	}
}
