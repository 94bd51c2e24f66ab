package steam

import (
	"container/list"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultCacheSize is the default number of entries to cache.
	DefaultCacheSize = 500

	// DefaultCacheTTL is the default time-to-live for cache entries.
	DefaultCacheTTL = 7 * 24 * time.Hour
)

// Cache is a thread-safe LRU cache for identity resolution results.
// Negative results (profile not found) are cached too, so repeated lookups
// of a bad reference do not hit the network every time.
type Cache struct {
	mu       sync.RWMutex
	capacity int
	ttl      time.Duration
	items    map[string]*list.Element
	lru      *list.List
}

type cacheItem struct {
	key   string
	value CacheEntry
}

// NewCache creates a new LRU cache.
func NewCache(capacity int, ttl time.Duration) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &Cache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*list.Element),
		lru:      list.New(),
	}
}

// Get retrieves a value from the cache.
// Returns nil if the key doesn't exist or has expired.
func (c *Cache) Get(reference string) *CacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := strings.ToLower(reference)
	elem, exists := c.items[key]
	if !exists {
		return nil
	}

	item := elem.Value.(*cacheItem)

	if time.Since(item.value.Timestamp) > c.ttl {
		return nil
	}

	c.lru.MoveToFront(elem)

	return &item.value
}

// Set adds or updates a value in the cache.
func (c *Cache) Set(reference string, entry CacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := strings.ToLower(reference)
	entry.Timestamp = time.Now()

	if elem, exists := c.items[key]; exists {
		c.lru.MoveToFront(elem)
		elem.Value.(*cacheItem).value = entry
		return
	}

	item := &cacheItem{
		key:   key,
		value: entry,
	}
	elem := c.lru.PushFront(item)
	c.items[key] = elem

	if c.lru.Len() > c.capacity {
		c.evictOldest()
	}
}

// evictOldest removes the least recently used entry.
// Must be called with lock held.
func (c *Cache) evictOldest() {
	elem := c.lru.Back()
	if elem == nil {
		return
	}

	c.lru.Remove(elem)
	item := elem.Value.(*cacheItem)
	delete(c.items, item.key)
}

// Clear removes all entries from the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.lru = list.New()
}

// Len returns the number of entries in the cache.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lru.Len()
}
