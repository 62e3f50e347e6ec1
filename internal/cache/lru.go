// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package cache

import (
	"sync"
	"time"
)

// Default limits applied when NewLRUCache receives non-positive values.
const (
	DefaultCapacity = 10000
	DefaultTTL      = 30 * time.Minute
)

// EvictReason says why an entry left the cache.
type EvictReason string

const (
	// EvictExpired means the entry outlived its TTL.
	EvictExpired EvictReason = "expired"

	// EvictCapacity means the entry was the least recently used when the
	// cache was full.
	EvictCapacity EvictReason = "capacity"

	// EvictRemoved means the entry was removed explicitly.
	EvictRemoved EvictReason = "removed"
)

// EvictFunc is called after an entry leaves the cache. It runs without the
// cache lock held, so it may call back into the cache.
type EvictFunc[V any] func(key string, value V, reason EvictReason)

// lruEntry is a node of the recency list.
type lruEntry[V any] struct {
	key       string
	value     V
	prev      *lruEntry[V]
	next      *lruEntry[V]
	expiresAt time.Time
}

type eviction[V any] struct {
	key    string
	value  V
	reason EvictReason
}

// LRUCache is a thread-safe Least Recently Used cache with TTL support.
//
// Key features:
//   - O(1) Get, Add, Touch and Remove
//   - O(1) LRU eviction when capacity is reached
//   - TTL with lazy expiration plus an explicit CleanupExpired sweep
//   - eviction callback for bookkeeping outside the cache
//
// Entries live in a doubly-linked list ordered by recency with a map for
// lookups. head.next is the most recently used entry, tail.prev the least.
type LRUCache[V any] struct {
	mu sync.RWMutex

	capacity int
	ttl      time.Duration
	onEvict  EvictFunc[V]
	now      func() time.Time

	items map[string]*lruEntry[V]
	head  *lruEntry[V]
	tail  *lruEntry[V]

	hits   int64
	misses int64
}

// NewLRUCache creates a cache holding at most capacity entries, each
// expiring ttl after it was last added or touched.
func NewLRUCache[V any](capacity int, ttl time.Duration) *LRUCache[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c := &LRUCache[V]{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		items:    make(map[string]*lruEntry[V], min(capacity, 1024)),
		head:     &lruEntry[V]{},
		tail:     &lruEntry[V]{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head

	return c
}

// OnEvict registers fn to be called for every entry that leaves the cache.
func (c *LRUCache[V]) OnEvict(fn EvictFunc[V]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = fn
}

// Capacity returns the maximum number of entries.
func (c *LRUCache[V]) Capacity() int {
	return c.capacity
}

// TTL returns the entry lifetime.
func (c *LRUCache[V]) TTL() time.Duration {
	return c.ttl
}

// Get returns the value for key if it is present and not expired. Found
// entries become the most recently used; their expiry is unchanged.
func (c *LRUCache[V]) Get(key string) (V, bool) {
	var zero V
	var evicted []eviction[V]
	defer func() { c.notify(evicted) }()

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.items[key]
	if !exists {
		c.misses++
		return zero, false
	}
	if c.now().After(entry.expiresAt) {
		c.removeEntry(entry)
		evicted = append(evicted, eviction[V]{entry.key, entry.value, EvictExpired})
		c.misses++
		return zero, false
	}

	c.moveToFront(entry)
	c.hits++
	return entry.value, true
}

// Touch marks key as used and restarts its TTL. It returns false when the
// key is missing or already expired.
func (c *LRUCache[V]) Touch(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.items[key]
	if !exists {
		return false
	}
	now := c.now()
	if now.After(entry.expiresAt) {
		return false
	}

	entry.expiresAt = now.Add(c.ttl)
	c.moveToFront(entry)
	return true
}

// Contains reports whether key is present and not expired without updating
// access order.
func (c *LRUCache[V]) Contains(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if entry, exists := c.items[key]; exists {
		return !c.now().After(entry.expiresAt)
	}
	return false
}

// Add inserts or replaces the value for key and restarts its TTL.
// If the cache is over capacity, least recently used entries are evicted.
func (c *LRUCache[V]) Add(key string, value V) {
	var evicted []eviction[V]
	defer func() { c.notify(evicted) }()

	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)

	if entry, exists := c.items[key]; exists {
		entry.value = value
		entry.expiresAt = expiresAt
		c.moveToFront(entry)
		return
	}

	entry := &lruEntry[V]{
		key:       key,
		value:     value,
		expiresAt: expiresAt,
	}
	c.addToFront(entry)
	c.items[key] = entry

	for len(c.items) > c.capacity {
		oldest := c.tail.prev
		c.removeEntry(oldest)
		evicted = append(evicted, eviction[V]{oldest.key, oldest.value, EvictCapacity})
	}
}

// Remove deletes key. It returns true if the entry was present.
func (c *LRUCache[V]) Remove(key string) bool {
	var evicted []eviction[V]
	defer func() { c.notify(evicted) }()

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.items[key]
	if !exists {
		return false
	}
	c.removeEntry(entry)
	evicted = append(evicted, eviction[V]{entry.key, entry.value, EvictRemoved})
	return true
}

// Len returns the number of entries, including expired ones not yet swept.
func (c *LRUCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Keys returns the keys from most to least recently used.
func (c *LRUCache[V]) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.items))
	for entry := c.head.next; entry != c.tail; entry = entry.next {
		keys = append(keys, entry.key)
	}
	return keys
}

// Clear removes all entries without calling the eviction callback.
func (c *LRUCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*lruEntry[V], min(c.capacity, 1024))
	c.head.next = c.tail
	c.tail.prev = c.head
}

// CleanupExpired removes all expired entries and returns how many were
// removed.
func (c *LRUCache[V]) CleanupExpired() int {
	var evicted []eviction[V]
	defer func() { c.notify(evicted) }()

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()

	// Walk from tail (oldest) to head (newest)
	for entry := c.tail.prev; entry != c.head; {
		prev := entry.prev
		if now.After(entry.expiresAt) {
			c.removeEntry(entry)
			evicted = append(evicted, eviction[V]{entry.key, entry.value, EvictExpired})
		}
		entry = prev
	}

	return len(evicted)
}

// Stats returns cache hit/miss statistics.
func (c *LRUCache[V]) Stats() (hits, misses int64, size int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses, len(c.items)
}

// notify runs the eviction callback outside the lock.
func (c *LRUCache[V]) notify(evicted []eviction[V]) {
	if len(evicted) == 0 {
		return
	}

	c.mu.RLock()
	fn := c.onEvict
	c.mu.RUnlock()

	if fn == nil {
		return
	}
	for _, e := range evicted {
		fn(e.key, e.value, e.reason)
	}
}

// Internal methods (must be called with lock held)

func (c *LRUCache[V]) addToFront(entry *lruEntry[V]) {
	entry.prev = c.head
	entry.next = c.head.next
	c.head.next.prev = entry
	c.head.next = entry
}

func (c *LRUCache[V]) moveToFront(entry *lruEntry[V]) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	c.addToFront(entry)
}

func (c *LRUCache[V]) removeEntry(entry *lruEntry[V]) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	delete(c.items, entry.key)
}
