// Package lru implements a fixed-capacity cache that evicts the least
// recently used entry when it runs out of room.
package lru

import (
	"container/list"
	"errors"

	"github.com/chronos-tachyon/assert"
)

// ErrZeroCapacity is returned by New when asked for a cache that cannot hold
// anything.
var ErrZeroCapacity = errors.New("lru: capacity must be at least 1")

// Cache is a least-recently-used cache.  Both Get and Set count as a use.
//
// Cache is not safe for concurrent use.
type Cache[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	order    *list.List
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New returns an empty cache that holds at most capacity entries.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, ErrZeroCapacity
	}
	return &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
	}, nil
}

// Cap returns the maximum number of entries.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Len returns the current number of entries.
func (c *Cache[K, V]) Len() int {
	return len(c.items)
}

// IsFull returns true iff the next Set of a new key will evict an entry.
func (c *Cache[K, V]) IsFull() bool {
	return len(c.items) >= c.capacity
}

// Contains reports whether key is cached, without counting as a use.
func (c *Cache[K, V]) Contains(key K) bool {
	_, found := c.items[key]
	return found
}

// Get returns the value cached for key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	elem, found := c.items[key]
	if !found {
		var zero V
		return zero, false
	}
	c.order.MoveToBack(elem)
	return elem.Value.(*entry[K, V]).value, true
}

// Set caches value under key and marks it most recently used.  If key is
// new and the cache is full, the least recently used entry is evicted
// first.  Replacing the value of a cached key never evicts anything.
func (c *Cache[K, V]) Set(key K, value V) {
	if elem, found := c.items[key]; found {
		elem.Value.(*entry[K, V]).value = value
		c.order.MoveToBack(elem)
		return
	}

	if c.IsFull() {
		oldest := c.order.Front()
		delete(c.items, c.order.Remove(oldest).(*entry[K, V]).key)
	}

	c.items[key] = c.order.PushBack(&entry[K, V]{key: key, value: value})
	assert.Assertf(len(c.items) == c.order.Len(), "index has %d keys but recency list has %d", len(c.items), c.order.Len())
}

// Keys returns the cached keys from least to most recently used.
func (c *Cache[K, V]) Keys() []K {
	out := make([]K, 0, c.order.Len())
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		out = append(out, elem.Value.(*entry[K, V]).key)
	}
	return out
}
