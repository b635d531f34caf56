package cache

import (
	"container/list"
	"sync"
	"time"
)

type entry[K comparable, V any] struct {
	key      K
	value    V
	lastSeen time.Time
}

// LRU is a size-bounded cache whose entries also expire after ttl without
// access. It is safe for concurrent use.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	items    map[K]*list.Element
	order    *list.List // front is most recently used
	onEvict  func(key K, value V)
	now      func() time.Time
}

// Option configures an LRU.
type Option[K comparable, V any] func(*LRU[K, V])

// WithTTL expires entries not accessed for longer than ttl. Zero disables expiry.
func WithTTL[K comparable, V any](ttl time.Duration) Option[K, V] {
	return func(c *LRU[K, V]) { c.ttl = ttl }
}

// WithEvictCallback is called for entries removed by capacity or expiry.
// It runs with the cache lock held and must not call back into the cache.
func WithEvictCallback[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(c *LRU[K, V]) { c.onEvict = fn }
}

// WithClock replaces time.Now.
func WithClock[K comparable, V any](now func() time.Time) Option[K, V] {
	return func(c *LRU[K, V]) {
		if now != nil {
			c.now = now
		}
	}
}

// NewLRU returns an empty cache. It panics when capacity is not positive.
func NewLRU[K comparable, V any](capacity int, opts ...Option[K, V]) *LRU[K, V] {
	if capacity <= 0 {
		panic("cache: LRU capacity must be positive")
	}
	c := &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element),
		order:    list.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value for key and marks it used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	e := elem.Value.(*entry[K, V])
	now := c.now()
	if c.expired(e, now) {
		c.evict(elem)
		var zero V
		return zero, false
	}
	e.lastSeen = now
	c.order.MoveToFront(elem)
	return e.value, true
}

// Put stores value under key, evicting the least recently used entry when full.
func (c *LRU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if elem, ok := c.items[key]; ok {
		e := elem.Value.(*entry[K, V])
		e.value = value
		e.lastSeen = now
		c.order.MoveToFront(elem)
		return
	}

	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value, lastSeen: now})
	c.prune(now)
	for c.order.Len() > c.capacity {
		c.evict(c.order.Back())
	}
}

// Remove deletes key without calling the evict callback.
func (c *LRU[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.Remove(elem)
	delete(c.items, key)
	return elem.Value.(*entry[K, V]).value, true
}

// Len counts entries, including expired ones not yet pruned.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// prune drops expired entries from the back. Must be called with mu held.
func (c *LRU[K, V]) prune(now time.Time) {
	for elem := c.order.Back(); elem != nil; elem = c.order.Back() {
		if !c.expired(elem.Value.(*entry[K, V]), now) {
			return
		}
		c.evict(elem)
	}
}

// Must be called with mu held.
func (c *LRU[K, V]) evict(elem *list.Element) {
	e := elem.Value.(*entry[K, V])
	c.order.Remove(elem)
	delete(c.items, e.key)
	if c.onEvict != nil {
		c.onEvict(e.key, e.value)
	}
}

func (c *LRU[K, V]) expired(e *entry[K, V], now time.Time) bool {
	return c.ttl > 0 && now.Sub(e.lastSeen) > c.ttl
}
