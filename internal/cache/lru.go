package cache

import (
	"errors"
	"fmt"
)

var ErrInvalidCapacity = errors.New("cache: capacity must be at least 1")

// LRUCache is a fixed-capacity least-recently-used cache. It is not safe for
// concurrent use; wrap it in Locked when more than one goroutine owns it.
type LRUCache[K comparable, V any] struct {
	capacity int
	index    map[K]int
	list     *recencyList[K, V]
	observer Observer[K]

	hits   uint64
	misses uint64
}

type Stats struct {
	Capacity int
	Len      int
	Hits     uint64
	Misses   uint64
}

func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

func New[K comparable, V any](capacity int, opts ...Option[K]) (*LRUCache[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	o := options[K]{observer: nopObserver[K]{}}
	for _, opt := range opts {
		opt(&o)
	}

	return &LRUCache[K, V]{
		capacity: capacity,
		index:    make(map[K]int, capacity),
		list:     newRecencyList[K, V](capacity),
		observer: o.observer,
	}, nil
}

// Get returns the value for key and promotes it to most recently used.
// Only ordering and the hit/miss counters change.
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	c.emit(OpGet, EventLookupStarted, key)

	h, found := c.index[key]
	if !found {
		c.misses++
		c.emit(OpGet, EventMiss, key)
		var zero V
		return zero, false
	}

	c.hits++
	c.emit(OpGet, EventHit, key)

	c.list.moveToFront(h)
	c.emit(OpGet, EventRelocatedToMRU, key)

	return c.list.nodes[h].value, true
}

// Put inserts or refreshes key. Inserting a new key into a full cache evicts
// the least recently used entry first.
func (c *LRUCache[K, V]) Put(key K, value V) {
	c.emit(OpPut, EventLookupStarted, key)

	if h, found := c.index[key]; found {
		c.list.nodes[h].value = value
		c.list.moveToFront(h)
		c.emit(OpPut, EventRelocatedToMRU, key)
		c.emit(OpPut, EventUpdated, key)
		return
	}

	if len(c.index) >= c.capacity {
		c.evict()
	}

	h := c.list.alloc(key, value)
	c.list.insertFront(h)
	c.index[key] = h
	c.emit(OpPut, EventInserted, key)
}

func (c *LRUCache[K, V]) evict() {
	h, ok := c.list.peekBack()
	if !ok {
		return
	}

	victim := c.list.nodes[h].key
	c.list.detach(h)
	delete(c.index, victim)
	c.list.release(h)

	c.emit(OpPut, EventEvicted, victim)
}

// Contains reports membership without touching order, counters or observers.
func (c *LRUCache[K, V]) Contains(key K) bool {
	_, found := c.index[key]
	return found
}

func (c *LRUCache[K, V]) Len() int {
	return len(c.index)
}

func (c *LRUCache[K, V]) Cap() int {
	return c.capacity
}

func (c *LRUCache[K, V]) Hits() uint64 {
	return c.hits
}

func (c *LRUCache[K, V]) Misses() uint64 {
	return c.misses
}

func (c *LRUCache[K, V]) Stats() Stats {
	return Stats{
		Capacity: c.capacity,
		Len:      len(c.index),
		Hits:     c.hits,
		Misses:   c.misses,
	}
}

// Keys returns keys in MRU -> LRU order.
func (c *LRUCache[K, V]) Keys() []K {
	return c.list.keys()
}

// Clear drops every entry. Counters are kept and no events are emitted.
func (c *LRUCache[K, V]) Clear() {
	clear(c.index)
	c.list.reset()
}

func (c *LRUCache[K, V]) emit(op Op, kind EventKind, key K) {
	c.observer.Observe(Event[K]{Op: op, Kind: kind, Key: key})
}
