package cache

import "sync"

// Locked guards an LRUCache with a single mutex held for the whole of each
// call. Observers run under the lock and must not call back into the cache.
type Locked[K comparable, V any] struct {
	mu  sync.Mutex
	lru *LRUCache[K, V]
}

func NewLocked[K comparable, V any](capacity int, opts ...Option[K]) (*Locked[K, V], error) {
	lru, err := New[K, V](capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &Locked[K, V]{lru: lru}, nil
}

func (c *Locked[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Get(key)
}

func (c *Locked[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Put(key, value)
}

// GetOrPut returns the cached value for key, or stores and returns value.
// The lookup and the insert happen under one lock acquisition.
func (c *Locked[K, V]) GetOrPut(key K, value V) (actual V, loaded bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.lru.Get(key); ok {
		return v, true
	}
	c.lru.Put(key, value)
	return value, false
}

func (c *Locked[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Contains(key)
}

func (c *Locked[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

func (c *Locked[K, V]) Cap() int {
	return c.lru.Cap()
}

func (c *Locked[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Stats()
}

func (c *Locked[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Keys()
}

func (c *Locked[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Clear()
}
