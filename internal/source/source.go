package source

import (
	"context"
	"fmt"

	"github.com/Varun5711/lrucache/internal/cache"
)

type Source[K comparable, V any] interface {
	Fetch(ctx context.Context, key K) (V, error)
}

type Func[K comparable, V any] func(ctx context.Context, key K) (V, error)

func (f Func[K, V]) Fetch(ctx context.Context, key K) (V, error) {
	return f(ctx, key)
}

// Expensive simulates a slow backend by burning Cost loop iterations per fetch.
type Expensive struct {
	Cost int
}

func NewExpensive(cost int) *Expensive {
	return &Expensive{Cost: cost}
}

const cancelCheckEvery = 1 << 14

func (s *Expensive) Fetch(ctx context.Context, key int) (int, error) {
	sum := 0
	for i := 0; i < s.Cost; i++ {
		if i%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		sum += key * i
	}
	return sum, nil
}

// Cached is a read-through front for a Source. Values that fail to fetch are
// not cached.
type Cached[K comparable, V any] struct {
	lru     *cache.LRUCache[K, V]
	backend Source[K, V]
	hits    uint64
	misses  uint64
}

func NewCached[K comparable, V any](backend Source[K, V], capacity int, opts ...cache.Option[K]) (*Cached[K, V], error) {
	lru, err := cache.New[K, V](capacity, opts...)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	return &Cached[K, V]{lru: lru, backend: backend}, nil
}

func (c *Cached[K, V]) Fetch(ctx context.Context, key K) (V, error) {
	if v, ok := c.lru.Get(key); ok {
		c.hits++
		return v, nil
	}

	c.misses++

	v, err := c.backend.Fetch(ctx, key)
	if err != nil {
		var zero V
		return zero, fmt.Errorf("fetch %v: %w", key, err)
	}

	c.lru.Put(key, v)
	return v, nil
}

func (c *Cached[K, V]) Hits() uint64 {
	return c.hits
}

func (c *Cached[K, V]) Misses() uint64 {
	return c.misses
}

func (c *Cached[K, V]) Len() int {
	return c.lru.Len()
}

func (c *Cached[K, V]) Stats() cache.Stats {
	return c.lru.Stats()
}
