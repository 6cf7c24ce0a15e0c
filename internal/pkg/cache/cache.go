package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ReadThrough is a TTL cache in front of a single loader function.
// Misses hit the loader; mutations must call Invalidate explicitly —
// there is no other invalidation path.
type ReadThrough[K comparable, V any] struct {
	lru    *expirable.LRU[K, V]
	loader func(ctx context.Context, key K) (V, error)
}

func NewReadThrough[K comparable, V any](size int, ttl time.Duration, loader func(ctx context.Context, key K) (V, error)) *ReadThrough[K, V] {
	return &ReadThrough[K, V]{
		lru:    expirable.NewLRU[K, V](size, nil, ttl),
		loader: loader,
	}
}

// Get returns the cached value or loads it on a miss.
// Loader errors are never cached.
func (c *ReadThrough[K, V]) Get(ctx context.Context, key K) (V, error) {
	if v, ok := c.lru.Get(key); ok {
		return v, nil
	}
	v, err := c.loader(ctx, key)
	if err != nil {
		var zero V
		return zero, err
	}
	c.lru.Add(key, v)
	return v, nil
}

// Invalidate drops a single key. Call after any mutation of the
// underlying record.
func (c *ReadThrough[K, V]) Invalidate(key K) {
	c.lru.Remove(key)
}

// Purge drops everything.
func (c *ReadThrough[K, V]) Purge() {
	c.lru.Purge()
}
