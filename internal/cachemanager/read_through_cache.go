package cachemanager

import (
	"context"
	"sync/atomic"
	"time"
)

// Stats counts read-through outcomes.
type Stats struct {
	Hits   int64
	Misses int64
}

// ReadThroughCache loads missing values through fn and stores them.
// Failed loads are not cached.
type ReadThroughCache[K ~string, V any, I any] struct {
	cache  CacheManager[K, V]
	fn     func(ctx context.Context, input I) (V, error)
	ttl    time.Duration
	hits   atomic.Int64
	misses atomic.Int64
}

// NewReadThroughCache wires a loader to a cache. ttl applies to every stored value.
func NewReadThroughCache[K ~string, V any, I any](
	cache CacheManager[K, V],
	fn func(ctx context.Context, input I) (V, error),
	ttl time.Duration,
) *ReadThroughCache[K, V, I] {
	return &ReadThroughCache[K, V, I]{
		cache: cache,
		fn:    fn,
		ttl:   ttl,
	}
}

// Get returns the cached value for key, loading it with input on a miss.
func (r *ReadThroughCache[K, V, I]) Get(ctx context.Context, key K, input I) (V, error) {
	if value, ok := r.cache.Get(ctx, key); ok {
		r.hits.Add(1)
		return value, nil
	}
	r.misses.Add(1)

	value, err := r.fn(ctx, input)
	if err != nil {
		return value, err
	}

	r.cache.Set(ctx, key, value, r.ttl)
	return value, nil
}

// Invalidate drops everything so the next Get reloads.
func (r *ReadThroughCache[K, V, I]) Invalidate(ctx context.Context) error {
	return r.cache.Flush(ctx)
}

// Stats returns hit and miss counters.
func (r *ReadThroughCache[K, V, I]) Stats() Stats {
	return Stats{Hits: r.hits.Load(), Misses: r.misses.Load()}
}
