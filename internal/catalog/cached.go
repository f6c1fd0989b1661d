package catalog

import (
	"context"
	"slices"
	"time"

	"github.com/zjrosen/reqdesk/internal/cachemanager"
	"github.com/zjrosen/reqdesk/internal/log"
)

// CachedSource memoizes another Source per namespace.
type CachedSource struct {
	rt *cachemanager.ReadThroughCache[string, []Record, string]
}

// NewCachedSource wraps src. Entries live for ttl; zero keeps them until Invalidate.
func NewCachedSource(src Source, ttl time.Duration) *CachedSource {
	if ttl <= 0 {
		ttl = cachemanager.NoExpiration
	}
	cache := cachemanager.NewInMemoryCacheManager[string, []Record](
		"catalog", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval,
	)
	load := func(ctx context.Context, namespaceID string) ([]Record, error) {
		records, err := src.List(ctx, namespaceID)
		if err != nil {
			return nil, err
		}
		log.Debug(log.CatCatalog, "loaded records", "namespace", namespaceID, "count", len(records))
		return records, nil
	}
	return &CachedSource{rt: cachemanager.NewReadThroughCache[string, []Record, string](cache, load, ttl)}
}

var _ Source = (*CachedSource)(nil)

// List implements Source. The returned slice is the caller's to modify.
func (c *CachedSource) List(ctx context.Context, namespaceID string) ([]Record, error) {
	records, err := c.rt.Get(ctx, namespaceID, namespaceID)
	if err != nil {
		return nil, err
	}
	return slices.Clone(records), nil
}

// Invalidate forgets every cached namespace.
func (c *CachedSource) Invalidate(ctx context.Context) error {
	return c.rt.Invalidate(ctx)
}

// Stats exposes cache hit/miss counts.
func (c *CachedSource) Stats() cachemanager.Stats {
	return c.rt.Stats()
}
