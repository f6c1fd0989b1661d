package testutil

import (
	"time"

	"github.com/zjrosen/reqdesk/internal/catalog"
)

// WithStandardTestData adds one record per status to "default" and a single
// failed record to "production". Within "default" the insertion order differs
// from the creation order so listings must sort.
func (b *Builder) WithStandardTestData() *Builder {
	return b.
		WithRecord("default", "default-req-003", Status(catalog.StatusCompleted), Age(2*time.Hour)).
		WithRecord("default", "default-req-001", Status(catalog.StatusPending)).
		WithRecord("default", "default-req-004", Status(catalog.StatusFailed), Age(3*time.Hour)).
		WithRecord("default", "default-req-002", Status(catalog.StatusProcessing), Age(time.Hour),
			ModifiedAt(Anchor.Add(-30*time.Minute))).
		WithRecord("production", "production-req-001", Status(catalog.StatusFailed), Age(24*time.Hour))
}
