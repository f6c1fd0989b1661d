package testutil

import (
	"time"

	"github.com/zjrosen/reqdesk/internal/catalog"
)

// Anchor is the creation time of records built without CreatedAt.
var Anchor = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// defaultRecord returns a pending record created at Anchor.
func defaultRecord(namespaceID, id string) catalog.Record {
	return catalog.Record{
		ID:           id,
		Namespace:    namespaceID,
		CreatedAt:    Anchor,
		LastModified: Anchor,
		Status:       catalog.StatusPending,
	}
}

// RecordOption configures a record during builder setup.
type RecordOption func(*catalog.Record)

// Status sets the record status.
func Status(s catalog.Status) RecordOption {
	return func(r *catalog.Record) { r.Status = s }
}

// CreatedAt sets the creation time. LastModified follows unless set later.
func CreatedAt(t time.Time) RecordOption {
	return func(r *catalog.Record) {
		r.CreatedAt = t
		if r.LastModified.Before(t) {
			r.LastModified = t
		}
	}
}

// ModifiedAt sets the last-modified time.
func ModifiedAt(t time.Time) RecordOption {
	return func(r *catalog.Record) { r.LastModified = t }
}

// Age places the record d before Anchor.
func Age(d time.Duration) RecordOption {
	return func(r *catalog.Record) {
		r.CreatedAt = Anchor.Add(-d)
		r.LastModified = r.CreatedAt
	}
}
