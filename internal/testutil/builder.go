package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/reqdesk/internal/catalog"
	"github.com/zjrosen/reqdesk/internal/infrastructure/sqlite"
)

// Builder accumulates records and writes them namespace by namespace.
type Builder struct {
	t          *testing.T
	repo       *sqlite.RequestRepository
	records    map[string][]catalog.Record
	namespaces []string
}

// NewBuilder creates a builder for the given catalog database.
func NewBuilder(t *testing.T, db *sqlite.DB) *Builder {
	t.Helper()
	return &Builder{t: t, repo: db.RequestRepository(), records: make(map[string][]catalog.Record)}
}

// WithRecord adds a record with optional configuration.
func (b *Builder) WithRecord(namespaceID, id string, opts ...RecordOption) *Builder {
	rec := defaultRecord(namespaceID, id)
	for _, opt := range opts {
		opt(&rec)
	}
	if _, ok := b.records[namespaceID]; !ok {
		b.namespaces = append(b.namespaces, namespaceID)
	}
	b.records[namespaceID] = append(b.records[namespaceID], rec)
	return b
}

// WithGenerated adds every record the generator produces for namespaceID.
func (b *Builder) WithGenerated(gen *catalog.Generator, namespaceID string) *Builder {
	if _, ok := b.records[namespaceID]; !ok {
		b.namespaces = append(b.namespaces, namespaceID)
	}
	b.records[namespaceID] = append(b.records[namespaceID], gen.Generate(namespaceID)...)
	return b
}

// Build replaces the stored records of every namespace the builder touched.
func (b *Builder) Build() {
	b.t.Helper()
	ctx := context.Background()
	for _, ns := range b.namespaces {
		require.NoError(b.t, b.repo.ReplaceNamespace(ctx, ns, b.records[ns]))
	}
}
