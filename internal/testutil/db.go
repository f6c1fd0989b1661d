// Package testutil provides test utilities for catalog database setup.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/reqdesk/internal/infrastructure/sqlite"
)

// NewCatalogDB creates a migrated catalog database in a temp directory.
// It is closed when the test ends.
func NewCatalogDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.NewDB(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}
