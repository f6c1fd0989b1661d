package cmd

import (
	"fmt"
	"time"

	"github.com/zjrosen/reqdesk/internal/catalog"
	"github.com/zjrosen/reqdesk/internal/config"
	"github.com/zjrosen/reqdesk/internal/infrastructure/sqlite"
)

// openedSource is a catalog plus the resources behind it.
type openedSource struct {
	Source catalog.Source
	// DBPath is set for the sqlite source so the app can watch it.
	DBPath string
	close  func() error
}

// Close releases the database, if any.
func (s openedSource) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// openSource builds the configured catalog behind a read-through cache.
func openSource(c config.CatalogConfig) (openedSource, error) {
	switch c.Source {
	case config.SourceSQLite:
		db, err := sqlite.NewDB(c.DBPath)
		if err != nil {
			return openedSource{}, fmt.Errorf("opening catalog %s: %w", c.DBPath, err)
		}
		return openedSource{
			Source: catalog.NewCachedSource(db.RequestRepository(), c.CacheTTL),
			DBPath: db.Path(),
			close:  db.Close,
		}, nil
	default:
		gen, err := newGenerator(c, time.Now())
		if err != nil {
			return openedSource{}, err
		}
		return openedSource{Source: catalog.NewCachedSource(gen, c.CacheTTL)}, nil
	}
}

func newGenerator(c config.CatalogConfig, now time.Time) (*catalog.Generator, error) {
	anchor, err := c.AnchorTime(now)
	if err != nil {
		return nil, err
	}
	return catalog.NewGenerator(c.Seed, anchor,
		catalog.WithCount(c.Count),
		catalog.WithSpacing(c.Spacing),
	), nil
}
