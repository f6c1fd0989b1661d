package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zjrosen/reqdesk/internal/infrastructure/sqlite"
)

func newSeedCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write generated requests into the sqlite catalog",
		Long: `Generate the configured number of requests for every namespace and
replace the contents of the sqlite catalog with them. A running reqdesk
with catalog.watch enabled reloads its list afterwards.

Examples:
  reqdesk seed
  reqdesk seed --db /tmp/catalog.db --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := o.cfg.Catalog
			gen, err := newGenerator(c, time.Now())
			if err != nil {
				return err
			}

			db, err := sqlite.NewDB(c.DBPath)
			if err != nil {
				return fmt.Errorf("opening catalog %s: %w", c.DBPath, err)
			}
			defer func() { _ = db.Close() }()

			repo := db.RequestRepository()
			ctx := context.Background()
			total := 0
			for _, ns := range o.registry.List() {
				records := gen.Generate(ns.ID)
				if err := repo.ReplaceNamespace(ctx, ns.ID, records); err != nil {
					return fmt.Errorf("seeding %s: %w", ns.ID, err)
				}
				total += len(records)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d requests across %d namespaces into %s\n",
				total, len(o.registry.List()), db.Path())
			return err
		},
	}
}
