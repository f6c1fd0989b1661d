package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/reqdesk/internal/catalog"
	"github.com/zjrosen/reqdesk/internal/presentation"
)

func newRequestsCmd(o *rootOptions) *cobra.Command {
	var (
		page   int
		output string
	)

	cmd := &cobra.Command{
		Use:   "requests",
		Short: "Print one page of a namespace's requests",
		Long: `Print one page of requests, newest first. Out-of-range pages are
clamped to the nearest valid page.

Examples:
  reqdesk requests
  reqdesk requests -n staging --page 2
  reqdesk requests --source sqlite -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := presentation.ValidateFormat(output); err != nil {
				return err
			}
			ns := o.cfg.DefaultNamespace

			src, err := openSource(o.cfg.Catalog)
			if err != nil {
				return err
			}
			defer func() { _ = src.Close() }()

			records, err := src.Source.List(context.Background(), ns)
			if err != nil {
				return fmt.Errorf("listing %s: %w", ns, err)
			}
			p := catalog.Paginate(records, page, o.cfg.Catalog.PageSize)
			return presentation.NewFormatter(cmd.OutOrStdout(), output).FormatPage(presentation.FromPage(ns, p))
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number (1-based)")
	cmd.Flags().StringVarP(&output, "output", "o", presentation.FormatTable, "output format: table, json or yaml")
	return cmd
}
