package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/reqdesk/internal/config"
	"github.com/zjrosen/reqdesk/internal/presentation"
)

func newNamespacesCmd(o *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "namespaces",
		Short: "List the available namespaces",
		Long: `List the registered namespaces. The one marked * opens at startup.

Examples:
  reqdesk namespaces
  reqdesk namespaces -o json
  reqdesk namespaces use staging`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := presentation.ValidateFormat(output); err != nil {
				return err
			}
			dtos := presentation.FromNamespaces(o.registry.List(), o.cfg.DefaultNamespace)
			return presentation.NewFormatter(cmd.OutOrStdout(), output).FormatNamespaces(dtos)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", presentation.FormatTable, "output format: table, json or yaml")

	cmd.AddCommand(&cobra.Command{
		Use:   "use <namespace>",
		Short: "Set the namespace opened at startup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if err := checkNamespace(o.registry, id); err != nil {
				return err
			}
			if err := config.SaveDefaultNamespace(o.configPath, id); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Default namespace set to %s in %s\n", id, o.configPath)
			return err
		},
	})
	return cmd
}
