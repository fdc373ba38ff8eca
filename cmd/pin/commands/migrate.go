package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Fold per-configuration lock files into the unified lock file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Migrate(cmd.Context())
		},
	}
}
