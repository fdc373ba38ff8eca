package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format",
		Short: "Rewrite the unified lock file in canonical form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fingerprint, err := c.app.Format()
			if err != nil {
				return err
			}
			if fingerprint != 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "lock state fingerprint: %016x\n", fingerprint)
			}
			return nil
		},
	}
}
