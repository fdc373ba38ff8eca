package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that lock state is present, honoring the lock mode",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.app.Verify()
		},
	}
}
