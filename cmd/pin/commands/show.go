package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the locked coordinates per configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			locks, err := c.app.Show()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, configuration := range locks.Configurations() {
				fmt.Fprintf(out, "%s:\n", configuration)
				coordinates := locks[configuration]
				if len(coordinates) == 0 {
					fmt.Fprintln(out, "  (no locked coordinates)")
					continue
				}
				for _, coordinate := range coordinates {
					fmt.Fprintf(out, "  %s\n", coordinate)
				}
			}
			return nil
		},
	}
}
