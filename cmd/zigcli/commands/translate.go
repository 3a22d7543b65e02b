package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newTranslateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translate <triple>",
		Short: "Print the zig spelling of a host target triple",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zigTriple, err := c.app.Translate(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), zigTriple)
			return err
		},
	}
}
