package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newChildrenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "children <node>",
		Short: "List the direct children of a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := c.app.Children(cmd.Context(), options(cmd), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range names {
				_, _ = fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}
