package commands

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func (c *CLI) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [nodes...]",
		Short: "Show cache metrics after computing descendants",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, err := c.app.Stats(cmd.Context(), options(cmd), args)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"metric", "value", "help"})
			for _, s := range samples {
				table.Append([]string{s.Name, strconv.FormatFloat(s.Value, 'f', -1, 64), s.Help})
			}
			table.Render()
			return nil
		},
	}
}
