package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.trai.ch/grove/internal/app"
)

func (c *CLI) newDeepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deep [nodes...]",
		Short: "Show the descendants of nodes with their aggregates",
		Long: "Show the descendants of each node with their subtree size, leaf count and digest.\n" +
			"Without arguments the tree's root is used.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			diff, _ := cmd.Flags().GetBool("diff")
			results, err := c.app.Deep(cmd.Context(), app.DeepOptions{
				Options: options(cmd),
				Diff:    diff,
			}, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			header := []string{"node", "size", "leaves", "digest", "cached"}
			if diff {
				header = append(header, "changed")
			}
			table := tablewriter.NewWriter(out)
			table.SetHeader(header)
			for _, res := range results {
				row := []string{
					res.Node,
					strconv.Itoa(res.Summary.Size),
					strconv.Itoa(res.Summary.Leaves),
					res.Summary.Digest,
					strconv.FormatBool(res.Cached),
				}
				if diff {
					row = append(row, strconv.FormatBool(res.Changed))
				}
				table.Append(row)
			}
			table.Render()

			for _, res := range results {
				_, _ = fmt.Fprintf(out, "%s: %s\n", res.Node, strings.Join(res.Descendants, " "))
			}
			return nil
		},
	}
	cmd.Flags().Bool("diff", false, "Compare digests against the previous run")
	return cmd
}
