package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/grove/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <node>",
		Short: "Reprint the descendants of a node whenever the tree files change them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			err := c.app.Watch(cmd.Context(), options(cmd), args[0], func(res app.DeepResult) error {
				_, err := fmt.Fprintf(out, "%s [size=%d leaves=%d digest=%s]: %s\n",
					res.Node, res.Summary.Size, res.Summary.Leaves, res.Summary.Digest,
					strings.Join(res.Descendants, " "))
				return err
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}
