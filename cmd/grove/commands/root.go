// Package commands implements the CLI commands for grove.
package commands

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/grove/internal/adapters/metrics"
	"go.trai.ch/grove/internal/app"
	"go.trai.ch/grove/internal/build"
	"go.trai.ch/grove/internal/core/domain"
	"go.trai.ch/grove/internal/core/ports"
)

const (
	// DefaultFile is the tree file read when neither --file nor GROVE_FILE is set.
	DefaultFile = "grove.yaml"
	// DefaultState is the snapshot file used when neither --state nor GROVE_STATE is set.
	DefaultState = ".grove/state.json"

	envFile  = "GROVE_FILE"
	envState = "GROVE_STATE"
)

// Application is the part of the application layer driven by the CLI.
type Application interface {
	Children(ctx context.Context, opts app.Options, node string) ([]string, error)
	Deep(ctx context.Context, opts app.DeepOptions, nodes []string) ([]app.DeepResult, error)
	Stats(ctx context.Context, opts app.Options, nodes []string) ([]metrics.Sample, error)
	Watch(ctx context.Context, opts app.Options, node string, onUpdate func(app.DeepResult) error) error
}

type levelSetter interface {
	SetLevel(level domain.LogLevel)
}

// CLI represents the command line interface for grove.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "grove",
		Short:         "Incremental children and descendant queries over a node tree",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringSliceP("file", "f", defaultFiles(), "Tree file to load (repeatable)")
	rootCmd.PersistentFlags().String("state", envOr(envState, DefaultState), "Snapshot file for digest comparison")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if !verbose {
			return
		}
		if l, ok := c.logger.(levelSetter); ok {
			l.SetLevel(domain.LogLevelDebug)
		}
	}

	rootCmd.AddCommand(c.newChildrenCmd())
	rootCmd.AddCommand(c.newDeepCmd())
	rootCmd.AddCommand(c.newStatsCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut sets the destination for command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}

func options(cmd *cobra.Command) app.Options {
	files, _ := cmd.Flags().GetStringSlice("file")
	state, _ := cmd.Flags().GetString("state")
	return app.Options{Files: files, State: state}
}

func defaultFiles() []string {
	v := os.Getenv(envFile)
	if v == "" {
		return []string{DefaultFile}
	}
	var files []string
	for _, f := range strings.Split(v, ",") {
		if f = strings.TrimSpace(f); f != "" {
			files = append(files, f)
		}
	}
	if len(files) == 0 {
		return []string{DefaultFile}
	}
	return files
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
