// Package main is the entry point for the grove CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/joho/godotenv"
	"go.trai.ch/grove/cmd/grove/commands"
	"go.trai.ch/grove/internal/app"
	_ "go.trai.ch/grove/internal/wiring"
)

// provider resolves the application components.
type provider func(ctx context.Context) (*app.Components, error)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr, resolve)
	cancel()
	os.Exit(code)
}

// resolve builds a fresh component graph on every call.
func resolve(ctx context.Context) (*app.Components, error) {
	components, _, err := graft.ExecuteFor[*app.Components](ctx, graft.DisableCache())
	return components, err
}

func run(ctx context.Context, args []string, stderr io.Writer, resolve provider) int {
	// 0. Environment defaults
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		_, _ = fmt.Fprintf(stderr, "Error: failed to load .env: %v\n", err)
		return 1
	}

	// 1. Initialize application components
	components, err := resolve(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer func() { _ = components.Telemetry.Close() }()

	// 2. Interface - CLI
	cli := commands.New(components.App, components.Logger)
	cli.SetArgs(args)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
