// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cli implements the chartdemo command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cli/browser"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gogpu/chart"
)

// Build information set at link time.
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// App is the chartdemo application.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer

	verbose bool
	envFile string

	// now and open are replaced in tests.
	now  func() time.Time
	open func(path string) error
}

// New creates the application.
func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
		now:    time.Now,
		open:   browser.OpenFile,
	}

	app.root = &cobra.Command{
		Use:   "chartdemo",
		Short: "Render dashboard charts to PNG",
		Long: `chartdemo renders the revenue and signup line charts, the conversion
funnel and the activity heat map of a dashboard onto raster surfaces and
writes one PNG per mounted slot.

The board file sets surface sizes, pixel ratio, colors and layout. The data
file holds the series. Both may be YAML or JSON and may reference
environment variables as ${VAR} or ${VAR:-default}.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.setup,
	}

	app.root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "Log debug output to stderr")
	app.root.PersistentFlags().StringVar(&app.envFile, "env-file", ".env", "Environment file loaded before reading configuration")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newRenderCmd(),
		app.newWatchCmd(),
		app.newDemoCmd(),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// Execute runs the application until it finishes or is interrupted.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the application with specific arguments.
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

// setup installs the logger and loads the environment file.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	chart.SetLogger(slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level})))

	if a.envFile == "" {
		return nil
	}
	if err := godotenv.Load(a.envFile); err != nil {
		// The default file is optional.
		if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("env-file") {
			return nil
		}
		return fmt.Errorf("load env file: %w", err)
	}
	chart.Logger().Debug("loaded environment file", "path", a.envFile)
	return nil
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "chartdemo version %s\n", chart.Version)
			fmt.Fprintf(a.stdout, "  Git commit: %s\n", GitCommit)
			fmt.Fprintf(a.stdout, "  Build date: %s\n", BuildDate)
		},
	}
}
