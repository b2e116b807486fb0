// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/gogpu/chart"
)

// settle is how long watch waits after the last change before rendering.
// Editors often write a file in several steps.
const settle = 100 * time.Millisecond

func (a *App) newWatchCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render whenever the board or data file changes",
		Long: `Render the board, then render again every time the board or data file
is written. Surfaces are kept between renders and resized in place.

Examples:
  chartdemo watch -c board.yaml -d data.yaml -o out`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.hasSeed = cmd.Flags().Changed("seed")
			if opts.configPath == "" && opts.dataPath == "" {
				return fmt.Errorf("watch needs --config or --data")
			}
			return a.watch(cmd.Context(), opts, nil)
		},
	}
	opts.bind(cmd)
	return cmd
}

// watch renders once and then on every change to the watched files until
// ctx is done. rendered, if not nil, receives the files of each render.
func (a *App) watch(ctx context.Context, opts *renderOptions, rendered chan<- []string) error {
	s := newSession(a, opts)
	defer s.Close()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	targets := make(map[string]bool)
	for _, p := range []string{opts.configPath, opts.dataPath} {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		targets[abs] = true
		// Watch the directory so replace-by-rename saves are seen.
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
	}

	render := func() {
		files, err := s.Render()
		if err != nil {
			chart.Logger().Error("render failed", "error", err)
		}
		if rendered != nil {
			select {
			case rendered <- files:
			case <-ctx.Done():
			}
		}
	}
	render()

	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !targets[filepath.Clean(event.Name)] || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			chart.Logger().Debug("file changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(settle)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			chart.Logger().Warn("watch error", "error", err)
		case <-timer.C:
			render()
		}
	}
}
