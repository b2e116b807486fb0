// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/demo"
	"github.com/gogpu/chart/internal/config"
	"github.com/gogpu/chart/surface"
)

// renderOptions holds the flags shared by render and watch.
type renderOptions struct {
	configPath string
	dataPath   string
	outDir     string
	seed       uint64
	hasSeed    bool
	pixelRatio float64
	strictEnv  bool
	open       bool
}

func (o *renderOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.configPath, "config", "c", "", "Board file (YAML or JSON); defaults to the built-in four-slot board")
	f.StringVarP(&o.dataPath, "data", "d", "", "Dataset file (YAML or JSON); defaults to generated demo data")
	f.StringVarP(&o.outDir, "out", "o", ".", "Directory the PNG files are written to")
	f.Uint64Var(&o.seed, "seed", 0, "Seed for demo data and the heat map")
	f.Float64Var(&o.pixelRatio, "pixel-ratio", 0, "Device pixel ratio overriding the board file")
	f.BoolVar(&o.strictEnv, "strict-env", false, "Fail on references to unset environment variables")
	f.BoolVar(&o.open, "open", false, "Open the written files with the system viewer")
}

func (a *App) newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render every mounted slot once",
		Long: `Render the board once and write <slot>.png for each mounted slot.

Examples:
  # Demo data on the default board
  chartdemo render -o out

  # Your own data on a retina board
  chartdemo render -c board.yaml -d data.json --pixel-ratio 2 --open`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.hasSeed = cmd.Flags().Changed("seed")
			s := newSession(a, opts)
			defer s.Close()

			files, err := s.Render()
			if err != nil {
				return err
			}
			return a.openFiles(opts, files)
		},
	}
	opts.bind(cmd)
	return cmd
}

func (a *App) openFiles(opts *renderOptions, files []string) error {
	if !opts.open {
		return nil
	}
	for _, f := range files {
		if err := a.open(f); err != nil {
			return fmt.Errorf("open %s: %w", f, err)
		}
	}
	return nil
}

// session owns the surfaces of one board across renders. Surfaces are kept
// between renders and resized in place when the board changes.
type session struct {
	app      *App
	opts     *renderOptions
	loader   *config.Loader
	surfaces map[chart.Slot]*surface.Surface
}

func newSession(a *App, opts *renderOptions) *session {
	return &session{
		app:      a,
		opts:     opts,
		loader:   config.NewLoader(config.WithStrictEnv(opts.strictEnv)),
		surfaces: make(map[chart.Slot]*surface.Surface),
	}
}

// Render loads the board and dataset, draws every mounted slot and writes
// the frames. It returns the paths written. A slot whose render failed is
// not written; the failure is reported after the other files are saved.
func (s *session) Render() ([]string, error) {
	board, err := s.board()
	if err != nil {
		return nil, err
	}
	ds, err := s.dataset()
	if err != nil {
		return nil, err
	}

	b := s.mount(board)
	renderErr := chart.NewDispatcher(board.Options()...).RenderAll(b, ds)

	if err := os.MkdirAll(s.opts.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	// Frames of different surfaces are encoded in parallel.
	slots := chart.Slots()
	written := make([]string, len(slots))
	var g errgroup.Group
	for i, slot := range slots {
		sf, ok := s.surfaces[slot]
		if !ok || failed(renderErr, slot) {
			continue
		}
		path := filepath.Join(s.opts.outDir, slot.String()+".png")
		g.Go(func() error {
			if err := writePNG(path, sf); err != nil {
				return err
			}
			w, h := sf.PhysicalSize()
			chart.Logger().Info("wrote chart", "slot", slot, "path", path, "width", w, "height", h)
			written[i] = path
			return nil
		})
	}
	writeErr := g.Wait()

	var files []string
	for _, p := range written {
		if p != "" {
			files = append(files, p)
		}
	}
	return files, errors.Join(renderErr, writeErr)
}

// Close releases every surface.
func (s *session) Close() error {
	var errs []error
	for slot, sf := range s.surfaces {
		errs = append(errs, sf.Close())
		delete(s.surfaces, slot)
	}
	return errors.Join(errs...)
}

func (s *session) board() (config.Board, error) {
	b := config.DefaultBoard()
	if s.opts.configPath != "" {
		var err error
		if b, err = s.loader.LoadBoardFile(s.opts.configPath); err != nil {
			return config.Board{}, err
		}
	}
	if s.opts.pixelRatio > 0 {
		b.PixelRatio = s.opts.pixelRatio
		for slot, c := range b.Surfaces {
			c.PixelRatio = 0
			b.Surfaces[slot] = c
		}
	}
	if s.opts.hasSeed {
		seed := s.opts.seed
		b.Seed = &seed
	}
	return b, nil
}

func (s *session) dataset() (chart.Dataset, error) {
	if s.opts.dataPath != "" {
		return s.loader.LoadDatasetFile(s.opts.dataPath)
	}
	seed := s.opts.seed
	if !s.opts.hasSeed {
		seed = uint64(s.app.now().UnixNano())
	}
	ds := demo.Generate(seed, s.app.now())
	if !s.opts.hasSeed {
		// Let the dispatcher's generator shade the heat map.
		ds.Heat = nil
	}
	return ds, nil
}

// mount reconciles the live surfaces with board and returns the board the
// dispatcher renders.
func (s *session) mount(board config.Board) chart.Board {
	var opts []surface.Option
	if board.Backend != "" {
		opts = append(opts, surface.WithBackend(board.Backend))
	}

	b := make(chart.Board, len(board.Surfaces))
	for _, slot := range chart.Slots() {
		c, ok := board.Container(slot)
		sf, live := s.surfaces[slot]
		switch {
		case !ok && live:
			_ = sf.Close()
			delete(s.surfaces, slot)
			continue
		case !ok:
			continue
		case live && sf.Backend() == board.Backend:
			sf.Resize(c.Width, c.Height)
			sf.SetPixelRatio(c.PixelRatio)
		case live:
			_ = sf.Close()
			sf = surface.New(c, opts...)
			s.surfaces[slot] = sf
		default:
			sf = surface.New(c, opts...)
			s.surfaces[slot] = sf
		}
		b[slot] = sf
	}
	return b
}

// failed reports whether err carries a failure for slot.
func failed(err error, slot chart.Slot) bool {
	switch e := err.(type) {
	case *chart.SlotError:
		return e.Slot == slot
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			if failed(inner, slot) {
				return true
			}
		}
	}
	return false
}

func writePNG(path string, sf *surface.Surface) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := sf.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
