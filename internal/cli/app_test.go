// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/internal/config"
	"github.com/gogpu/chart/surface"
)

var fixedNow = time.Date(2026, time.June, 15, 9, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	orig := chart.Logger()
	t.Cleanup(func() { chart.SetLogger(orig) })

	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)
	app.now = func() time.Time { return fixedNow }
	app.open = func(string) error {
		t.Error("open called unexpectedly")
		return nil
	}
	return app, &stdout, &stderr
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func decodeSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return cfg.Width, cfg.Height
}

func TestAppVersion(t *testing.T) {
	app, stdout, _ := newTestApp(t)

	if err := app.ExecuteWithArgs(context.Background(), []string{"version"}); err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "chartdemo version "+chart.Version) {
		t.Errorf("version output = %q", stdout.String())
	}
}

func TestAppHelp(t *testing.T) {
	app, stdout, _ := newTestApp(t)

	if err := app.ExecuteWithArgs(context.Background(), []string{"--help"}); err != nil {
		t.Fatalf("help command failed: %v", err)
	}
	for _, want := range []string{"render", "watch", "demo", "version"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("help output missing %q", want)
		}
	}
}

func TestAppDemoDeterministic(t *testing.T) {
	run := func() string {
		app, stdout, _ := newTestApp(t)
		if err := app.ExecuteWithArgs(context.Background(), []string{"demo", "--seed", "42"}); err != nil {
			t.Fatalf("demo command failed: %v", err)
		}
		return stdout.String()
	}

	first := run()
	if first != run() {
		t.Error("demo output differs for the same seed")
	}

	var ds chart.Dataset
	if err := yaml.Unmarshal([]byte(first), &ds); err != nil {
		t.Fatalf("demo output is not a dataset: %v", err)
	}
	if len(ds.Revenue) != 12 || len(ds.Funnel) != 4 || len(ds.Heat) != chart.HeatRows {
		t.Errorf("unexpected dataset shape: %d revenue, %d funnel, %d heat rows", len(ds.Revenue), len(ds.Funnel), len(ds.Heat))
	}
	if ds.Revenue[11].Label != "Jun" {
		t.Errorf("last label = %q, want Jun", ds.Revenue[11].Label)
	}
}

func TestAppRenderDefaults(t *testing.T) {
	app, _, _ := newTestApp(t)
	out := t.TempDir()

	err := app.ExecuteWithArgs(context.Background(), []string{"render", "--seed", "1", "-o", out, "--env-file", ""})
	if err != nil {
		t.Fatalf("render command failed: %v", err)
	}

	want := map[string][2]int{
		"revenue.png": {640, 220},
		"signups.png": {640, 220},
		"funnel.png":  {640, 320},
		"heat.png":    {640, 200},
	}
	for name, size := range want {
		w, h := decodeSize(t, filepath.Join(out, name))
		if w != size[0] || h != size[1] {
			t.Errorf("%s = %dx%d, want %dx%d", name, w, h, size[0], size[1])
		}
	}
}

func TestAppRenderBoardAndData(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CHART_TEST_WIDTH", "200")
	board := writeFile(t, dir, "board.yaml", `
pixel_ratio: 2
surfaces:
  funnel: {width: ${CHART_TEST_WIDTH}, height: 200}
  heat: {width: 264, height: 96}
`)
	data := writeFile(t, dir, "data.json", `{"funnel": [{"label": "Visits", "value": 1000}, {"label": "Signups", "value": 100}]}`)
	out := filepath.Join(dir, "out")

	app, _, stderr := newTestApp(t)
	var opened []string
	app.open = func(p string) error {
		opened = append(opened, p)
		return nil
	}

	err := app.ExecuteWithArgs(context.Background(), []string{
		"render", "-c", board, "-d", data, "-o", out, "--open", "--verbose",
	})
	if err != nil {
		t.Fatalf("render command failed: %v", err)
	}

	if w, h := decodeSize(t, filepath.Join(out, "funnel.png")); w != 400 || h != 400 {
		t.Errorf("funnel.png = %dx%d, want 400x400", w, h)
	}
	if w, h := decodeSize(t, filepath.Join(out, "heat.png")); w != 528 || h != 192 {
		t.Errorf("heat.png = %dx%d, want 528x192", w, h)
	}
	if _, err := os.Stat(filepath.Join(out, "revenue.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("revenue.png should not be written for an unmounted slot: %v", err)
	}
	if len(opened) != 2 {
		t.Errorf("opened %v, want 2 files", opened)
	}
	if !strings.Contains(stderr.String(), "surface not mounted") {
		t.Errorf("verbose log missing skip message: %s", stderr.String())
	}
}

func TestAppRenderPixelRatioFlag(t *testing.T) {
	dir := t.TempDir()
	board := writeFile(t, dir, "board.yaml", "surfaces:\n  heat: {width: 100, height: 50, pixel_ratio: 3}\n")

	app, _, _ := newTestApp(t)
	err := app.ExecuteWithArgs(context.Background(), []string{
		"render", "-c", board, "-o", dir, "--pixel-ratio", "1.5", "--seed", "4",
	})
	if err != nil {
		t.Fatalf("render command failed: %v", err)
	}
	if w, h := decodeSize(t, filepath.Join(dir, "heat.png")); w != 150 || h != 75 {
		t.Errorf("heat.png = %dx%d, want 150x75", w, h)
	}
}

func TestAppRenderErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{"missing board", []string{"render", "-c", filepath.Join(dir, "none.yaml"), "-o", dir}},
		{"invalid board", []string{"render", "-c", writeFile(t, dir, "bad.yaml", "pixel_ratio: -2\n"), "-o", dir}},
		{"unknown backend", []string{"render", "-c", writeFile(t, dir, "gpu.yaml", "backend: vulkan\n"), "-o", dir}},
		{"missing env file", []string{"render", "--env-file", filepath.Join(dir, "none.env"), "-o", dir}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := newTestApp(t)
			if err := app.ExecuteWithArgs(context.Background(), tt.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestAppEnvFile(t *testing.T) {
	dir := t.TempDir()
	env := writeFile(t, dir, "test.env", "CHART_TEST_HEAT_WIDTH=48\n")
	board := writeFile(t, dir, "board.yaml", "surfaces:\n  heat: {width: ${CHART_TEST_HEAT_WIDTH}, height: 24}\n")
	t.Cleanup(func() { os.Unsetenv("CHART_TEST_HEAT_WIDTH") })

	app, _, _ := newTestApp(t)
	err := app.ExecuteWithArgs(context.Background(), []string{
		"render", "--env-file", env, "-c", board, "-o", dir, "--seed", "2",
	})
	if err != nil {
		t.Fatalf("render command failed: %v", err)
	}
	if w, h := decodeSize(t, filepath.Join(dir, "heat.png")); w != 48 || h != 24 {
		t.Errorf("heat.png = %dx%d, want 48x24", w, h)
	}
}

func TestWatchRerendersOnChange(t *testing.T) {
	dir := t.TempDir()
	board := writeFile(t, dir, "board.yaml", "surfaces:\n  heat: {width: 60, height: 30}\n")
	out := filepath.Join(dir, "out")

	app, _, _ := newTestApp(t)
	chart.SetLogger(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rendered := make(chan []string)
	done := make(chan error, 1)
	opts := &renderOptions{configPath: board, outDir: out, seed: 5, hasSeed: true}
	go func() { done <- app.watch(ctx, opts, rendered) }()

	waitRender := func() []string {
		select {
		case files := <-rendered:
			return files
		case <-time.After(10 * time.Second):
			t.Fatal("timed out waiting for a render")
			return nil
		}
	}

	if files := waitRender(); len(files) != 1 {
		t.Fatalf("first render wrote %v, want 1 file", files)
	}
	if w, h := decodeSize(t, filepath.Join(out, "heat.png")); w != 60 || h != 30 {
		t.Errorf("heat.png = %dx%d, want 60x30", w, h)
	}

	writeFile(t, dir, "board.yaml", "surfaces:\n  heat: {width: 90, height: 40}\n")
	waitRender()
	if w, h := decodeSize(t, filepath.Join(out, "heat.png")); w != 90 || h != 40 {
		t.Errorf("heat.png after change = %dx%d, want 90x40", w, h)
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("watch returned %v", err)
	}
}

func TestFailed(t *testing.T) {
	err := errors.Join(
		&chart.SlotError{Slot: chart.SlotFunnel, Err: errors.New("boom")},
		&chart.SlotError{Slot: chart.SlotHeat, Err: errors.New("boom")},
	)
	tests := []struct {
		slot chart.Slot
		want bool
	}{
		{chart.SlotRevenue, false},
		{chart.SlotFunnel, true},
		{chart.SlotHeat, true},
	}
	for _, tt := range tests {
		if got := failed(err, tt.slot); got != tt.want {
			t.Errorf("failed(%s) = %v, want %v", tt.slot, got, tt.want)
		}
	}
	if failed(nil, chart.SlotHeat) {
		t.Error("failed(nil) = true")
	}
}

func TestMountRecreatesSurfacesOnBackendChange(t *testing.T) {
	app, _, _ := newTestApp(t)
	s := newSession(app, &renderOptions{})
	defer s.Close()

	board := config.DefaultBoard()
	s.mount(board)
	first := s.surfaces[chart.SlotHeat]

	board.Surfaces[chart.SlotHeat] = surface.Container{Width: 320, Height: 100}
	s.mount(board)
	if s.surfaces[chart.SlotHeat] != first {
		t.Fatal("resizing a slot replaced its surface")
	}

	board.Backend = surface.SoftwareBackend
	mounted := s.mount(board)
	next := s.surfaces[chart.SlotHeat]
	if next == first {
		t.Fatal("changing the backend kept the old surface")
	}
	if next.Backend() != surface.SoftwareBackend {
		t.Errorf("Backend() = %q, want %q", next.Backend(), surface.SoftwareBackend)
	}
	if mounted[chart.SlotHeat] != surface.Target(next) {
		t.Error("board does not mount the new surface")
	}
	if c := next.Container(); c.Width != 320 || c.Height != 100 {
		t.Errorf("Container() = %vx%v, want 320x100", c.Width, c.Height)
	}
	if _, _, err := first.Prepare(); !errors.Is(err, surface.ErrClosed) {
		t.Errorf("old surface Prepare() err = %v, want ErrClosed", err)
	}
}
