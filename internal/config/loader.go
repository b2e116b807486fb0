// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/chart"
)

// Format is a configuration file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatOf returns the format implied by a file extension.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Loader reads board and dataset files.
type Loader struct {
	// ExpandEnv enables ${VAR} expansion before parsing.
	ExpandEnv bool
	// StrictEnv fails on references to unset variables.
	StrictEnv bool
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithEnvExpansion enables or disables environment variable expansion.
func WithEnvExpansion(enabled bool) LoaderOption {
	return func(l *Loader) {
		l.ExpandEnv = enabled
	}
}

// WithStrictEnv enables strict environment variable checking.
func WithStrictEnv(enabled bool) LoaderOption {
	return func(l *Loader) {
		l.StrictEnv = enabled
	}
}

// NewLoader creates a loader. Expansion is on by default.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{ExpandEnv: true}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadBoardFile reads a board file. Fields the file leaves out keep their
// DefaultBoard values, except surfaces: a file that lists surfaces mounts
// exactly those.
func (l *Loader) LoadBoardFile(path string) (Board, error) {
	b := DefaultBoard()
	b.Surfaces = nil
	if err := l.decodeFile(path, &b); err != nil {
		return Board{}, err
	}
	if b.Surfaces == nil {
		b.Surfaces = DefaultBoard().Surfaces
	}
	if err := b.Validate(); err != nil {
		return Board{}, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// LoadDatasetFile reads a dataset file.
func (l *Loader) LoadDatasetFile(path string) (chart.Dataset, error) {
	var ds chart.Dataset
	if err := l.decodeFile(path, &ds); err != nil {
		return chart.Dataset{}, err
	}
	return ds, nil
}

// Load decodes r in the given format into v.
func (l *Loader) Load(r io.Reader, format Format, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("config: read: %w", err)
	}

	if l.ExpandEnv {
		e := &envExpander{strict: l.StrictEnv}
		s, err := e.Expand(string(data))
		if err != nil {
			return err
		}
		data = []byte(s)
	}

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return nil
}

func (l *Loader) decodeFile(path string, v any) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("config: open: %w", err)
	}
	defer f.Close()

	if err := l.Load(f, format, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
