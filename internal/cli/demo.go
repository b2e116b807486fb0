// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/chart/demo"
)

func (a *App) newDemoCmd() *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print a generated dataset as YAML",
		Long: `Print a generated dashboard dataset. The output can be edited and fed back
to render with --data.

Examples:
  chartdemo demo --seed 42 > data.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now()
			if !cmd.Flags().Changed("seed") {
				seed = uint64(now.UnixNano())
			}

			enc := yaml.NewEncoder(a.stdout)
			enc.SetIndent(2)
			if err := enc.Encode(demo.Generate(seed, now)); err != nil {
				return fmt.Errorf("encode dataset: %w", err)
			}
			return enc.Close()
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for the generated values")
	return cmd
}
