// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command chartdemo renders dashboard charts to PNG files.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gogpu/chart/internal/cli"
)

func main() {
	if err := cli.New().Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "chartdemo:", err)
		os.Exit(1)
	}
}
