//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // registers the GPU accelerator
)

// GPUBackend is the name of the GPU-accelerated backend. It is registered
// unless the module is built with the nogpu tag, and is available only when
// a GPU accelerator initialized.
const GPUBackend = "gpu"

// NewGPUBacking allocates a gg context that renders through the registered
// GPU accelerator.
func NewGPUBacking(width, height int) (Backing, error) {
	return gg.NewContext(width, height), nil
}

func gpuAvailable() bool {
	return gg.Accelerator() != nil
}

func init() {
	Register(GPUBackend, 100, NewGPUBacking, gpuAvailable)
}
