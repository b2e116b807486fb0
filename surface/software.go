// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "github.com/gogpu/gg"

// NewSoftwareBacking allocates a gg software-rasterized context.
func NewSoftwareBacking(width, height int) (Backing, error) {
	return gg.NewContext(width, height), nil
}

func init() {
	Register(SoftwareBackend, 10, NewSoftwareBacking, nil)
}
