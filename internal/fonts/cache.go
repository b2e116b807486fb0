// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fonts

import (
	"sync"

	"github.com/gogpu/gg/text"
)

// faceKey identifies a face by weight and size.
type faceKey struct {
	weight Weight
	size   float64
}

// faceCache is a thread-safe LRU of faces with a soft limit. When it grows
// past the limit, the least recently used quarter is evicted.
type faceCache struct {
	mu      sync.Mutex
	entries map[faceKey]*faceEntry
	limit   int
	tick    int64
}

type faceEntry struct {
	face  text.Face
	atime int64
}

func newFaceCache(limit int) *faceCache {
	return &faceCache{
		entries: make(map[faceKey]*faceEntry),
		limit:   limit,
	}
}

// getOrCreate returns the cached face for k, calling create on a miss.
// A failed create is not cached.
func (c *faceCache) getOrCreate(k faceKey, create func() (text.Face, error)) (text.Face, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if e, ok := c.entries[k]; ok {
		e.atime = c.tick
		return e.face, nil
	}

	face, err := create()
	if err != nil {
		return nil, err
	}
	c.entries[k] = &faceEntry{face: face, atime: c.tick}
	if c.limit > 0 && len(c.entries) > c.limit {
		c.evict()
	}
	return face, nil
}

func (c *faceCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evict drops the oldest entries until three quarters of the limit remain.
// Caller must hold c.mu.
func (c *faceCache) evict() {
	target := max(c.limit*3/4, 1)
	for len(c.entries) > target {
		var oldest faceKey
		var atime int64 = -1
		for k, e := range c.entries {
			if atime < 0 || e.atime < atime {
				oldest, atime = k, e.atime
			}
		}
		delete(c.entries, oldest)
	}
}
