// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"sort"
	"sync"
)

// BackingFactory allocates a backing buffer of width x height device pixels.
type BackingFactory func(width, height int) (Backing, error)

// RegistryEntry is a registered backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// The built-in software backend uses 10.
	Priority int

	// Factory allocates backing buffers.
	Factory BackingFactory

	// Available reports if the backend can be used on this system.
	Available func() bool
}

// SoftwareBackend is the name of the built-in gg software backend.
const SoftwareBackend = "software"

var globalRegistry = &Registry{}

// Registry manages named backing buffer factories.
//
// Example registration:
//
//	func init() {
//	    surface.Register("gpu", 100, gpuFactory, gpuAvailable)
//	}
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a backend to the global registry.
//
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory BackingFactory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available backends sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns information about a specific backend.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory BackingFactory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}
	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns available backend names sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns the entry for a backend.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	entryCopy := *e
	return &entryCopy, true
}

// NewBacking allocates a buffer from the highest-priority available
// backend. If that factory fails the next one is tried; the last factory
// error is returned when all fail.
func (r *Registry) NewBacking(width, height int) (Backing, error) {
	r.mu.RLock()
	names := r.sortedNames(true)
	factories := make([]BackingFactory, len(names))
	for i, name := range names {
		factories[i] = r.entries[name].Factory
	}
	r.mu.RUnlock()

	var lastErr error
	for _, f := range factories {
		b, err := f(width, height)
		if err == nil {
			return b, nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoBackendAvailable
}

// NewBackingByName allocates a buffer from a specific backend.
func (r *Registry) NewBackingByName(name string, width, height int) (Backing, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !entry.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}

	return entry.Factory(width, height)
}

// sortedNames returns backend names sorted by priority (highest first),
// ties broken by name. Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	entries := make([]*RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].Name < entries[j].Name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// ErrNoBackendAvailable is returned when no backends are registered or
// available. It means the drawing capability itself is missing.
var ErrNoBackendAvailable = errors.New("surface: no backend available")

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}
