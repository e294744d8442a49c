// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glctx

import (
	"fmt"
	"sort"
	"sync"
)

// NativeConfig is an opaque identifier into the native backend's
// configuration table. It is a borrowed reference into backend-managed
// state and is never freed by glctx.
type NativeConfig uintptr

// ConfigChooser is the tie-break callback for configuration selection:
// given the candidates that survived requirement and vsync filtering,
// it returns the one to use. Platform-specific preference policy
// (visual-ID matching, say) lives here, outside the selector. A nil
// chooser takes the first candidate. An error from the chooser is
// treated as "no pixel format available".
type ConfigChooser func(candidates []NativeConfig) (NativeConfig, error)

// RawContext is the backend-facing contract a native backend's context
// fulfills. Applications use the typestate wrappers Context and
// CurrentContext instead; RawContext exists so backends outside this
// module can plug into the registry.
type RawContext interface {
	// MakeCurrent binds the context (and its surface, if any) to the
	// calling thread.
	MakeCurrent() error
	// MakeNotCurrent releases the context from the calling thread if it
	// is the one current there.
	MakeNotCurrent() error
	// IsCurrent reports whether the context is current on the calling
	// thread. Cheap backend query; valid in either state.
	IsCurrent() bool
	// API returns the API the context was created for.
	API() API
	// PixelFormat returns the resolved format of the configuration the
	// context was created against.
	PixelFormat() PixelFormat
	// SwapIntervalRange returns the swap intervals the configuration
	// supports.
	SwapIntervalRange() SwapIntervalRange
	// SetVSyncMode changes the swap interval, temporarily activating
	// the context without disturbing the caller's current/not-current
	// bookkeeping.
	SetVSyncMode(VSyncMode) error
	// GetProcAddress resolves a GL entry point by name.
	GetProcAddress(name string) uintptr
	// SwapBuffers presents the back buffer.
	SwapBuffers() error
	// SwapBuffersWithDamage presents the back buffer with explicit
	// damage rectangles.
	SwapBuffersWithDamage([]Rect) error
	// SwapBuffersWithDamageSupported reports whether the damage entry
	// point was loaded.
	SwapBuffersWithDamageSupported() bool
	// BufferAge returns the back buffer's age in frames, 0 when
	// unsupported.
	BufferAge() int
	// Destroy flushes pending work and releases the native context and
	// surface. The display handle is never released.
	Destroy() error
}

// Params carries everything a backend needs to negotiate a context.
type Params struct {
	// Requirements constrain configuration selection.
	Requirements PixelFormatRequirements
	// Attributes is the context-creation policy. Attributes.Share is
	// resolved by the builder; backends read Share below instead.
	Attributes GlAttributes
	// Share is the raw context to share GL objects with, or nil.
	Share RawContext
	// Chooser is the configuration tie-break callback, or nil.
	Chooser ConfigChooser
}

// Driver is a native backend ("egl", "glx", "wgl"). Implementations
// register themselves via Register, usually from an init function, and
// are selected by the Builder.
type Driver interface {
	// Name returns the backend identifier (e.g., "egl").
	Name() string
	// WindowedContext negotiates a context against an existing native
	// window.
	WindowedContext(display NativeDisplay, window uintptr, p Params) (RawContext, error)
	// PBufferContext negotiates a context against an offscreen buffer
	// of the given size.
	PBufferContext(display NativeDisplay, width, height int, p Params) (RawContext, error)
	// SurfacelessContext negotiates a context with no surface attached.
	SurfacelessContext(display NativeDisplay, p Params) (RawContext, error)
}

// registryEntry is a registered native backend.
type registryEntry struct {
	name      string
	priority  int
	driver    Driver
	available func() bool
}

// Registry manages registered native backends. Most code uses the
// global registry via Register and the Builder; a separate Registry
// exists so tests can run in isolation.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*registryEntry
}

// globalRegistry is the default registry.
var globalRegistry = NewRegistry()

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*registryEntry),
	}
}

// Register adds a backend to the global registry.
//
// Parameters:
//   - name: unique identifier (e.g., "egl")
//   - priority: selection order (higher = preferred)
//   - driver: the backend implementation
//   - available: reports whether the backend works on this system;
//     consulted at selection time, not at registration, so backends
//     can defer loading their native library until first use. nil
//     means always available.
//
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, driver Driver, available func() bool) {
	globalRegistry.Register(name, priority, driver, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority
// (highest first).
func List() []string {
	return globalRegistry.List()
}

// Register adds a backend to the registry.
func (r *Registry) Register(name string, priority int, driver Driver, available func() bool) {
	if available == nil {
		available = func() bool { return true }
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = &registryEntry{
		name:      name,
		priority:  priority,
		driver:    driver,
		available: available,
	}
}

// Unregister removes a backend from the registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// List returns all registered backend names sorted by priority
// (highest first), name as tie-break.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]*registryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].name < entries[j].name
	})
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Get returns the driver registered under name.
func (r *Registry) Get(name string) (Driver, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	return e.driver, true
}

// Default returns the highest-priority available backend, or
// ErrNoBackendAvailable when none is registered or available.
func (r *Registry) Default() (Driver, error) {
	r.mu.RLock()
	entries := make([]*registryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].name < entries[j].name
	})
	for _, e := range entries {
		// Availability may load the backend's native library; checked
		// outside the registry lock.
		if e.available() {
			return e.driver, nil
		}
		Logger().Debug("glctx: backend unavailable", "backend", e.name)
	}
	return nil, fmt.Errorf("%w (registered: %v)", ErrNoBackendAvailable, r.List())
}

// DefaultDriver returns the highest-priority available backend from the
// global registry.
func DefaultDriver() (Driver, error) {
	return globalRegistry.Default()
}
