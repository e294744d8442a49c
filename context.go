// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glctx

// Context is a GL context that is not current on any thread. It may be
// moved freely between goroutines and OS threads.
//
// A Context cannot issue GL work: buffer swaps and entry-point lookup
// live on [CurrentContext], which [Context.MakeCurrent] returns. The
// two types encode the backend's per-thread "current" protocol so that
// using a context from the wrong state fails to compile instead of
// corrupting driver state.
type Context struct {
	raw RawContext
}

// CurrentContext is a GL context that may be current on the thread
// that produced it via [Context.MakeCurrent]. It is pinned to that
// thread: GL entry points resolved from it are only valid there, so a
// CurrentContext must not be handed to another goroutine.
type CurrentContext struct {
	raw RawContext
}

// WrapRaw adopts a backend's raw context in the not-current state.
// Applications normally obtain contexts from the Builder; WrapRaw
// exists for backends that create contexts by other means.
func WrapRaw(raw RawContext) *Context {
	return &Context{raw: raw}
}

// MakeCurrent binds the context to the calling thread and returns the
// current-state handle. On success the receiver must no longer be
// used: the returned CurrentContext replaces it.
//
// On failure the context is still logically not current and the
// receiver stays valid. A failure of ErrContextLost means the backend
// lost the context; recreate it.
//
// The caller should lock the goroutine to its OS thread for as long as
// the context stays current (runtime.LockOSThread).
func (c *Context) MakeCurrent() (*CurrentContext, error) {
	if err := c.raw.MakeCurrent(); err != nil {
		return nil, err
	}
	return &CurrentContext{raw: c.raw}, nil
}

// TreatAsCurrent returns the current-state handle without any native
// call. It exists to reconcile the tracked state with reality when the
// caller knows, out of band, that the context is actually current
// (after an external library made it so). The receiver must no longer
// be used.
func (c *Context) TreatAsCurrent() *CurrentContext {
	return &CurrentContext{raw: c.raw}
}

// IsCurrent reports whether the context is current on the calling
// thread. This queries the backend; it is valid in either state.
func (c *Context) IsCurrent() bool {
	return c.raw.IsCurrent()
}

// API returns the API the context was created for.
func (c *Context) API() API {
	return c.raw.API()
}

// PixelFormat returns the resolved capabilities of the configuration
// the context was created against.
func (c *Context) PixelFormat() PixelFormat {
	return c.raw.PixelFormat()
}

// SwapIntervalRange returns the swap intervals the context's
// configuration supports.
func (c *Context) SwapIntervalRange() SwapIntervalRange {
	return c.raw.SwapIntervalRange()
}

// SupportsVSyncMode reports whether the configuration supports the
// mode's swap interval.
func (c *Context) SupportsVSyncMode(mode VSyncMode) bool {
	return c.raw.SwapIntervalRange().Contains(mode.SwapInterval())
}

// SetVSyncMode changes the swap interval. The context is temporarily
// activated under the hood; the previously-current context is restored
// before SetVSyncMode returns.
func (c *Context) SetVSyncMode(mode VSyncMode) error {
	return c.raw.SetVSyncMode(mode)
}

// Raw returns the backend context. The typestate no longer protects
// whatever the caller does with it.
func (c *Context) Raw() RawContext {
	return c.raw
}

// Destroy flushes pending GL work and releases the native context and
// surface. The native display handle is deliberately never released;
// see the egl package documentation.
func (c *Context) Destroy() error {
	return c.raw.Destroy()
}

// MakeNotCurrent releases the context from the calling thread and
// returns the movable not-current handle. On success the receiver must
// no longer be used.
//
// It only fails when the backend reports context loss on the release
// call itself.
func (c *CurrentContext) MakeNotCurrent() (*Context, error) {
	if err := c.raw.MakeNotCurrent(); err != nil {
		return nil, err
	}
	return &Context{raw: c.raw}, nil
}

// TreatAsNotCurrent returns the not-current handle without any native
// call, for callers who know out of band that the context was released
// (another library switched contexts on this thread). The receiver
// must no longer be used.
func (c *CurrentContext) TreatAsNotCurrent() *Context {
	return &Context{raw: c.raw}
}

// IsCurrent reports whether the context is still current on the
// calling thread.
func (c *CurrentContext) IsCurrent() bool {
	return c.raw.IsCurrent()
}

// API returns the API the context was created for.
func (c *CurrentContext) API() API {
	return c.raw.API()
}

// PixelFormat returns the resolved capabilities of the configuration
// the context was created against.
func (c *CurrentContext) PixelFormat() PixelFormat {
	return c.raw.PixelFormat()
}

// SwapIntervalRange returns the swap intervals the context's
// configuration supports.
func (c *CurrentContext) SwapIntervalRange() SwapIntervalRange {
	return c.raw.SwapIntervalRange()
}

// SupportsVSyncMode reports whether the configuration supports the
// mode's swap interval.
func (c *CurrentContext) SupportsVSyncMode(mode VSyncMode) bool {
	return c.raw.SwapIntervalRange().Contains(mode.SwapInterval())
}

// SetVSyncMode changes the swap interval.
func (c *CurrentContext) SetVSyncMode(mode VSyncMode) error {
	return c.raw.SetVSyncMode(mode)
}

// GetProcAddress resolves a GL entry point by name. The handle is only
// valid on the thread the context is current on.
func (c *CurrentContext) GetProcAddress(name string) uintptr {
	return c.raw.GetProcAddress(name)
}

// SwapBuffers presents the back buffer. With vsync enabled this blocks
// until the screen refreshes.
func (c *CurrentContext) SwapBuffers() error {
	return c.raw.SwapBuffers()
}

// SwapBuffersWithDamage presents the back buffer, telling the backend
// which rectangles actually changed. Returns ErrFunctionUnavailable
// when the backend never loaded the damage entry point.
func (c *CurrentContext) SwapBuffersWithDamage(rects []Rect) error {
	return c.raw.SwapBuffersWithDamage(rects)
}

// SwapBuffersWithDamageSupported reports whether
// SwapBuffersWithDamage can work on this context.
func (c *CurrentContext) SwapBuffersWithDamageSupported() bool {
	return c.raw.SwapBuffersWithDamageSupported()
}

// BufferAge returns the age of the back buffer in frames: 1 means the
// buffer holds the previous frame, 0 means undefined content or no
// backend support.
func (c *CurrentContext) BufferAge() int {
	return c.raw.BufferAge()
}

// Raw returns the backend context. The typestate no longer protects
// whatever the caller does with it.
func (c *CurrentContext) Raw() RawContext {
	return c.raw
}

// Destroy flushes pending GL work and releases the native context and
// surface.
func (c *CurrentContext) Destroy() error {
	return c.raw.Destroy()
}
