// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package egl

import (
	"fmt"
	"sync"

	"github.com/gogpu/glctx"
)

// Context is the EGL implementation of glctx.RawContext. Applications
// hold it through the glctx typestate wrappers; the raw type is
// exported for platform code that needs the native handles.
//
// The display, handle and config fields are immutable after creation.
// The surface is mutated only by Destroy, under mu.
type Context struct {
	be      Backend
	display Display
	handle  Handle
	config  Config

	api    glctx.API
	format glctx.PixelFormat
	swap   glctx.SwapIntervalRange
	exts   []string

	mu      sync.Mutex
	surface Surface
}

var _ glctx.RawContext = (*Context)(nil)

// Display returns the native EGLDisplay.
func (c *Context) Display() Display { return c.display }

// Handle returns the native EGLContext.
func (c *Context) Handle() Handle { return c.handle }

// Config returns the EGLConfig the context was created against.
func (c *Context) Config() Config { return c.config }

// MakeCurrent binds the context and its surface to the calling thread.
func (c *Context) MakeCurrent() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.be.MakeCurrent(c.display, c.surface, c.surface, c.handle) {
		return c.bindingError("eglMakeCurrent")
	}
	return nil
}

// MakeNotCurrent releases the context from the calling thread. It only
// touches the thread's binding when this context or its surface is the
// one bound; someone else's binding is left alone.
func (c *Context) MakeNotCurrent() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.be.GetCurrentContext() != c.handle &&
		(c.surface == noSurface || (c.be.GetCurrentSurface(eglDraw) != c.surface &&
			c.be.GetCurrentSurface(eglRead) != c.surface)) {
		return nil
	}
	if !c.be.MakeCurrent(c.display, noSurface, noSurface, noContext) {
		return c.bindingError("eglMakeCurrent")
	}
	return nil
}

// bindingError maps a failed make-current. Context loss is the one
// binding failure the environment may legitimately produce; every
// other code means the handles this context vouches for are wrong,
// which is unrecoverable.
func (c *Context) bindingError(call string) error {
	code := c.be.GetError()
	if code == eglContextLost {
		return glctx.ErrContextLost
	}
	panic(fmt.Sprintf("glctx: %s failed with 0x%x", call, code))
}

// IsCurrent reports whether the context is current on the calling
// thread.
func (c *Context) IsCurrent() bool {
	return c.be.GetCurrentContext() == c.handle
}

// API returns the API the context was created for.
func (c *Context) API() glctx.API { return c.api }

// PixelFormat returns the resolved format of the context's
// configuration.
func (c *Context) PixelFormat() glctx.PixelFormat { return c.format }

// SwapIntervalRange returns the swap intervals the configuration
// supports.
func (c *Context) SwapIntervalRange() glctx.SwapIntervalRange { return c.swap }

// SetVSyncMode changes the swap interval. EGL scopes the interval to
// the current context, so the context is briefly activated; the
// caller's binding is restored before returning.
func (c *Context) SetVSyncMode(mode glctx.VSyncMode) error {
	interval := mode.SwapInterval()
	if !c.swap.Contains(interval) {
		return fmt.Errorf("%w: interval %d outside [%d, %d]",
			glctx.ErrVSyncNotSupported, interval, c.swap.Min, c.swap.Max)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setSwapInterval(interval)
}

// setSwapInterval applies an interval already validated against the
// configuration's range. Callers hold mu.
func (c *Context) setSwapInterval(interval int) error {
	guard, err := newCurrentGuard(c.be, c.display, c.surface, c.surface, c.handle)
	if err != nil {
		return err
	}
	defer guard.Release()
	if !c.be.SwapInterval(c.display, int32(interval)) {
		// The range said the interval fits; a failure here means the
		// driver contradicts its own configuration.
		panic(fmt.Sprintf("glctx: eglSwapInterval(%d) failed with 0x%x", interval, c.be.GetError()))
	}
	return nil
}

// GetProcAddress resolves a GL entry point by name.
func (c *Context) GetProcAddress(name string) uintptr {
	return c.be.GetProcAddress(name)
}

// SwapBuffers presents the back buffer.
func (c *Context) SwapBuffers() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.surface == noSurface {
		return fmt.Errorf("egl: swap without a surface: %w", glctx.ErrNotSupported)
	}
	if !c.be.SwapBuffers(c.display, c.surface) {
		return c.swapError("eglSwapBuffers")
	}
	return nil
}

// SwapBuffersWithDamage presents the back buffer with explicit damage
// rectangles.
func (c *Context) SwapBuffersWithDamage(rects []glctx.Rect) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.surface == noSurface {
		return fmt.Errorf("egl: swap without a surface: %w", glctx.ErrNotSupported)
	}
	if !c.be.HasSwapBuffersWithDamage() {
		return glctx.ErrFunctionUnavailable
	}
	flat := make([]int32, 0, len(rects)*4)
	for _, r := range rects {
		flat = append(flat, int32(r.X), int32(r.Y), int32(r.Width), int32(r.Height))
	}
	if !c.be.SwapBuffersWithDamage(c.display, c.surface, flat) {
		return c.swapError("eglSwapBuffersWithDamageKHR")
	}
	return nil
}

// SwapBuffersWithDamageSupported reports whether the damage entry
// point was loaded.
func (c *Context) SwapBuffersWithDamageSupported() bool {
	return c.be.HasSwapBuffersWithDamage()
}

func (c *Context) swapError(call string) error {
	code := c.be.GetError()
	if code == eglContextLost {
		return glctx.ErrContextLost
	}
	return &glctx.OSError{Call: call, Code: code}
}

// BufferAge returns the back buffer's age in frames, 0 when the
// extension is missing or the query fails.
func (c *Context) BufferAge() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.surface == noSurface || !hasExtension(c.exts, "EGL_EXT_buffer_age") {
		return 0
	}
	age, ok := c.be.QuerySurface(c.display, c.surface, eglBufferAgeEXT)
	if !ok {
		return 0
	}
	return int(age)
}

// Destroy flushes pending GL work and releases the context and its
// surface. The display is deliberately left initialized (see the
// package documentation). Destroy is idempotent.
//
// The context is briefly made current so the flush covers its pending
// work; the caller's binding is restored, except when it referred to
// the objects being destroyed, in which case the thread ends up with
// no current context.
func (c *Context) Destroy() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.handle == noContext {
		return nil
	}

	guard, err := newCurrentGuard(c.be, c.display, c.surface, c.surface, c.handle)
	if err != nil {
		return err
	}
	guard.InvalidateIfEqual(c.surface, c.surface, c.handle)
	if !c.be.WaitClient() {
		glctx.Logger().Warn("egl: eglWaitClient failed during destroy",
			"code", fmt.Sprintf("0x%x", c.be.GetError()))
	}
	guard.Release()

	var firstErr error
	if !c.be.DestroyContext(c.display, c.handle) {
		firstErr = &glctx.OSError{Call: "eglDestroyContext", Code: c.be.GetError()}
	}
	c.handle = noContext
	if c.surface != noSurface {
		if !c.be.DestroySurface(c.display, c.surface) && firstErr == nil {
			firstErr = &glctx.OSError{Call: "eglDestroySurface", Code: c.be.GetError()}
		}
		c.surface = noSurface
	}
	return firstErr
}
