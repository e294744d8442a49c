// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package egl

import (
	"errors"
	"testing"

	"github.com/gogpu/glctx"
)

// TestDriverRegistered verifies the package registers itself under
// "egl" on import.
func TestDriverRegistered(t *testing.T) {
	for _, name := range glctx.List() {
		if name == "egl" {
			return
		}
	}
	t.Errorf("registered backends = %v, want to include egl", glctx.List())
}

// TestPrototypeWindow verifies the full windowed flow: display,
// config, surface, context and the requested swap interval.
func TestPrototypeWindow(t *testing.T) {
	be := newMockBackend()
	p := glctx.Params{
		Requirements: glctx.DefaultRequirements(),
		Attributes:   glctx.GlAttributes{VSync: glctx.VSyncOn},
	}
	proto, err := newPrototype(be, glctx.DefaultDisplay(), p, SurfaceWindow)
	if err != nil {
		t.Fatalf("newPrototype() error = %v", err)
	}
	ctx, err := proto.FinishWindow(0xFACE)
	if err != nil {
		t.Fatalf("FinishWindow() error = %v", err)
	}

	if !be.called("CreateWindowSurface") {
		t.Error("expected eglCreateWindowSurface")
	}
	if !be.called("SwapInterval(1)") {
		t.Errorf("expected eglSwapInterval(1) for VSyncOn, calls = %v", be.calls)
	}
	if ctx.API() != glctx.OpenGL {
		t.Errorf("API() = %v, want OpenGL (Latest on EGL 1.5 binds desktop GL)", ctx.API())
	}
	if got := ctx.SwapIntervalRange(); !got.Contains(1) {
		t.Errorf("SwapIntervalRange() = %+v, want to contain 1", got)
	}
}

// TestPrototypeSurfaceless verifies no surface is created and no swap
// interval applied.
func TestPrototypeSurfaceless(t *testing.T) {
	be := newMockBackend()
	be.displayExts = "EGL_KHR_surfaceless_context"
	proto, err := newPrototype(be, glctx.DefaultDisplay(), glctx.Params{}, Surfaceless)
	if err != nil {
		t.Fatalf("newPrototype() error = %v", err)
	}
	ctx, err := proto.FinishSurfaceless()
	if err != nil {
		t.Fatalf("FinishSurfaceless() error = %v", err)
	}
	if ctx.surface != noSurface {
		t.Errorf("surface = %#x, want none", ctx.surface)
	}
	if be.called("CreateWindowSurface") || be.called("CreatePbufferSurface") {
		t.Error("surfaceless flow must not create a surface")
	}
	if be.called("SwapInterval(") {
		t.Error("surfaceless flow must not set a swap interval")
	}
}

// TestPrototypePBuffer verifies the offscreen flow creates a pbuffer
// surface.
func TestPrototypePBuffer(t *testing.T) {
	be := newMockBackend()
	proto, err := newPrototype(be, glctx.DefaultDisplay(), glctx.Params{}, SurfacePBuffer)
	if err != nil {
		t.Fatalf("newPrototype() error = %v", err)
	}
	ctx, err := proto.FinishPBuffer(64, 64)
	if err != nil {
		t.Fatalf("FinishPBuffer() error = %v", err)
	}
	if !be.called("CreatePbufferSurface") {
		t.Error("expected eglCreatePbufferSurface")
	}
	if ctx.surface == noSurface {
		t.Error("pbuffer flow produced no surface")
	}
}

// TestPrototypeConsumedOnce verifies a prototype refuses a second
// Finish and a Finish of the wrong kind.
func TestPrototypeConsumedOnce(t *testing.T) {
	be := newMockBackend()
	proto, err := newPrototype(be, glctx.DefaultDisplay(), glctx.Params{}, SurfaceWindow)
	if err != nil {
		t.Fatalf("newPrototype() error = %v", err)
	}
	if _, err := proto.FinishPBuffer(64, 64); err == nil {
		t.Error("FinishPBuffer on a window prototype succeeded")
	}
	if _, err := proto.FinishWindow(0xFACE); err != nil {
		t.Fatalf("FinishWindow() error = %v", err)
	}
	if _, err := proto.FinishWindow(0xFACE); err == nil {
		t.Error("second FinishWindow succeeded")
	}
}

// TestPrototypeShareForeignContext verifies sharing with a context
// from another backend is rejected.
func TestPrototypeShareForeignContext(t *testing.T) {
	be := newMockBackend()
	p := glctx.Params{Share: foreignContext{}}
	_, err := newPrototype(be, glctx.DefaultDisplay(), p, SurfaceWindow)
	if !errors.Is(err, glctx.ErrNotSupported) {
		t.Errorf("error = %v, want ErrNotSupported", err)
	}
}

// foreignContext pretends to be another backend's raw context.
type foreignContext struct{ glctx.RawContext }

// TestPrototypeShareHandle verifies the share handle reaches context
// creation.
func TestPrototypeShareHandle(t *testing.T) {
	be := newMockBackend()
	shared := newTestContext(be)
	p := glctx.Params{Share: shared}
	proto, err := newPrototype(be, glctx.DefaultDisplay(), p, SurfaceWindow)
	if err != nil {
		t.Fatalf("newPrototype() error = %v", err)
	}
	if proto.share != shared.Handle() {
		t.Errorf("share handle = %#x, want %#x", proto.share, shared.Handle())
	}
}

// TestPrototypeSrgbSurface verifies the sRGB colorspace is applied at
// surface creation when the display supports it, and reflected in the
// resolved format.
func TestPrototypeSrgbSurface(t *testing.T) {
	be := newMockBackend()
	be.displayExts = "EGL_KHR_gl_colorspace"
	p := glctx.Params{Requirements: glctx.DefaultRequirements()}
	proto, err := newPrototype(be, glctx.DefaultDisplay(), p, SurfaceWindow)
	if err != nil {
		t.Fatalf("newPrototype() error = %v", err)
	}
	ctx, err := proto.FinishWindow(0xFACE)
	if err != nil {
		t.Fatalf("FinishWindow() error = %v", err)
	}
	if !ctx.PixelFormat().Srgb {
		t.Error("PixelFormat().Srgb = false with EGL_KHR_gl_colorspace present")
	}

	// Without the extension the request degrades silently.
	be = newMockBackend()
	proto, err = newPrototype(be, glctx.DefaultDisplay(), p, SurfaceWindow)
	if err != nil {
		t.Fatalf("newPrototype() error = %v", err)
	}
	ctx, err = proto.FinishWindow(0xFACE)
	if err != nil {
		t.Fatalf("FinishWindow() error = %v", err)
	}
	if ctx.PixelFormat().Srgb {
		t.Error("PixelFormat().Srgb = true without the colorspace extension")
	}
}

// TestPrototypeSurfaceCleanupOnFailure verifies a surface created for
// a negotiation that then fails is destroyed.
func TestPrototypeSurfaceCleanupOnFailure(t *testing.T) {
	be := newMockBackend()
	proto, err := newPrototype(be, glctx.DefaultDisplay(), glctx.Params{}, SurfaceWindow)
	if err != nil {
		t.Fatalf("newPrototype() error = %v", err)
	}
	be.createErr = eglBadMatch

	_, err = proto.FinishWindow(0xFACE)
	if !errors.Is(err, glctx.ErrVersionNotSupported) {
		t.Fatalf("error = %v, want ErrVersionNotSupported", err)
	}
	if len(be.destroyedSurfaces) != 1 {
		t.Errorf("destroyed %d surfaces, want 1", len(be.destroyedSurfaces))
	}
}

// TestPrototypeSurfaceCreationFailure verifies a failed surface
// creation surfaces as an OS error.
func TestPrototypeSurfaceCreationFailure(t *testing.T) {
	be := newMockBackend()
	proto, err := newPrototype(be, glctx.DefaultDisplay(), glctx.Params{}, SurfaceWindow)
	if err != nil {
		t.Fatalf("newPrototype() error = %v", err)
	}
	be.surfaceFail = true

	_, err = proto.FinishWindow(0xFACE)
	var osErr *glctx.OSError
	if !errors.As(err, &osErr) {
		t.Fatalf("error = %v, want *OSError", err)
	}
	if osErr.Call != "eglCreateWindowSurface" {
		t.Errorf("Call = %q, want eglCreateWindowSurface", osErr.Call)
	}
}
