// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package egl

import (
	"fmt"

	"github.com/gogpu/glctx"
)

// currentGuard scopes a temporary eglMakeCurrent: it captures the
// thread's current display/draw/read/context tuple, makes the target
// current, and restores the captured tuple on Release. Callers pair
// newCurrentGuard with a deferred Release.
//
// The guard exists for operations that EGL only permits on a current
// context (swap interval, teardown flushing). It must stay on one OS
// thread between creation and release.
type currentGuard struct {
	be      Backend
	display Display

	oldDisplay Display
	oldDraw    Surface
	oldRead    Surface
	oldContext Handle

	// invalid means the captured tuple refers to state that is being
	// destroyed; Release then clears the binding instead of restoring.
	invalid bool
}

// newCurrentGuard makes the target current and returns the guard that
// undoes it. The failure is returned, not panicked: being unable to
// make a freshly created context current is an environment problem the
// caller reports.
func newCurrentGuard(be Backend, d Display, draw, read Surface, h Handle) (*currentGuard, error) {
	g := &currentGuard{
		be:         be,
		display:    d,
		oldDisplay: be.GetCurrentDisplay(),
		oldDraw:    be.GetCurrentSurface(eglDraw),
		oldRead:    be.GetCurrentSurface(eglRead),
		oldContext: be.GetCurrentContext(),
	}
	if !be.MakeCurrent(d, draw, read, h) {
		return nil, &glctx.OSError{Call: "eglMakeCurrent", Code: be.GetError()}
	}
	return g, nil
}

// InvalidateIfEqual marks the captured tuple invalid when any of its
// members matches the given ones. Destruction paths call this so the
// guard never restores a binding onto objects that are going away.
func (g *currentGuard) InvalidateIfEqual(draw, read Surface, h Handle) {
	if g.oldDraw == draw && draw != noSurface {
		g.invalid = true
	}
	if g.oldRead == read && read != noSurface {
		g.invalid = true
	}
	if g.oldContext == h && h != noContext {
		g.invalid = true
	}
}

// Release restores the captured binding (or clears it when
// invalidated). A restore failure leaves the thread's GL binding in an
// unknown state with no way to reason about subsequent GL calls, so it
// panics.
func (g *currentGuard) Release() {
	draw, read, h := g.oldDraw, g.oldRead, g.oldContext
	if g.invalid {
		draw, read, h = noSurface, noSurface, noContext
	}
	d := g.oldDisplay
	if d == noDisplay {
		d = g.display
	}
	if !g.be.MakeCurrent(d, draw, read, h) {
		panic(fmt.Sprintf("glctx: restoring previous context failed with 0x%x", g.be.GetError()))
	}
}
