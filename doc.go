// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glctx negotiates and manages hardware-accelerated OpenGL and
// OpenGL ES contexts against the platform's native context API.
//
// # Overview
//
// glctx is the GL-side context layer of the GoGPU ecosystem. It turns
// abstract pixel-format requirements into a concrete native
// configuration, negotiates the best API and version the driver
// supports, and hands back a context whose current/not-current
// lifecycle is tracked in the type system. It does not create windows
// and it does not issue rendering commands; callers bring their own
// native window handle and resolve GL entry points through the
// context's GetProcAddress.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glctx"
//	    _ "github.com/gogpu/glctx/egl"
//	)
//
//	// Negotiate a context against an existing native window.
//	ctx, err := glctx.NewBuilder().
//	    WithVSync(glctx.VSyncOn).
//	    WithMultisampling(4).
//	    BuildWindowed(glctx.DefaultDisplay(), win)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctx.Destroy()
//
//	cur, err := ctx.MakeCurrent()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// ... resolve GL entry points via cur.GetProcAddress, draw ...
//	cur.SwapBuffers()
//
// # Current and not-current contexts
//
// "Current" is a per-OS-thread property tracked by the native backend.
// glctx mirrors it in the type system with two context types: a
// [Context] is not current and may move freely between goroutines,
// while a [CurrentContext] is pinned to the thread that made it
// current. Transitions return the other type; entry-point lookup and
// buffer swaps exist only on [CurrentContext], so misuse is rejected
// at compile time rather than by the driver.
//
// # Backends
//
// Native backends register themselves by name, the way rendering
// backends do elsewhere in GoGPU. Importing github.com/gogpu/glctx/egl
// registers the EGL backend; GLX and WGL equivalents can plug into the
// same registry.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Builder, Context, CurrentContext, requirement and
//     attribute types, the backend registry
//   - egl: configuration selection, version negotiation, activation
//     guard, and the raw EGL context lifecycle
package glctx
