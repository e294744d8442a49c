// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package egl implements the glctx native backend on top of EGL.
//
// Importing the package registers the "egl" backend with the glctx
// registry:
//
//	import _ "github.com/gogpu/glctx/egl"
//
// The package binds to the system EGL library lazily, on first use,
// and keeps the binding for the lifetime of the process. Native
// displays obtained from EGL are deliberately never terminated:
// eglGetDisplay returns the same handle for the same display id across
// the process, EGL does no reference counting on it, and terminating
// it would invalidate displays still legitimately held by unrelated
// contexts. The leak is permanent but bounded (one display connection
// per display id).
//
// All negotiation logic runs against the [Backend] interface, so tests
// substitute a mock backend and the FFI binding stays a thin
// per-platform shim.
package egl
