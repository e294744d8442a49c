// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glctx

import (
	"errors"
	"fmt"
	"strings"
)

// Creation errors. These reflect legitimate environment variation
// (driver capability differences) and are always returned, never
// panicked: callers are expected to react to them, typically by
// retrying with relaxed requirements or a different API request.
var (
	// ErrNotSupported is returned when a requested feature or extension
	// is absent from the native backend.
	ErrNotSupported = errors.New("glctx: not supported")

	// ErrNoAvailablePixelFormat is returned when configuration selection
	// produced no candidate matching the requirements. This is a normal,
	// recoverable outcome, distinct from a native query failing.
	ErrNoAvailablePixelFormat = errors.New("glctx: no pixel format matches the criteria")

	// ErrVersionNotSupported is returned when version negotiation
	// exhausted its candidate list without creating a context.
	ErrVersionNotSupported = errors.New("glctx: requested OpenGL version not supported")

	// ErrRobustnessNotSupported is returned when a required robustness
	// policy was requested but the backend lacks the creation extension.
	ErrRobustnessNotSupported = errors.New("glctx: robustness not supported")

	// ErrNoBackendAvailable is returned when no native backend is
	// registered, or none of the registered backends is available on
	// this system.
	ErrNoBackendAvailable = errors.New("glctx: no native backend available")
)

// Context errors. These occur on an already-created context.
var (
	// ErrContextLost is reported when the backend signals context loss.
	// The only recovery is recreating the context.
	ErrContextLost = errors.New("glctx: context lost")

	// ErrFunctionUnavailable is returned when an optional extension
	// entry point was never loaded by the backend.
	ErrFunctionUnavailable = errors.New("glctx: function unavailable")

	// ErrVSyncNotSupported is returned when a vsync mode's swap interval
	// falls outside the range supported by the context's configuration.
	ErrVSyncNotSupported = errors.New("glctx: vsync mode not supported")
)

// OSError wraps an unexpected failure of a native backend call. It is
// distinct from the selection sentinels above: an OSError means the
// backend itself misbehaved, not that the environment lacks a feature.
type OSError struct {
	// Call names the native entry point that failed.
	Call string
	// Code is the backend error code, or 0 when the backend reported
	// failure without a code.
	Code int32
}

func (e *OSError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("glctx: %s failed (0x%x)", e.Call, e.Code)
	}
	return fmt.Sprintf("glctx: %s failed", e.Call)
}

// CreationErrors aggregates several independent creation attempts that
// all failed. Every reason is preserved, not just the last; errors.Is
// and errors.As inspect all of them.
type CreationErrors struct {
	Errs []error
}

func (e *CreationErrors) Error() string {
	var b strings.Builder
	b.WriteString("glctx: multiple creation errors:")
	for _, err := range e.Errs {
		b.WriteString("\n\t")
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap returns the collected errors for errors.Is / errors.As.
func (e *CreationErrors) Unwrap() []error {
	return e.Errs
}
