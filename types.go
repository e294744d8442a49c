// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glctx

import "fmt"

// API identifies a GL flavor a context can be created for.
type API int

const (
	// OpenGL is the classical desktop OpenGL.
	OpenGL API = iota
	// OpenGLES is OpenGL for embedded systems.
	OpenGLES
	// WebGL is OpenGL for the web. Very similar to OpenGL ES; no native
	// backend in this module creates WebGL contexts, but the value is
	// part of the public vocabulary so requests can name it.
	WebGL
)

// String returns the conventional name of the API.
func (a API) String() string {
	switch a {
	case OpenGL:
		return "OpenGL"
	case OpenGLES:
		return "OpenGL ES"
	case WebGL:
		return "WebGL"
	default:
		return fmt.Sprintf("API(%d)", int(a))
	}
}

// Profile selects the desktop OpenGL context profile.
type Profile int

const (
	// CompatibilityProfile includes all the immediate mode functions and
	// definitions.
	CompatibilityProfile Profile = iota
	// CoreProfile includes only the future-compatible functions and
	// definitions.
	CoreProfile
)

// Robustness specifies the tolerance of the context to faults. If you
// accept raw GL commands or shader code from an untrusted source, you
// should care about this.
type Robustness int

const (
	// NotRobust performs no additional checking. The application can
	// crash if it misuses the API.
	NotRobust Robustness = iota

	// NoError disables driver error checking entirely (see
	// GL_KHR_no_error). Purely an optimization: when the backend lacks
	// support the attribute is silently omitted.
	NoError

	// RobustNoResetNotification checks everything to avoid crashes; on
	// a fault the behavior is implementation-defined but never a crash.
	// Creation fails when the backend lacks robustness support.
	RobustNoResetNotification

	// TryRobustNoResetNotification is RobustNoResetNotification, except
	// creation does not fail when the backend lacks support.
	TryRobustNoResetNotification

	// RobustLoseContextOnReset checks everything to avoid crashes; on a
	// fault the context enters the lost state and must be recreated.
	// Creation fails when the backend lacks robustness support.
	RobustLoseContextOnReset

	// TryRobustLoseContextOnReset is RobustLoseContextOnReset, except
	// creation does not fail when the backend lacks support.
	TryRobustLoseContextOnReset
)

// ReleaseBehavior is what the driver does when the current context
// changes.
type ReleaseBehavior int

const (
	// ReleaseBehaviorFlush flushes the outgoing context as if glFlush
	// was called. This is the default.
	ReleaseBehaviorFlush ReleaseBehavior = iota
	// ReleaseBehaviorNone does nothing, most notably does not flush.
	ReleaseBehaviorNone
)

// VSyncMode controls how buffer swaps synchronize with the display
// refresh.
type VSyncMode struct {
	kind     vsyncKind
	interval int
}

type vsyncKind int

const (
	vsyncOff vsyncKind = iota
	vsyncOn
	vsyncAdaptive
	vsyncInterval
)

// Predefined vsync modes.
var (
	// VSyncOff presents as fast as possible.
	VSyncOff = VSyncMode{kind: vsyncOff}
	// VSyncOn waits for one refresh interval per swap.
	VSyncOn = VSyncMode{kind: vsyncOn}
	// VSyncAdaptive tears only when the frame rate drops below the
	// refresh rate (late swaps happen immediately).
	VSyncAdaptive = VSyncMode{kind: vsyncAdaptive}
)

// VSyncInterval waits for n refresh intervals per swap.
func VSyncInterval(n int) VSyncMode {
	return VSyncMode{kind: vsyncInterval, interval: n}
}

// SwapInterval returns the native swap interval this mode maps to:
// -1 for adaptive, 0 for off, 1 for on, n for an explicit interval.
func (m VSyncMode) SwapInterval() int {
	switch m.kind {
	case vsyncAdaptive:
		return -1
	case vsyncOn:
		return 1
	case vsyncInterval:
		return m.interval
	default:
		return 0
	}
}

// String returns a readable form of the mode.
func (m VSyncMode) String() string {
	switch m.kind {
	case vsyncAdaptive:
		return "adaptive"
	case vsyncOn:
		return "on"
	case vsyncInterval:
		return fmt.Sprintf("interval(%d)", m.interval)
	default:
		return "off"
	}
}

// SwapIntervalRange is the inclusive range of swap intervals a
// configuration supports, as reported by the driver at selection time.
type SwapIntervalRange struct {
	Min int
	Max int
}

// Contains reports whether interval lies inside the range.
func (r SwapIntervalRange) Contains(interval int) bool {
	return interval >= r.Min && interval <= r.Max
}

// Rect is a rectangle to submit as buffer damage, in surface
// coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// DisplayKind tags the platform a native display handle belongs to.
type DisplayKind int

const (
	// DisplayDefault requests the backend's default display without
	// naming a platform. Useful on Windows.
	DisplayDefault DisplayKind = iota
	// DisplayX11 is an X11 Display connection.
	DisplayX11
	// DisplayWayland is a wl_display.
	DisplayWayland
	// DisplayGbm is a GBM device.
	DisplayGbm
	// DisplayAndroid is the Android display; the default display is
	// mandatory there.
	DisplayAndroid
	// DisplayDevice is a backend-enumerated device (EGLDeviceEXT-like).
	DisplayDevice
)

// NativeDisplay names the native display to negotiate against. A zero
// Handle means the platform's default display.
type NativeDisplay struct {
	Kind   DisplayKind
	Handle uintptr
}

// DefaultDisplay requests the default display without a platform tag.
func DefaultDisplay() NativeDisplay {
	return NativeDisplay{Kind: DisplayDefault}
}

// X11Display wraps an X11 Display connection pointer. Zero means the
// default display.
func X11Display(h uintptr) NativeDisplay {
	return NativeDisplay{Kind: DisplayX11, Handle: h}
}

// WaylandDisplay wraps a wl_display pointer. Zero means the default
// display.
func WaylandDisplay(h uintptr) NativeDisplay {
	return NativeDisplay{Kind: DisplayWayland, Handle: h}
}

// GbmDisplay wraps a GBM device pointer. Zero means the default
// display.
func GbmDisplay(h uintptr) NativeDisplay {
	return NativeDisplay{Kind: DisplayGbm, Handle: h}
}

// AndroidDisplay requests the Android default display.
func AndroidDisplay() NativeDisplay {
	return NativeDisplay{Kind: DisplayAndroid}
}

// DeviceDisplay wraps a backend-enumerated device handle.
func DeviceDisplay(h uintptr) NativeDisplay {
	return NativeDisplay{Kind: DisplayDevice, Handle: h}
}
