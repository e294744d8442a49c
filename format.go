// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glctx

// PixelFormatRequirements describes how the backend should choose a
// configuration. Pointer fields are minimums with nil meaning "don't
// care". The zero value cares about nothing; DefaultRequirements
// returns the defaults most applications want.
type PixelFormatRequirements struct {
	// HardwareAccelerated: true considers only hardware-accelerated
	// configurations, false only software renderers, nil either.
	HardwareAccelerated *bool

	// ColorBits is the minimum number of color bits, excluding alpha.
	ColorBits *int

	// FloatColorBuffer requires a floating point color buffer. No
	// backend in this module offers a selector attribute for it yet;
	// requesting it fails with ErrNoAvailablePixelFormat.
	FloatColorBuffer bool

	// AlphaBits is the minimum number of alpha bits in the color
	// buffer.
	AlphaBits *int

	// DepthBits is the minimum number of depth buffer bits.
	DepthBits *int

	// StencilBits is the minimum number of stencil buffer bits.
	StencilBits *int

	// DoubleBuffer: true considers only double-buffered configurations,
	// false only single-buffered ones, nil either. EGL offers no
	// selector attribute for this; true fails with
	// ErrNoAvailablePixelFormat.
	DoubleBuffer *bool

	// Multisampling is the minimum number of samples per pixel. nil
	// means "don't care"; a value of 0 means multisampling must not be
	// enabled.
	Multisampling *int

	// Stereoscopy considers only stereoscopic configurations. EGL
	// offers no selector attribute for this; true fails with
	// ErrNoAvailablePixelFormat.
	Stereoscopy bool

	// Srgb considers only sRGB-capable configurations when true.
	Srgb bool

	// ReleaseBehavior is the driver behavior when the current context
	// changes.
	ReleaseBehavior ReleaseBehavior

	// NativeVisualID pins selection to a configuration whose native
	// visual matches. Platform code sets this when the window's visual
	// is already fixed (X11); zero means unconstrained.
	NativeVisualID int
}

// DefaultRequirements returns the requirements most applications want:
// hardware acceleration, 24 color bits, 8 alpha bits, 24 depth bits,
// 8 stencil bits, sRGB, flush-on-release.
func DefaultRequirements() PixelFormatRequirements {
	accel := true
	color := 24
	alpha := 8
	depth := 24
	stencil := 8
	return PixelFormatRequirements{
		HardwareAccelerated: &accel,
		ColorBits:           &color,
		AlphaBits:           &alpha,
		DepthBits:           &depth,
		StencilBits:         &stencil,
		Srgb:                true,
		ReleaseBehavior:     ReleaseBehaviorFlush,
	}
}

// PixelFormat is the resolved capabilities of a chosen configuration.
// Every field reflects the driver's actual answer, never the request.
type PixelFormat struct {
	HardwareAccelerated bool
	// ColorBits is the number of color bits, excluding alpha.
	ColorBits    int
	AlphaBits    int
	DepthBits    int
	StencilBits  int
	Stereoscopy  bool
	DoubleBuffer bool
	// Multisampling is 0 when multisampling is disabled, otherwise the
	// sample count.
	Multisampling int
	Srgb          bool
}
