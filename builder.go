// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glctx

import (
	"fmt"
	"math/bits"
)

// Builder accumulates pixel-format requirements and context attributes
// and builds a context against a registered native backend.
//
// The zero Builder is not ready to use; call NewBuilder, which seeds
// DefaultRequirements.
type Builder struct {
	reqs    PixelFormatRequirements
	attrs   GlAttributes
	chooser ConfigChooser
	backend string
	err     error
}

// NewBuilder returns a Builder with default requirements and
// attributes: latest version of the best API, hardware acceleration,
// 24/8/24/8 color/alpha/depth/stencil bits, vsync off.
func NewBuilder() *Builder {
	return &Builder{reqs: DefaultRequirements()}
}

// WithGl sets how the backend chooses the API and version.
func (b *Builder) WithGl(policy VersionPolicy) *Builder {
	b.attrs.Version = policy
	return b
}

// WithGlProfile sets the desired desktop OpenGL profile.
func (b *Builder) WithGlProfile(p Profile) *Builder {
	b.attrs.Profile = &p
	return b
}

// WithGlDebug sets the context's debug flag. Debug contexts are
// usually slower but report errors much better.
func (b *Builder) WithGlDebug(debug bool) *Builder {
	b.attrs.Debug = debug
	return b
}

// WithGlRobustness sets how the context detects faults. See
// [Robustness].
func (b *Builder) WithGlRobustness(r Robustness) *Builder {
	b.attrs.Robustness = r
	return b
}

// WithVSync sets the swap synchronization mode. The default is
// VSyncOff.
func (b *Builder) WithVSync(mode VSyncMode) *Builder {
	b.attrs.VSync = mode
	return b
}

// WithSharedLists shares GL objects with the given context. Both
// contexts must come from the same native backend.
func (b *Builder) WithSharedLists(other *Context) *Builder {
	b.attrs.Share = other
	return b
}

// WithMultisampling sets the multisampling level to request. A value
// of 0 requests that multisampling must not be enabled. Any other
// value must be a power of two; the sample count is never rounded,
// so a non-power-of-two is rejected before any native call.
func (b *Builder) WithMultisampling(samples int) *Builder {
	if samples != 0 && bits.OnesCount(uint(samples)) != 1 {
		b.fail(fmt.Errorf("glctx: multisampling samples %d is not a power of two: %w", samples, ErrNoAvailablePixelFormat))
		return b
	}
	b.reqs.Multisampling = &samples
	return b
}

// WithDepthBuffer sets the minimum number of depth buffer bits.
func (b *Builder) WithDepthBuffer(bits int) *Builder {
	b.reqs.DepthBits = &bits
	return b
}

// WithStencilBuffer sets the minimum number of stencil buffer bits.
func (b *Builder) WithStencilBuffer(bits int) *Builder {
	b.reqs.StencilBits = &bits
	return b
}

// WithPixelFormat sets the minimum number of color and alpha bits.
func (b *Builder) WithPixelFormat(colorBits, alphaBits int) *Builder {
	b.reqs.ColorBits = &colorBits
	b.reqs.AlphaBits = &alphaBits
	return b
}

// WithStereoscopy requests a stereoscopic format.
func (b *Builder) WithStereoscopy() *Builder {
	b.reqs.Stereoscopy = true
	return b
}

// WithSrgb sets whether an sRGB-capable format is required. The
// default is true.
func (b *Builder) WithSrgb(srgb bool) *Builder {
	b.reqs.Srgb = srgb
	return b
}

// WithDoubleBuffer sets whether double buffering is required: true
// only double-buffered, false only single-buffered, nil don't-care.
func (b *Builder) WithDoubleBuffer(double *bool) *Builder {
	b.reqs.DoubleBuffer = double
	return b
}

// WithHardwareAcceleration sets whether hardware acceleration is
// required: true only accelerated, false only software, nil either.
// The default is true.
func (b *Builder) WithHardwareAcceleration(accel *bool) *Builder {
	b.reqs.HardwareAccelerated = accel
	return b
}

// WithReleaseBehavior sets the driver behavior when the current
// context changes.
func (b *Builder) WithReleaseBehavior(rb ReleaseBehavior) *Builder {
	b.reqs.ReleaseBehavior = rb
	return b
}

// WithConfigChooser installs the tie-break callback consulted when
// several configurations satisfy the requirements.
func (b *Builder) WithConfigChooser(c ConfigChooser) *Builder {
	b.chooser = c
	return b
}

// WithBackend pins the build to a registered backend by name instead
// of auto-selecting the highest-priority available one.
func (b *Builder) WithBackend(name string) *Builder {
	b.backend = name
	return b
}

// fail records the first builder error; Build* return it before
// touching any native state.
func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// BuildWindowed negotiates a context against an existing native
// window and returns it in the not-current state.
func (b *Builder) BuildWindowed(display NativeDisplay, window uintptr) (*Context, error) {
	driver, p, err := b.prepare()
	if err != nil {
		return nil, err
	}
	raw, err := driver.WindowedContext(display, window, p)
	if err != nil {
		return nil, err
	}
	return &Context{raw: raw}, nil
}

// BuildPBuffer negotiates a context against an offscreen buffer of the
// given size and returns it in the not-current state.
func (b *Builder) BuildPBuffer(display NativeDisplay, width, height int) (*Context, error) {
	driver, p, err := b.prepare()
	if err != nil {
		return nil, err
	}
	raw, err := driver.PBufferContext(display, width, height, p)
	if err != nil {
		return nil, err
	}
	return &Context{raw: raw}, nil
}

// BuildSurfaceless negotiates a context with no surface attached,
// for off-screen or compute-only GL usage, and returns it in the
// not-current state. Fails with ErrNotSupported when the backend
// cannot run without a surface.
func (b *Builder) BuildSurfaceless(display NativeDisplay) (*Context, error) {
	driver, p, err := b.prepare()
	if err != nil {
		return nil, err
	}
	raw, err := driver.SurfacelessContext(display, p)
	if err != nil {
		return nil, err
	}
	return &Context{raw: raw}, nil
}

// prepare resolves the driver and assembles Params, surfacing any
// deferred builder error first.
func (b *Builder) prepare() (Driver, Params, error) {
	if b.err != nil {
		return nil, Params{}, b.err
	}
	var (
		driver Driver
		err    error
	)
	if b.backend != "" {
		var ok bool
		driver, ok = globalRegistry.Get(b.backend)
		if !ok {
			return nil, Params{}, fmt.Errorf("%w (backend %q not registered)", ErrNoBackendAvailable, b.backend)
		}
	} else {
		driver, err = DefaultDriver()
		if err != nil {
			return nil, Params{}, err
		}
	}
	p := Params{
		Requirements: b.reqs,
		Attributes:   b.attrs,
		Chooser:      b.chooser,
	}
	if b.attrs.Share != nil {
		p.Share = b.attrs.Share.raw
	}
	return driver, p, nil
}
