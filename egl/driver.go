// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package egl

import (
	"fmt"

	"github.com/gogpu/glctx"
)

func init() {
	glctx.Register("egl", 100, &Driver{}, Available)
}

// Available reports whether the EGL library could be loaded. The first
// call loads it; later calls reuse the result.
func Available() bool {
	_, err := backend()
	return err == nil
}

// Driver is the EGL backend. It registers itself under the name "egl";
// applications usually reach it by blank-importing this package and
// using the glctx Builder.
type Driver struct{}

var _ glctx.Driver = (*Driver)(nil)

// Name returns "egl".
func (*Driver) Name() string { return "egl" }

// WindowedContext negotiates a context against an existing native
// window.
func (*Driver) WindowedContext(nd glctx.NativeDisplay, window uintptr, p glctx.Params) (glctx.RawContext, error) {
	proto, err := NewPrototype(nd, p, SurfaceWindow)
	if err != nil {
		return nil, err
	}
	return proto.FinishWindow(window)
}

// PBufferContext negotiates a context against an offscreen pbuffer of
// the given size.
func (*Driver) PBufferContext(nd glctx.NativeDisplay, width, height int, p glctx.Params) (glctx.RawContext, error) {
	proto, err := NewPrototype(nd, p, SurfacePBuffer)
	if err != nil {
		return nil, err
	}
	return proto.FinishPBuffer(width, height)
}

// SurfacelessContext negotiates a context with no surface attached.
func (*Driver) SurfacelessContext(nd glctx.NativeDisplay, p glctx.Params) (glctx.RawContext, error) {
	proto, err := NewPrototype(nd, p, Surfaceless)
	if err != nil {
		return nil, err
	}
	return proto.FinishSurfaceless()
}

// Prototype is a half-built context: the display is initialized, the
// API bound and the configuration chosen, but no surface or context
// exists yet. The split exists for platforms where the window must be
// created from the chosen configuration's visual (X11): build the
// prototype, read Config and the visual, create the window, then
// finish.
//
// A prototype is consumed by exactly one Finish call.
type Prototype struct {
	be      Backend
	display Display
	version Version
	exts    []string

	api    glctx.API
	pinned *glctx.GLVersion
	config Config
	format glctx.PixelFormat
	swap   glctx.SwapIntervalRange

	attrs   glctx.GlAttributes
	share   Handle
	kind    SurfaceKind
	srgb    bool
	applied bool
}

// NewPrototype acquires and initializes the display, binds the client
// API per the version policy and chooses a configuration. No surface
// or context is created yet.
func NewPrototype(nd glctx.NativeDisplay, p glctx.Params, kind SurfaceKind) (*Prototype, error) {
	be, err := backend()
	if err != nil {
		return nil, err
	}
	return newPrototype(be, nd, p, kind)
}

func newPrototype(be Backend, nd glctx.NativeDisplay, p glctx.Params, kind SurfaceKind) (*Prototype, error) {
	d, err := getNativeDisplay(be, nd)
	if err != nil {
		return nil, err
	}
	ver, err := initialize(be, d)
	if err != nil {
		return nil, err
	}
	exts := displayExtensions(be, d, ver)
	glctx.Logger().Debug("egl: display initialized",
		"version", fmt.Sprintf("%d.%d", ver.Major, ver.Minor), "extensions", len(exts))

	api, pinned, err := bindAPI(be, ver, p.Attributes.Version)
	if err != nil {
		return nil, err
	}

	sel, err := chooseConfig(be, d, ver, exts, api, pinned, &p.Requirements, kind, p.Attributes.VSync, p.Chooser)
	if err != nil {
		return nil, err
	}

	var share Handle
	if p.Share != nil {
		sc, ok := p.Share.(*Context)
		if !ok {
			return nil, fmt.Errorf("egl: sharing with a non-EGL context: %w", glctx.ErrNotSupported)
		}
		share = sc.Handle()
	}

	return &Prototype{
		be:      be,
		display: d,
		version: ver,
		exts:    exts,
		api:     api,
		pinned:  pinned,
		config:  sel.config,
		format:  sel.format,
		swap:    sel.swap,
		attrs:   p.Attributes,
		share:   share,
		kind:    kind,
		srgb:    p.Requirements.Srgb,
	}, nil
}

// surfaceAttribs returns the surface creation attributes: an sRGB
// colorspace when requested and the display supports it, nil
// otherwise. The second result reports whether sRGB was applied.
func (p *Prototype) surfaceAttribs() ([]int32, bool) {
	// Colorspace is a surface property, not a configuration one
	// (EGL_KHR_gl_colorspace).
	if p.srgb && hasExtension(p.exts, "EGL_KHR_gl_colorspace") {
		return []int32{eglGLColorspaceKHR, eglGLColorspaceSRGBKHR, eglNone}, true
	}
	return nil, false
}

// Display returns the initialized EGLDisplay.
func (p *Prototype) Display() Display { return p.display }

// Config returns the chosen EGLConfig, for platform code that needs
// the matching native visual before creating its window.
func (p *Prototype) Config() Config { return p.config }

// NativeVisualID returns the chosen configuration's native visual id.
func (p *Prototype) NativeVisualID() (int, error) {
	return NativeVisualID(p.be, p.display, p.config)
}

// PixelFormat returns the resolved format of the chosen configuration.
func (p *Prototype) PixelFormat() glctx.PixelFormat { return p.format }

// FinishWindow creates a window surface for the given native window
// and negotiates the context against it. The prototype must have been
// built for SurfaceWindow.
func (p *Prototype) FinishWindow(window uintptr) (*Context, error) {
	if err := p.consume(SurfaceWindow); err != nil {
		return nil, err
	}
	attribs, srgb := p.surfaceAttribs()
	s := p.be.CreateWindowSurface(p.display, p.config, window, attribs)
	if s == noSurface {
		return nil, &glctx.OSError{Call: "eglCreateWindowSurface", Code: p.be.GetError()}
	}
	p.format.Srgb = srgb
	ctx, err := p.finish(s)
	if err != nil {
		p.be.DestroySurface(p.display, s)
		return nil, err
	}
	return ctx, nil
}

// FinishPBuffer creates an offscreen pbuffer surface and negotiates
// the context against it.
func (p *Prototype) FinishPBuffer(width, height int) (*Context, error) {
	if err := p.consume(SurfacePBuffer); err != nil {
		return nil, err
	}
	attribs := []int32{eglWidth, int32(width), eglHeight, int32(height)}
	if extra, srgb := p.surfaceAttribs(); extra != nil {
		attribs = append(attribs, extra[:len(extra)-1]...)
		p.format.Srgb = srgb
	}
	attribs = append(attribs, eglNone)
	s := p.be.CreatePbufferSurface(p.display, p.config, attribs)
	if s == noSurface {
		return nil, &glctx.OSError{Call: "eglCreatePbufferSurface", Code: p.be.GetError()}
	}
	ctx, err := p.finish(s)
	if err != nil {
		p.be.DestroySurface(p.display, s)
		return nil, err
	}
	return ctx, nil
}

// FinishSurfaceless negotiates the context with no surface.
func (p *Prototype) FinishSurfaceless() (*Context, error) {
	if err := p.consume(Surfaceless); err != nil {
		return nil, err
	}
	return p.finish(noSurface)
}

// consume enforces single use and kind agreement.
func (p *Prototype) consume(kind SurfaceKind) error {
	if p.applied {
		return fmt.Errorf("egl: prototype already finished: %w", glctx.ErrNotSupported)
	}
	if p.kind != kind {
		return fmt.Errorf("egl: prototype built for a different surface kind: %w", glctx.ErrNotSupported)
	}
	p.applied = true
	return nil
}

// finish negotiates the context version cascade and applies the
// requested swap interval.
func (p *Prototype) finish(s Surface) (*Context, error) {
	h, _, err := negotiateContext(p.be, p.display, p.version, p.exts, p.config,
		p.api, p.pinned, &p.attrs, p.share)
	if err != nil {
		return nil, err
	}
	ctx := &Context{
		be:      p.be,
		display: p.display,
		handle:  h,
		config:  p.config,
		api:     p.api,
		format:  p.format,
		swap:    p.swap,
		exts:    p.exts,
		surface: s,
	}
	// EGL scopes the swap interval to a current context with a surface.
	if s != noSurface {
		if err := ctx.setSwapInterval(p.attrs.VSync.SwapInterval()); err != nil {
			ctx.Destroy()
			return nil, err
		}
	}
	return ctx, nil
}
