// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package egl

import (
	"fmt"

	"github.com/gogpu/glctx"
)

// SurfaceKind is the surface usage a configuration is selected for.
type SurfaceKind int

const (
	// SurfaceWindow selects configurations usable with window surfaces.
	SurfaceWindow SurfaceKind = iota
	// SurfacePBuffer selects configurations usable with pbuffer
	// surfaces.
	SurfacePBuffer
	// Surfaceless selects configurations for contexts with no surface.
	Surfaceless
)

// selection is the outcome of configuration selection.
type selection struct {
	config Config
	format glctx.PixelFormat
	swap   glctx.SwapIntervalRange
}

// chooseConfig turns abstract pixel-format requirements into one
// concrete EGL configuration:
//
//  1. build the attribute descriptor from the requirements,
//  2. enumerate matching configurations,
//  3. discard those whose swap-interval range excludes the requested
//     vsync mode,
//  4. tie-break via the caller's chooser,
//  5. re-query the chosen configuration's concrete attributes for the
//     resolved PixelFormat: the driver's answers, never the request.
//
// A failed native query is a hard OS error; a successful query with
// zero candidates is the recoverable ErrNoAvailablePixelFormat.
func chooseConfig(
	be Backend,
	d Display,
	ver Version,
	exts []string,
	api glctx.API,
	pinned *glctx.GLVersion,
	reqs *glctx.PixelFormatRequirements,
	kind SurfaceKind,
	vsync glctx.VSyncMode,
	chooser glctx.ConfigChooser,
) (selection, error) {
	attribs, err := configAttribs(ver, exts, api, pinned, reqs, kind)
	if err != nil {
		return selection{}, err
	}
	glctx.Logger().Debug("egl: choosing config", "attribs", attribs, "api", api.String())

	count, ok := be.ChooseConfigCount(d, attribs)
	if !ok {
		return selection{}, &glctx.OSError{Call: "eglChooseConfig", Code: be.GetError()}
	}
	if count == 0 {
		return selection{}, glctx.ErrNoAvailablePixelFormat
	}
	configs, ok := be.ChooseConfig(d, attribs, count)
	if !ok {
		return selection{}, &glctx.OSError{Call: "eglChooseConfig", Code: be.GetError()}
	}

	// Keep only configurations that can honor the requested vsync
	// interval.
	interval := vsync.SwapInterval()
	ranges := make(map[Config]glctx.SwapIntervalRange, len(configs))
	candidates := configs[:0]
	for _, c := range configs {
		min, _ := be.GetConfigAttrib(d, c, eglMinSwapInterval)
		if interval < int(min) {
			continue
		}
		max, _ := be.GetConfigAttrib(d, c, eglMaxSwapInterval)
		if interval > int(max) {
			continue
		}
		ranges[c] = glctx.SwapIntervalRange{Min: int(min), Max: int(max)}
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		return selection{}, fmt.Errorf("egl: no config supports swap interval %d: %w",
			interval, glctx.ErrNoAvailablePixelFormat)
	}

	config, err := pickConfig(candidates, chooser)
	if err != nil {
		// A chooser failure means its policy matched nothing.
		return selection{}, glctx.ErrNoAvailablePixelFormat
	}

	format, err := queryFormat(be, d, config)
	if err != nil {
		return selection{}, err
	}
	return selection{config: config, format: format, swap: ranges[config]}, nil
}

// configAttribs builds the eglChooseConfig attribute descriptor.
// Optional requirements are appended only when present; requirements
// EGL has no selector attribute for fail fast instead of being
// silently dropped.
func configAttribs(
	ver Version,
	exts []string,
	api glctx.API,
	pinned *glctx.GLVersion,
	reqs *glctx.PixelFormatRequirements,
	kind SurfaceKind,
) ([]int32, error) {
	out := make([]int32, 0, 38)

	if ver.AtLeast(1, 2) {
		out = append(out, eglColorBufferType, eglRGBBuffer)
	}

	out = append(out, eglSurfaceType)
	switch kind {
	case SurfaceWindow:
		out = append(out, eglWindowBit)
	case SurfacePBuffer:
		out = append(out, eglPBufferBit)
	case Surfaceless:
		if !hasExtension(exts, "EGL_KHR_surfaceless_context") {
			return nil, fmt.Errorf("egl: surfaceless context: %w", glctx.ErrNotSupported)
		}
		out = append(out, 0)
	}

	// Renderable and conformance bits for the requested API. API and
	// version combinations the negotiated EGL version cannot select
	// for fail here rather than silently downgrading.
	switch {
	case api == glctx.OpenGLES && pinned != nil && pinned.Major == 3:
		if !ver.AtLeast(1, 3) {
			return nil, glctx.ErrNoAvailablePixelFormat
		}
		out = append(out, eglRenderableType, eglOpenGLES3Bit, eglConformant, eglOpenGLES3Bit)
	case api == glctx.OpenGLES && pinned != nil && pinned.Major == 2:
		if !ver.AtLeast(1, 3) {
			return nil, glctx.ErrNoAvailablePixelFormat
		}
		out = append(out, eglRenderableType, eglOpenGLES2Bit, eglConformant, eglOpenGLES2Bit)
	case api == glctx.OpenGLES:
		if ver.AtLeast(1, 3) {
			out = append(out, eglRenderableType, eglOpenGLESBit, eglConformant, eglOpenGLESBit)
		}
	case api == glctx.OpenGL:
		if !ver.AtLeast(1, 3) {
			return nil, glctx.ErrNoAvailablePixelFormat
		}
		out = append(out, eglRenderableType, eglOpenGLBit, eglConformant, eglOpenGLBit)
	default:
		return nil, fmt.Errorf("egl: %s contexts: %w", api, glctx.ErrNotSupported)
	}

	if reqs.HardwareAccelerated != nil {
		out = append(out, eglConfigCaveat)
		if *reqs.HardwareAccelerated {
			out = append(out, eglNone)
		} else {
			out = append(out, eglSlowConfig)
		}
	}

	if reqs.ColorBits != nil {
		// Split the color bits across the three channels, biasing the
		// remainder toward green then blue.
		c := int32(*reqs.ColorBits)
		r, g, b := c/3, c/3, c/3
		if c%3 != 0 {
			g++
		}
		if c%3 == 2 {
			b++
		}
		out = append(out, eglRedSize, r, eglGreenSize, g, eglBlueSize, b)
	}
	if reqs.AlphaBits != nil {
		out = append(out, eglAlphaSize, int32(*reqs.AlphaBits))
	}
	if reqs.DepthBits != nil {
		out = append(out, eglDepthSize, int32(*reqs.DepthBits))
	}
	if reqs.StencilBits != nil {
		out = append(out, eglStencilSize, int32(*reqs.StencilBits))
	}

	// EGL has no selector attributes for these; fail fast instead of
	// handing back a configuration that ignores the requirement.
	if reqs.DoubleBuffer != nil && *reqs.DoubleBuffer {
		return nil, glctx.ErrNoAvailablePixelFormat
	}
	if reqs.Stereoscopy {
		return nil, glctx.ErrNoAvailablePixelFormat
	}
	if reqs.FloatColorBuffer {
		return nil, glctx.ErrNoAvailablePixelFormat
	}

	if reqs.Multisampling != nil {
		out = append(out, eglSamples, int32(*reqs.Multisampling))
	}

	if reqs.NativeVisualID != 0 {
		out = append(out, eglNativeVisualID, int32(reqs.NativeVisualID))
	}

	if reqs.ReleaseBehavior != glctx.ReleaseBehaviorFlush {
		// Changing the release behavior needs manual attribute support
		// EGL does not expose through the selector.
		return nil, fmt.Errorf("egl: release behavior: %w", glctx.ErrNotSupported)
	}

	out = append(out, eglNone)
	return out, nil
}

// pickConfig applies the tie-break callback, defaulting to the first
// candidate.
func pickConfig(candidates []Config, chooser glctx.ConfigChooser) (Config, error) {
	if chooser == nil {
		return candidates[0], nil
	}
	raw := make([]glctx.NativeConfig, len(candidates))
	for i, c := range candidates {
		raw[i] = glctx.NativeConfig(c)
	}
	chosen, err := chooser(raw)
	if err != nil {
		return noConfig, err
	}
	return Config(chosen), nil
}

// queryFormat reads the chosen configuration's concrete attribute
// values. The request is never trusted; only the driver's answers.
func queryFormat(be Backend, d Display, c Config) (glctx.PixelFormat, error) {
	attrib := func(name string, a int32) (int32, error) {
		v, ok := be.GetConfigAttrib(d, c, a)
		if !ok {
			return 0, &glctx.OSError{Call: "eglGetConfigAttrib(" + name + ")", Code: be.GetError()}
		}
		return v, nil
	}

	caveat, err := attrib("EGL_CONFIG_CAVEAT", eglConfigCaveat)
	if err != nil {
		return glctx.PixelFormat{}, err
	}
	red, err := attrib("EGL_RED_SIZE", eglRedSize)
	if err != nil {
		return glctx.PixelFormat{}, err
	}
	green, err := attrib("EGL_GREEN_SIZE", eglGreenSize)
	if err != nil {
		return glctx.PixelFormat{}, err
	}
	blue, err := attrib("EGL_BLUE_SIZE", eglBlueSize)
	if err != nil {
		return glctx.PixelFormat{}, err
	}
	alpha, err := attrib("EGL_ALPHA_SIZE", eglAlphaSize)
	if err != nil {
		return glctx.PixelFormat{}, err
	}
	depth, err := attrib("EGL_DEPTH_SIZE", eglDepthSize)
	if err != nil {
		return glctx.PixelFormat{}, err
	}
	stencil, err := attrib("EGL_STENCIL_SIZE", eglStencilSize)
	if err != nil {
		return glctx.PixelFormat{}, err
	}
	samples, err := attrib("EGL_SAMPLES", eglSamples)
	if err != nil {
		return glctx.PixelFormat{}, err
	}

	multisampling := int(samples)
	if multisampling == 1 {
		// A single sample per pixel is not multisampling.
		multisampling = 0
	}
	return glctx.PixelFormat{
		HardwareAccelerated: caveat != eglSlowConfig,
		ColorBits:           int(red + green + blue),
		AlphaBits:           int(alpha),
		DepthBits:           int(depth),
		StencilBits:         int(stencil),
		Stereoscopy:         false,
		DoubleBuffer:        true,
		Multisampling:       multisampling,
		// EGL_KHR_gl_colorspace applies at surface creation, not
		// config selection; selection cannot resolve it.
		Srgb: false,
	}, nil
}

// NativeVisualID returns the native visual id of a configuration, for
// platform code that must match the window's visual (X11).
func NativeVisualID(be Backend, d Display, c Config) (int, error) {
	v, ok := be.GetConfigAttrib(d, c, eglNativeVisualID)
	if !ok {
		return 0, &glctx.OSError{Call: "eglGetConfigAttrib(EGL_NATIVE_VISUAL_ID)", Code: be.GetError()}
	}
	return int(v), nil
}
