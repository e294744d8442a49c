// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package egl

import (
	"fmt"
	"strings"

	"github.com/gogpu/glctx"
)

// clientExtensions returns the display-less (client) extension list.
// Only available with EGL 1.5 or EGL_EXT_platform_base; older
// implementations fail the query and the list is empty.
func clientExtensions(be Backend) []string {
	s := be.QueryString(noDisplay, eglExtensions)
	if s == "" {
		return nil
	}
	return strings.Fields(s)
}

func hasExtension(exts []string, ext string) bool {
	for _, e := range exts {
		if e == ext {
			return true
		}
	}
	return false
}

// getNativeDisplay acquires the EGLDisplay for a platform-tagged
// native display. Platform extensions are used only when both the
// extension is advertised and the symbol actually loaded; some EGL
// implementations report EGL_EXT_platform_base yet miss the
// eglGetPlatformDisplay(EXT) symbol.
func getNativeDisplay(be Backend, nd glctx.NativeDisplay) (Display, error) {
	exts := clientExtensions(be)
	has := func(e string) bool { return hasExtension(exts, e) }
	khr := be.HasGetPlatformDisplay()
	ext := be.HasGetPlatformDisplayEXT()

	var d Display
	switch nd.Kind {
	case glctx.DisplayX11:
		switch {
		case has("EGL_KHR_platform_x11") && khr:
			d = be.GetPlatformDisplay(eglPlatformX11KHR, nd.Handle)
		case has("EGL_EXT_platform_x11") && ext:
			d = be.GetPlatformDisplayEXT(eglPlatformX11EXT, nd.Handle)
		default:
			d = be.GetDisplay(nd.Handle)
		}
	case glctx.DisplayWayland:
		switch {
		case has("EGL_KHR_platform_wayland") && khr:
			d = be.GetPlatformDisplay(eglPlatformWaylandKHR, nd.Handle)
		case has("EGL_EXT_platform_wayland") && ext:
			d = be.GetPlatformDisplayEXT(eglPlatformWaylandEXT, nd.Handle)
		default:
			d = be.GetDisplay(nd.Handle)
		}
	case glctx.DisplayGbm:
		switch {
		case has("EGL_KHR_platform_gbm") && khr:
			d = be.GetPlatformDisplay(eglPlatformGbmKHR, nd.Handle)
		case has("EGL_MESA_platform_gbm") && ext:
			d = be.GetPlatformDisplayEXT(eglPlatformGbmMESA, nd.Handle)
		default:
			d = be.GetDisplay(nd.Handle)
		}
	case glctx.DisplayAndroid:
		if has("EGL_KHR_platform_android") && khr {
			d = be.GetPlatformDisplay(eglPlatformAndroidKHR, 0)
		} else {
			d = be.GetDisplay(0)
		}
	case glctx.DisplayDevice:
		if has("EGL_EXT_platform_device") && khr {
			d = be.GetPlatformDisplay(eglPlatformDeviceEXT, nd.Handle)
		} else {
			d = be.GetDisplay(nd.Handle)
		}
	default:
		d = be.GetDisplay(nd.Handle)
	}

	if d == noDisplay {
		return noDisplay, fmt.Errorf("egl: could not create EGL display object: %w",
			&glctx.OSError{Call: "eglGetDisplay", Code: be.GetError()})
	}
	return d, nil
}

// initialize runs eglInitialize and returns the negotiated EGL
// version. Initializing an already-initialized display just returns
// the version again.
func initialize(be Backend, d Display) (Version, error) {
	v, ok := be.Initialize(d)
	if !ok {
		return Version{}, &glctx.OSError{Call: "eglInitialize", Code: be.GetError()}
	}
	return v, nil
}

// displayExtensions returns the per-display extension list. The list
// differs from the client extensions obtained before initialization.
func displayExtensions(be Backend, d Display, v Version) []string {
	if !v.AtLeast(1, 2) {
		return nil
	}
	return strings.Fields(be.QueryString(d, eglExtensions))
}
