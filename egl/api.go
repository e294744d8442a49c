// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package egl

// Opaque EGL handles. All of them are borrowed references into
// driver-managed state.
type (
	// Display is an EGLDisplay.
	Display uintptr
	// Config is an EGLConfig.
	Config uintptr
	// Surface is an EGLSurface.
	Surface uintptr
	// Handle is an EGLContext.
	Handle uintptr
)

// Version is the EGL version reported by eglInitialize.
type Version struct {
	Major int
	Minor int
}

// AtLeast reports whether v is at least major.minor.
func (v Version) AtLeast(major, minor int) bool {
	return v.Major > major || (v.Major == major && v.Minor >= minor)
}

// Backend is the native EGL entry-point surface this package calls
// through. The production implementation is the lazily-loaded FFI
// binding; tests substitute their own.
//
// Boolean results mirror EGL's EGLBoolean returns: false means the
// call failed and GetError carries the reason. Handle-returning calls
// report failure with the zero handle.
//
// There is deliberately no Terminate: displays are never released (see
// the package documentation).
type Backend interface {
	// GetDisplay wraps eglGetDisplay. A zero native handle requests
	// EGL_DEFAULT_DISPLAY.
	GetDisplay(native uintptr) Display

	// GetPlatformDisplay wraps eglGetPlatformDisplay (EGL 1.5 /
	// EGL_EXT_platform_base). HasGetPlatformDisplay reports whether the
	// symbol was actually loaded; some implementations advertise the
	// extension while missing the symbol.
	GetPlatformDisplay(platform uint32, native uintptr) Display
	HasGetPlatformDisplay() bool

	// GetPlatformDisplayEXT wraps eglGetPlatformDisplayEXT.
	GetPlatformDisplayEXT(platform uint32, native uintptr) Display
	HasGetPlatformDisplayEXT() bool

	// Initialize wraps eglInitialize and reports the EGL version.
	Initialize(d Display) (Version, bool)

	// QueryString wraps eglQueryString; empty on failure. Querying
	// extensions with noDisplay returns the client extensions (EGL 1.5
	// or EGL_EXT_platform_base only).
	QueryString(d Display, name int32) string

	// BindAPI wraps eglBindAPI.
	BindAPI(api uint32) bool

	// ChooseConfigCount wraps eglChooseConfig with a nil config array,
	// returning the number of matching configurations.
	ChooseConfigCount(d Display, attribs []int32) (int, bool)

	// ChooseConfig wraps eglChooseConfig, fetching up to n matching
	// configurations.
	ChooseConfig(d Display, attribs []int32, n int) ([]Config, bool)

	// GetConfigAttrib wraps eglGetConfigAttrib.
	GetConfigAttrib(d Display, c Config, attrib int32) (int32, bool)

	// CreateContext wraps eglCreateContext.
	CreateContext(d Display, c Config, share Handle, attribs []int32) Handle

	// DestroyContext wraps eglDestroyContext.
	DestroyContext(d Display, h Handle) bool

	// CreateWindowSurface wraps eglCreateWindowSurface.
	CreateWindowSurface(d Display, c Config, win uintptr, attribs []int32) Surface

	// CreatePbufferSurface wraps eglCreatePbufferSurface.
	CreatePbufferSurface(d Display, c Config, attribs []int32) Surface

	// DestroySurface wraps eglDestroySurface.
	DestroySurface(d Display, s Surface) bool

	// MakeCurrent wraps eglMakeCurrent.
	MakeCurrent(d Display, draw, read Surface, h Handle) bool

	// GetCurrentContext wraps eglGetCurrentContext.
	GetCurrentContext() Handle

	// GetCurrentSurface wraps eglGetCurrentSurface (eglDraw or eglRead).
	GetCurrentSurface(readDraw int32) Surface

	// GetCurrentDisplay wraps eglGetCurrentDisplay.
	GetCurrentDisplay() Display

	// SwapBuffers wraps eglSwapBuffers.
	SwapBuffers(d Display, s Surface) bool

	// SwapBuffersWithDamage wraps eglSwapBuffersWithDamageKHR; rects is
	// x,y,width,height quadruples. HasSwapBuffersWithDamage reports
	// whether the entry point was loaded.
	SwapBuffersWithDamage(d Display, s Surface, rects []int32) bool
	HasSwapBuffersWithDamage() bool

	// SwapInterval wraps eglSwapInterval.
	SwapInterval(d Display, interval int32) bool

	// QuerySurface wraps eglQuerySurface.
	QuerySurface(d Display, s Surface, attrib int32) (int32, bool)

	// GetProcAddress wraps eglGetProcAddress.
	GetProcAddress(name string) uintptr

	// WaitClient wraps eglWaitClient, blocking until the context's
	// pending native rendering is complete.
	WaitClient() bool

	// ReleaseThread wraps eglReleaseThread.
	ReleaseThread() bool

	// GetError wraps eglGetError.
	GetError() int32
}
