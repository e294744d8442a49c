// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build cgo && (linux || freebsd || openbsd)

package egl

/*
#cgo linux LDFLAGS: -lEGL
#cgo freebsd openbsd CFLAGS: -I/usr/local/include
#cgo freebsd openbsd LDFLAGS: -L/usr/local/lib -lEGL

#include <stdint.h>
#include <stdlib.h>
#include <EGL/egl.h>

// EGL handles and native handle types are pointer-sized but differ per
// platform; the shims round-trip them all through uintptr_t so the Go
// side never converts an integer back into a pointer.

static uintptr_t glctx_get_display(uintptr_t native) {
	return (uintptr_t)eglGetDisplay((EGLNativeDisplayType)native);
}

static EGLBoolean glctx_initialize(uintptr_t dpy, EGLint *major, EGLint *minor) {
	return eglInitialize((EGLDisplay)dpy, major, minor);
}

static const char *glctx_query_string(uintptr_t dpy, EGLint name) {
	return eglQueryString((EGLDisplay)dpy, name);
}

static EGLBoolean glctx_choose_config(uintptr_t dpy, const EGLint *attribs, uintptr_t *configs, EGLint size, EGLint *count) {
	return eglChooseConfig((EGLDisplay)dpy, attribs, (EGLConfig *)configs, size, count);
}

static EGLBoolean glctx_get_config_attrib(uintptr_t dpy, uintptr_t cfg, EGLint attrib, EGLint *val) {
	return eglGetConfigAttrib((EGLDisplay)dpy, (EGLConfig)cfg, attrib, val);
}

static uintptr_t glctx_create_context(uintptr_t dpy, uintptr_t cfg, uintptr_t share, const EGLint *attribs) {
	return (uintptr_t)eglCreateContext((EGLDisplay)dpy, (EGLConfig)cfg, (EGLContext)share, attribs);
}

static EGLBoolean glctx_destroy_context(uintptr_t dpy, uintptr_t ctx) {
	return eglDestroyContext((EGLDisplay)dpy, (EGLContext)ctx);
}

static uintptr_t glctx_create_window_surface(uintptr_t dpy, uintptr_t cfg, uintptr_t win, const EGLint *attribs) {
	return (uintptr_t)eglCreateWindowSurface((EGLDisplay)dpy, (EGLConfig)cfg, (EGLNativeWindowType)win, attribs);
}

static uintptr_t glctx_create_pbuffer_surface(uintptr_t dpy, uintptr_t cfg, const EGLint *attribs) {
	return (uintptr_t)eglCreatePbufferSurface((EGLDisplay)dpy, (EGLConfig)cfg, attribs);
}

static EGLBoolean glctx_destroy_surface(uintptr_t dpy, uintptr_t surf) {
	return eglDestroySurface((EGLDisplay)dpy, (EGLSurface)surf);
}

static EGLBoolean glctx_make_current(uintptr_t dpy, uintptr_t draw, uintptr_t read, uintptr_t ctx) {
	return eglMakeCurrent((EGLDisplay)dpy, (EGLSurface)draw, (EGLSurface)read, (EGLContext)ctx);
}

static uintptr_t glctx_get_current_context(void) {
	return (uintptr_t)eglGetCurrentContext();
}

static uintptr_t glctx_get_current_surface(EGLint readdraw) {
	return (uintptr_t)eglGetCurrentSurface(readdraw);
}

static uintptr_t glctx_get_current_display(void) {
	return (uintptr_t)eglGetCurrentDisplay();
}

static EGLBoolean glctx_swap_buffers(uintptr_t dpy, uintptr_t surf) {
	return eglSwapBuffers((EGLDisplay)dpy, (EGLSurface)surf);
}

static EGLBoolean glctx_swap_interval(uintptr_t dpy, EGLint interval) {
	return eglSwapInterval((EGLDisplay)dpy, interval);
}

static EGLBoolean glctx_query_surface(uintptr_t dpy, uintptr_t surf, EGLint attrib, EGLint *val) {
	return eglQuerySurface((EGLDisplay)dpy, (EGLSurface)surf, attrib, val);
}

// Extension entry points only exist behind eglGetProcAddress; these
// call through the resolved addresses.
static uintptr_t glctx_get_platform_display(void *fp, unsigned int platform, uintptr_t native) {
	typedef EGLDisplay (*PFN)(EGLenum, void *, const intptr_t *);
	return (uintptr_t)((PFN)fp)((EGLenum)platform, (void *)native, NULL);
}

static uintptr_t glctx_get_platform_display_ext(void *fp, unsigned int platform, uintptr_t native) {
	typedef EGLDisplay (*PFN)(EGLenum, void *, const EGLint *);
	return (uintptr_t)((PFN)fp)((EGLenum)platform, (void *)native, NULL);
}

static EGLBoolean glctx_swap_buffers_with_damage(void *fp, uintptr_t dpy, uintptr_t surf, EGLint *rects, EGLint n) {
	typedef EGLBoolean (*PFN)(EGLDisplay, EGLSurface, EGLint *, EGLint);
	return ((PFN)fp)((EGLDisplay)dpy, (EGLSurface)surf, rects, n);
}
*/
import "C"

import (
	"unsafe"
)

// unixBackend binds EGL at link time; libEGL must be present at build
// and run time. Extension entry points are resolved once on load.
type unixBackend struct {
	platformDisplay       unsafe.Pointer
	platformDisplayEXT    unsafe.Pointer
	swapBuffersWithDamage unsafe.Pointer
}

func loadBackend() (Backend, error) {
	be := &unixBackend{
		platformDisplay:    procAddress("eglGetPlatformDisplay"),
		platformDisplayEXT: procAddress("eglGetPlatformDisplayEXT"),
	}
	be.swapBuffersWithDamage = procAddress("eglSwapBuffersWithDamageKHR")
	if be.swapBuffersWithDamage == nil {
		be.swapBuffersWithDamage = procAddress("eglSwapBuffersWithDamageEXT")
	}
	return be, nil
}

func procAddress(name string) unsafe.Pointer {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return unsafe.Pointer(C.eglGetProcAddress(cname))
}

func attribList(a []int32) *C.EGLint {
	if len(a) == 0 {
		return nil
	}
	return (*C.EGLint)(unsafe.Pointer(&a[0]))
}

func (b *unixBackend) GetDisplay(native uintptr) Display {
	return Display(C.glctx_get_display(C.uintptr_t(native)))
}

func (b *unixBackend) GetPlatformDisplay(platform uint32, native uintptr) Display {
	return Display(C.glctx_get_platform_display(b.platformDisplay, C.uint(platform), C.uintptr_t(native)))
}

func (b *unixBackend) HasGetPlatformDisplay() bool { return b.platformDisplay != nil }

func (b *unixBackend) GetPlatformDisplayEXT(platform uint32, native uintptr) Display {
	return Display(C.glctx_get_platform_display_ext(b.platformDisplayEXT, C.uint(platform), C.uintptr_t(native)))
}

func (b *unixBackend) HasGetPlatformDisplayEXT() bool { return b.platformDisplayEXT != nil }

func (b *unixBackend) Initialize(d Display) (Version, bool) {
	var major, minor C.EGLint
	ok := C.glctx_initialize(C.uintptr_t(d), &major, &minor)
	return Version{Major: int(major), Minor: int(minor)}, ok == C.EGL_TRUE
}

func (b *unixBackend) QueryString(d Display, name int32) string {
	s := C.glctx_query_string(C.uintptr_t(d), C.EGLint(name))
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

func (b *unixBackend) BindAPI(api uint32) bool {
	return C.eglBindAPI(C.EGLenum(api)) == C.EGL_TRUE
}

func (b *unixBackend) ChooseConfigCount(d Display, attribs []int32) (int, bool) {
	var n C.EGLint
	ok := C.glctx_choose_config(C.uintptr_t(d), attribList(attribs), nil, 0, &n)
	return int(n), ok == C.EGL_TRUE
}

func (b *unixBackend) ChooseConfig(d Display, attribs []int32, n int) ([]Config, bool) {
	if n <= 0 {
		return nil, true
	}
	raw := make([]C.uintptr_t, n)
	var got C.EGLint
	ok := C.glctx_choose_config(C.uintptr_t(d), attribList(attribs), &raw[0], C.EGLint(n), &got)
	if ok != C.EGL_TRUE {
		return nil, false
	}
	configs := make([]Config, got)
	for i := range configs {
		configs[i] = Config(raw[i])
	}
	return configs, true
}

func (b *unixBackend) GetConfigAttrib(d Display, c Config, attrib int32) (int32, bool) {
	var val C.EGLint
	ok := C.glctx_get_config_attrib(C.uintptr_t(d), C.uintptr_t(c), C.EGLint(attrib), &val)
	return int32(val), ok == C.EGL_TRUE
}

func (b *unixBackend) CreateContext(d Display, c Config, share Handle, attribs []int32) Handle {
	return Handle(C.glctx_create_context(C.uintptr_t(d), C.uintptr_t(c), C.uintptr_t(share), attribList(attribs)))
}

func (b *unixBackend) DestroyContext(d Display, h Handle) bool {
	return C.glctx_destroy_context(C.uintptr_t(d), C.uintptr_t(h)) == C.EGL_TRUE
}

func (b *unixBackend) CreateWindowSurface(d Display, c Config, win uintptr, attribs []int32) Surface {
	return Surface(C.glctx_create_window_surface(C.uintptr_t(d), C.uintptr_t(c), C.uintptr_t(win), attribList(attribs)))
}

func (b *unixBackend) CreatePbufferSurface(d Display, c Config, attribs []int32) Surface {
	return Surface(C.glctx_create_pbuffer_surface(C.uintptr_t(d), C.uintptr_t(c), attribList(attribs)))
}

func (b *unixBackend) DestroySurface(d Display, s Surface) bool {
	return C.glctx_destroy_surface(C.uintptr_t(d), C.uintptr_t(s)) == C.EGL_TRUE
}

func (b *unixBackend) MakeCurrent(d Display, draw, read Surface, h Handle) bool {
	return C.glctx_make_current(C.uintptr_t(d), C.uintptr_t(draw), C.uintptr_t(read), C.uintptr_t(h)) == C.EGL_TRUE
}

func (b *unixBackend) GetCurrentContext() Handle {
	return Handle(C.glctx_get_current_context())
}

func (b *unixBackend) GetCurrentSurface(readDraw int32) Surface {
	return Surface(C.glctx_get_current_surface(C.EGLint(readDraw)))
}

func (b *unixBackend) GetCurrentDisplay() Display {
	return Display(C.glctx_get_current_display())
}

func (b *unixBackend) SwapBuffers(d Display, s Surface) bool {
	return C.glctx_swap_buffers(C.uintptr_t(d), C.uintptr_t(s)) == C.EGL_TRUE
}

func (b *unixBackend) SwapBuffersWithDamage(d Display, s Surface, rects []int32) bool {
	var p *C.EGLint
	if len(rects) > 0 {
		p = (*C.EGLint)(unsafe.Pointer(&rects[0]))
	}
	ok := C.glctx_swap_buffers_with_damage(b.swapBuffersWithDamage,
		C.uintptr_t(d), C.uintptr_t(s), p, C.EGLint(len(rects)/4))
	return ok == C.EGL_TRUE
}

func (b *unixBackend) HasSwapBuffersWithDamage() bool { return b.swapBuffersWithDamage != nil }

func (b *unixBackend) SwapInterval(d Display, interval int32) bool {
	return C.glctx_swap_interval(C.uintptr_t(d), C.EGLint(interval)) == C.EGL_TRUE
}

func (b *unixBackend) QuerySurface(d Display, s Surface, attrib int32) (int32, bool) {
	var val C.EGLint
	ok := C.glctx_query_surface(C.uintptr_t(d), C.uintptr_t(s), C.EGLint(attrib), &val)
	return int32(val), ok == C.EGL_TRUE
}

func (b *unixBackend) GetProcAddress(name string) uintptr {
	return uintptr(procAddress(name))
}

func (b *unixBackend) WaitClient() bool {
	return C.eglWaitClient() == C.EGL_TRUE
}

func (b *unixBackend) ReleaseThread() bool {
	return C.eglReleaseThread() == C.EGL_TRUE
}

func (b *unixBackend) GetError() int32 {
	return int32(C.eglGetError())
}
