// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package egl

import (
	"fmt"
	"runtime"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/gogpu/glctx"
)

// eglLibs are the library names tried in order. ATI cards ship EGL
// inside their GL driver DLL.
var eglLibs = []string{"libEGL.dll", "atioglxx.dll"}

// winBackend calls EGL through a DLL loaded at runtime. Core entry
// points come from the export table; extension entry points only exist
// behind eglGetProcAddress and are kept as raw addresses.
type winBackend struct {
	dll windows.DLL

	chooseConfig         *windows.Proc
	createContext        *windows.Proc
	createWindowSurface  *windows.Proc
	createPbufferSurface *windows.Proc
	destroyContext       *windows.Proc
	destroySurface       *windows.Proc
	getConfigAttrib      *windows.Proc
	getCurrentContext    *windows.Proc
	getCurrentDisplay    *windows.Proc
	getCurrentSurface    *windows.Proc
	getDisplay           *windows.Proc
	getError             *windows.Proc
	getProcAddress       *windows.Proc
	initialize           *windows.Proc
	makeCurrent          *windows.Proc
	bindAPI              *windows.Proc
	queryString          *windows.Proc
	querySurface         *windows.Proc
	releaseThread        *windows.Proc
	swapBuffers          *windows.Proc
	swapInterval         *windows.Proc
	waitClient           *windows.Proc

	// Extension entry points; zero when unresolved.
	platformDisplay       uintptr
	platformDisplayEXT    uintptr
	swapBuffersWithDamage uintptr
}

func loadBackend() (Backend, error) {
	var firstErr error
	for _, name := range eglLibs {
		be, err := loadLibrary(name)
		if err == nil {
			glctx.Logger().Debug("egl: loaded", "library", name)
			return be, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

func loadLibrary(name string) (*winBackend, error) {
	handle, err := windows.LoadLibraryEx(name, 0, windows.LOAD_LIBRARY_SEARCH_DEFAULT_DIRS)
	if err != nil {
		return nil, fmt.Errorf("egl: failed to load %s: %w", name, err)
	}
	be := &winBackend{dll: windows.DLL{Handle: handle, Name: name}}

	procs := map[string]**windows.Proc{
		"eglChooseConfig":         &be.chooseConfig,
		"eglCreateContext":        &be.createContext,
		"eglCreateWindowSurface":  &be.createWindowSurface,
		"eglCreatePbufferSurface": &be.createPbufferSurface,
		"eglDestroyContext":       &be.destroyContext,
		"eglDestroySurface":       &be.destroySurface,
		"eglGetConfigAttrib":      &be.getConfigAttrib,
		"eglGetCurrentContext":    &be.getCurrentContext,
		"eglGetCurrentDisplay":    &be.getCurrentDisplay,
		"eglGetCurrentSurface":    &be.getCurrentSurface,
		"eglGetDisplay":           &be.getDisplay,
		"eglGetError":             &be.getError,
		"eglGetProcAddress":       &be.getProcAddress,
		"eglInitialize":           &be.initialize,
		"eglMakeCurrent":          &be.makeCurrent,
		"eglBindAPI":              &be.bindAPI,
		"eglQueryString":          &be.queryString,
		"eglQuerySurface":         &be.querySurface,
		"eglReleaseThread":        &be.releaseThread,
		"eglSwapBuffers":          &be.swapBuffers,
		"eglSwapInterval":         &be.swapInterval,
		"eglWaitClient":           &be.waitClient,
	}
	for sym, proc := range procs {
		p, err := be.dll.FindProc(sym)
		if err != nil {
			return nil, fmt.Errorf("egl: failed to locate %s in %s: %w", sym, name, err)
		}
		*proc = p
	}

	// Extension entry points never appear in the export table.
	be.platformDisplay = be.GetProcAddress("eglGetPlatformDisplay")
	be.platformDisplayEXT = be.GetProcAddress("eglGetPlatformDisplayEXT")
	be.swapBuffersWithDamage = be.GetProcAddress("eglSwapBuffersWithDamageKHR")
	if be.swapBuffersWithDamage == 0 {
		be.swapBuffersWithDamage = be.GetProcAddress("eglSwapBuffersWithDamageEXT")
	}
	return be, nil
}

// issue34474KeepAlive calls runtime.KeepAlive as a workaround for
// golang.org/issue/34474.
func issue34474KeepAlive(v any) {
	runtime.KeepAlive(v)
}

func attribPtr(attribs []int32) uintptr {
	if len(attribs) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&attribs[0]))
}

func (b *winBackend) GetDisplay(native uintptr) Display {
	d, _, _ := b.getDisplay.Call(native)
	return Display(d)
}

func (b *winBackend) GetPlatformDisplay(platform uint32, native uintptr) Display {
	d, _, _ := syscall.SyscallN(b.platformDisplay, uintptr(platform), native, 0)
	return Display(d)
}

func (b *winBackend) HasGetPlatformDisplay() bool { return b.platformDisplay != 0 }

func (b *winBackend) GetPlatformDisplayEXT(platform uint32, native uintptr) Display {
	d, _, _ := syscall.SyscallN(b.platformDisplayEXT, uintptr(platform), native, 0)
	return Display(d)
}

func (b *winBackend) HasGetPlatformDisplayEXT() bool { return b.platformDisplayEXT != 0 }

func (b *winBackend) Initialize(d Display) (Version, bool) {
	var major, minor int32
	r, _, _ := b.initialize.Call(uintptr(d),
		uintptr(unsafe.Pointer(&major)), uintptr(unsafe.Pointer(&minor)))
	return Version{Major: int(major), Minor: int(minor)}, r != 0
}

func (b *winBackend) QueryString(d Display, name int32) string {
	r, _, _ := b.queryString.Call(uintptr(d), uintptr(name))
	if r == 0 {
		return ""
	}
	return windows.BytePtrToString((*byte)(unsafe.Pointer(r)))
}

func (b *winBackend) BindAPI(api uint32) bool {
	r, _, _ := b.bindAPI.Call(uintptr(api))
	return r != 0
}

func (b *winBackend) ChooseConfigCount(d Display, attribs []int32) (int, bool) {
	var n int32
	a := attribPtr(attribs)
	r, _, _ := b.chooseConfig.Call(uintptr(d), a, 0, 0, uintptr(unsafe.Pointer(&n)))
	issue34474KeepAlive(attribs)
	return int(n), r != 0
}

func (b *winBackend) ChooseConfig(d Display, attribs []int32, n int) ([]Config, bool) {
	if n <= 0 {
		return nil, true
	}
	configs := make([]Config, n)
	var got int32
	a := attribPtr(attribs)
	r, _, _ := b.chooseConfig.Call(uintptr(d), a,
		uintptr(unsafe.Pointer(&configs[0])), uintptr(n), uintptr(unsafe.Pointer(&got)))
	issue34474KeepAlive(attribs)
	if r == 0 {
		return nil, false
	}
	return configs[:got], true
}

func (b *winBackend) GetConfigAttrib(d Display, c Config, attrib int32) (int32, bool) {
	var val int32
	r, _, _ := b.getConfigAttrib.Call(uintptr(d), uintptr(c), uintptr(attrib),
		uintptr(unsafe.Pointer(&val)))
	return val, r != 0
}

func (b *winBackend) CreateContext(d Display, c Config, share Handle, attribs []int32) Handle {
	a := attribPtr(attribs)
	h, _, _ := b.createContext.Call(uintptr(d), uintptr(c), uintptr(share), a)
	issue34474KeepAlive(attribs)
	return Handle(h)
}

func (b *winBackend) DestroyContext(d Display, h Handle) bool {
	r, _, _ := b.destroyContext.Call(uintptr(d), uintptr(h))
	return r != 0
}

func (b *winBackend) CreateWindowSurface(d Display, c Config, win uintptr, attribs []int32) Surface {
	a := attribPtr(attribs)
	s, _, _ := b.createWindowSurface.Call(uintptr(d), uintptr(c), win, a)
	issue34474KeepAlive(attribs)
	return Surface(s)
}

func (b *winBackend) CreatePbufferSurface(d Display, c Config, attribs []int32) Surface {
	a := attribPtr(attribs)
	s, _, _ := b.createPbufferSurface.Call(uintptr(d), uintptr(c), a)
	issue34474KeepAlive(attribs)
	return Surface(s)
}

func (b *winBackend) DestroySurface(d Display, s Surface) bool {
	r, _, _ := b.destroySurface.Call(uintptr(d), uintptr(s))
	return r != 0
}

func (b *winBackend) MakeCurrent(d Display, draw, read Surface, h Handle) bool {
	r, _, _ := b.makeCurrent.Call(uintptr(d), uintptr(draw), uintptr(read), uintptr(h))
	return r != 0
}

func (b *winBackend) GetCurrentContext() Handle {
	h, _, _ := b.getCurrentContext.Call()
	return Handle(h)
}

func (b *winBackend) GetCurrentSurface(readDraw int32) Surface {
	s, _, _ := b.getCurrentSurface.Call(uintptr(readDraw))
	return Surface(s)
}

func (b *winBackend) GetCurrentDisplay() Display {
	d, _, _ := b.getCurrentDisplay.Call()
	return Display(d)
}

func (b *winBackend) SwapBuffers(d Display, s Surface) bool {
	r, _, _ := b.swapBuffers.Call(uintptr(d), uintptr(s))
	return r != 0
}

func (b *winBackend) SwapBuffersWithDamage(d Display, s Surface, rects []int32) bool {
	var p uintptr
	if len(rects) > 0 {
		p = uintptr(unsafe.Pointer(&rects[0]))
	}
	r, _, _ := syscall.SyscallN(b.swapBuffersWithDamage,
		uintptr(d), uintptr(s), p, uintptr(len(rects)/4))
	issue34474KeepAlive(rects)
	return r != 0
}

func (b *winBackend) HasSwapBuffersWithDamage() bool { return b.swapBuffersWithDamage != 0 }

func (b *winBackend) SwapInterval(d Display, interval int32) bool {
	r, _, _ := b.swapInterval.Call(uintptr(d), uintptr(interval))
	return r != 0
}

func (b *winBackend) QuerySurface(d Display, s Surface, attrib int32) (int32, bool) {
	var val int32
	r, _, _ := b.querySurface.Call(uintptr(d), uintptr(s), uintptr(attrib),
		uintptr(unsafe.Pointer(&val)))
	return val, r != 0
}

func (b *winBackend) GetProcAddress(name string) uintptr {
	cname, err := windows.BytePtrFromString(name)
	if err != nil {
		return 0
	}
	addr, _, _ := b.getProcAddress.Call(uintptr(unsafe.Pointer(cname)))
	issue34474KeepAlive(cname)
	return addr
}

func (b *winBackend) WaitClient() bool {
	r, _, _ := b.waitClient.Call()
	return r != 0
}

func (b *winBackend) ReleaseThread() bool {
	r, _, _ := b.releaseThread.Call()
	return r != 0
}

func (b *winBackend) GetError() int32 {
	e, _, _ := b.getError.Call()
	return int32(e)
}
