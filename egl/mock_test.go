// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package egl

import (
	"fmt"
	"strings"
)

// mockConfig is one configuration the mock backend advertises.
type mockConfig struct {
	id    Config
	attrs map[int32]int32
}

// defaultMockConfig is a plausible 24-bit RGBA configuration with a
// 0..1 swap interval range.
func defaultMockConfig(id Config) mockConfig {
	return mockConfig{
		id: id,
		attrs: map[int32]int32{
			eglConfigCaveat:    eglNone,
			eglRedSize:         8,
			eglGreenSize:       8,
			eglBlueSize:        8,
			eglAlphaSize:       8,
			eglDepthSize:       24,
			eglStencilSize:     8,
			eglSamples:         0,
			eglMinSwapInterval: 0,
			eglMaxSwapInterval: 1,
			eglNativeVisualID:  0x21,
		},
	}
}

// mockBackend is an in-memory Backend that records every call. Tests
// configure the advertised version, extensions and configurations, and
// make individual entry points fail.
type mockBackend struct {
	version     Version
	clientExts  string
	displayExts string
	configs     []mockConfig

	displayFail    bool
	bindFail       map[uint32]bool
	chooseFail     bool
	attribFail     map[int32]bool
	rejectVersions map[[2]int32]int32 // major,minor -> error code
	createErr      int32              // reject every creation with this code
	makeCurrentErr int32              // fail MakeCurrent with this code
	surfaceFail    bool
	swapFail       int32
	hasDamage      bool
	bufferAge      int32

	lastError int32

	calls         []string
	chooseAttribs [][]int32
	ctxAttribs    [][]int32

	curDisplay Display
	curDraw    Surface
	curRead    Surface
	curContext Handle

	nextContext Handle
	nextSurface Surface

	destroyedContexts []Handle
	destroyedSurfaces []Surface
}

func newMockBackend() *mockBackend {
	return &mockBackend{
		version:     Version{Major: 1, Minor: 5},
		configs:     []mockConfig{defaultMockConfig(0x10)},
		nextContext: 0x100,
		nextSurface: 0x200,
	}
}

func (m *mockBackend) record(call string) {
	m.calls = append(m.calls, call)
}

// called reports whether any recorded call starts with prefix.
func (m *mockBackend) called(prefix string) bool {
	for _, c := range m.calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

func (m *mockBackend) fail(code int32) bool {
	m.lastError = code
	return false
}

func (m *mockBackend) GetDisplay(native uintptr) Display {
	m.record(fmt.Sprintf("GetDisplay(%#x)", native))
	if m.displayFail {
		m.lastError = eglBadMatch
		return noDisplay
	}
	return 0x1
}

func (m *mockBackend) GetPlatformDisplay(platform uint32, native uintptr) Display {
	m.record(fmt.Sprintf("GetPlatformDisplay(%#x, %#x)", platform, native))
	if m.displayFail {
		m.lastError = eglBadMatch
		return noDisplay
	}
	return 0x1
}

func (m *mockBackend) HasGetPlatformDisplay() bool { return m.version.AtLeast(1, 5) }

func (m *mockBackend) GetPlatformDisplayEXT(platform uint32, native uintptr) Display {
	m.record(fmt.Sprintf("GetPlatformDisplayEXT(%#x, %#x)", platform, native))
	return 0x1
}

func (m *mockBackend) HasGetPlatformDisplayEXT() bool { return true }

func (m *mockBackend) Initialize(d Display) (Version, bool) {
	m.record("Initialize")
	return m.version, true
}

func (m *mockBackend) QueryString(d Display, name int32) string {
	if d == noDisplay {
		return m.clientExts
	}
	return m.displayExts
}

func (m *mockBackend) BindAPI(api uint32) bool {
	m.record(fmt.Sprintf("BindAPI(%#x)", api))
	if m.bindFail[api] {
		return m.fail(eglBadMatch)
	}
	return true
}

func (m *mockBackend) ChooseConfigCount(d Display, attribs []int32) (int, bool) {
	m.record("ChooseConfigCount")
	m.chooseAttribs = append(m.chooseAttribs, attribs)
	if m.chooseFail {
		return 0, m.fail(eglBadAttribute)
	}
	return len(m.configs), true
}

func (m *mockBackend) ChooseConfig(d Display, attribs []int32, n int) ([]Config, bool) {
	m.record("ChooseConfig")
	if m.chooseFail {
		return nil, m.fail(eglBadAttribute)
	}
	out := make([]Config, 0, n)
	for i := 0; i < n && i < len(m.configs); i++ {
		out = append(out, m.configs[i].id)
	}
	return out, true
}

func (m *mockBackend) GetConfigAttrib(d Display, c Config, attrib int32) (int32, bool) {
	if m.attribFail[attrib] {
		return 0, m.fail(eglBadAttribute)
	}
	for _, cfg := range m.configs {
		if cfg.id == c {
			return cfg.attrs[attrib], true
		}
	}
	return 0, m.fail(eglBadAttribute)
}

func (m *mockBackend) CreateContext(d Display, c Config, share Handle, attribs []int32) Handle {
	m.record("CreateContext")
	m.ctxAttribs = append(m.ctxAttribs, attribs)
	if m.createErr != 0 {
		m.lastError = m.createErr
		return noContext
	}
	if code, ok := m.rejectVersions[requestedVersion(attribs)]; ok {
		m.lastError = code
		return noContext
	}
	m.nextContext++
	return m.nextContext
}

func (m *mockBackend) DestroyContext(d Display, h Handle) bool {
	m.record("DestroyContext")
	m.destroyedContexts = append(m.destroyedContexts, h)
	return true
}

func (m *mockBackend) CreateWindowSurface(d Display, c Config, win uintptr, attribs []int32) Surface {
	m.record("CreateWindowSurface")
	if m.surfaceFail {
		m.lastError = eglBadMatch
		return noSurface
	}
	m.nextSurface++
	return m.nextSurface
}

func (m *mockBackend) CreatePbufferSurface(d Display, c Config, attribs []int32) Surface {
	m.record("CreatePbufferSurface")
	if m.surfaceFail {
		m.lastError = eglBadMatch
		return noSurface
	}
	m.nextSurface++
	return m.nextSurface
}

func (m *mockBackend) DestroySurface(d Display, s Surface) bool {
	m.record("DestroySurface")
	m.destroyedSurfaces = append(m.destroyedSurfaces, s)
	return true
}

func (m *mockBackend) MakeCurrent(d Display, draw, read Surface, h Handle) bool {
	m.record(fmt.Sprintf("MakeCurrent(%#x, %#x, %#x)", draw, read, h))
	if m.makeCurrentErr != 0 {
		return m.fail(m.makeCurrentErr)
	}
	m.curDisplay, m.curDraw, m.curRead, m.curContext = d, draw, read, h
	return true
}

func (m *mockBackend) GetCurrentContext() Handle { return m.curContext }

func (m *mockBackend) GetCurrentSurface(readDraw int32) Surface {
	if readDraw == eglRead {
		return m.curRead
	}
	return m.curDraw
}

func (m *mockBackend) GetCurrentDisplay() Display { return m.curDisplay }

func (m *mockBackend) SwapBuffers(d Display, s Surface) bool {
	m.record("SwapBuffers")
	if m.swapFail != 0 {
		return m.fail(m.swapFail)
	}
	return true
}

func (m *mockBackend) SwapBuffersWithDamage(d Display, s Surface, rects []int32) bool {
	m.record(fmt.Sprintf("SwapBuffersWithDamage(%v)", rects))
	if m.swapFail != 0 {
		return m.fail(m.swapFail)
	}
	return true
}

func (m *mockBackend) HasSwapBuffersWithDamage() bool { return m.hasDamage }

func (m *mockBackend) SwapInterval(d Display, interval int32) bool {
	m.record(fmt.Sprintf("SwapInterval(%d)", interval))
	return true
}

func (m *mockBackend) QuerySurface(d Display, s Surface, attrib int32) (int32, bool) {
	m.record("QuerySurface")
	return m.bufferAge, true
}

func (m *mockBackend) GetProcAddress(name string) uintptr {
	return 0xABC0
}

func (m *mockBackend) WaitClient() bool {
	m.record("WaitClient")
	return true
}

func (m *mockBackend) ReleaseThread() bool {
	m.record("ReleaseThread")
	return true
}

func (m *mockBackend) GetError() int32 { return m.lastError }

// requestedVersion extracts the major.minor pair from context creation
// attributes, whichever form they take.
func requestedVersion(attribs []int32) [2]int32 {
	var v [2]int32
	for i := 0; i+1 < len(attribs); i += 2 {
		switch attribs[i] {
		case eglContextMajorVersion:
			v[0] = attribs[i+1]
		case eglContextMinorVersion:
			v[1] = attribs[i+1]
		}
	}
	return v
}

// attribValue finds the value of an attribute key in a key/value list.
func attribValue(attribs []int32, key int32) (int32, bool) {
	for i := 0; i+1 < len(attribs); i += 2 {
		if attribs[i] == key {
			return attribs[i+1], true
		}
	}
	return 0, false
}
