// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glctx

// stubRaw is an in-memory RawContext for exercising the typestate
// wrappers and the builder without a native backend.
type stubRaw struct {
	current   bool
	api       API
	format    PixelFormat
	swap      SwapIntervalRange
	vsync     VSyncMode
	destroyed bool

	makeCurrentErr error
	notCurrentErr  error

	calls []string
}

var _ RawContext = (*stubRaw)(nil)

func (s *stubRaw) MakeCurrent() error {
	s.calls = append(s.calls, "MakeCurrent")
	if s.makeCurrentErr != nil {
		return s.makeCurrentErr
	}
	s.current = true
	return nil
}

func (s *stubRaw) MakeNotCurrent() error {
	s.calls = append(s.calls, "MakeNotCurrent")
	if s.notCurrentErr != nil {
		return s.notCurrentErr
	}
	s.current = false
	return nil
}

func (s *stubRaw) IsCurrent() bool { return s.current }

func (s *stubRaw) API() API { return s.api }

func (s *stubRaw) PixelFormat() PixelFormat { return s.format }

func (s *stubRaw) SwapIntervalRange() SwapIntervalRange { return s.swap }

func (s *stubRaw) SetVSyncMode(mode VSyncMode) error {
	s.calls = append(s.calls, "SetVSyncMode")
	s.vsync = mode
	return nil
}

func (s *stubRaw) GetProcAddress(name string) uintptr { return 0xABC0 }

func (s *stubRaw) SwapBuffers() error {
	s.calls = append(s.calls, "SwapBuffers")
	return nil
}

func (s *stubRaw) SwapBuffersWithDamage([]Rect) error {
	s.calls = append(s.calls, "SwapBuffersWithDamage")
	return nil
}

func (s *stubRaw) SwapBuffersWithDamageSupported() bool { return false }
func (s *stubRaw) BufferAge() int                       { return 0 }

func (s *stubRaw) Destroy() error {
	s.calls = append(s.calls, "Destroy")
	s.destroyed = true
	return nil
}

// fakeDriver is a Driver that hands out stubRaw contexts and records
// the parameters it was called with.
type fakeDriver struct {
	name string
	err  error

	windowed    int
	pbuffer     int
	surfaceless int
	lastParams  Params
	lastDisplay NativeDisplay
	lastWindow  uintptr
}

var _ Driver = (*fakeDriver)(nil)

func (d *fakeDriver) Name() string { return d.name }

func (d *fakeDriver) WindowedContext(display NativeDisplay, window uintptr, p Params) (RawContext, error) {
	d.windowed++
	d.lastParams, d.lastDisplay, d.lastWindow = p, display, window
	if d.err != nil {
		return nil, d.err
	}
	return &stubRaw{swap: SwapIntervalRange{Min: 0, Max: 1}}, nil
}

func (d *fakeDriver) PBufferContext(display NativeDisplay, width, height int, p Params) (RawContext, error) {
	d.pbuffer++
	d.lastParams, d.lastDisplay = p, display
	if d.err != nil {
		return nil, d.err
	}
	return &stubRaw{swap: SwapIntervalRange{Min: 0, Max: 1}}, nil
}

func (d *fakeDriver) SurfacelessContext(display NativeDisplay, p Params) (RawContext, error) {
	d.surfaceless++
	d.lastParams, d.lastDisplay = p, display
	if d.err != nil {
		return nil, d.err
	}
	return &stubRaw{swap: SwapIntervalRange{Min: 0, Max: 1}}, nil
}
