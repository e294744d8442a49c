// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package egl

import "sync"

// The native EGL library is bound lazily and process-wide: the first
// backend call loads it, every later call reuses it. A load failure is
// sticky and surfaces through Available and every Driver method.
var (
	loadOnce    sync.Once
	loadedBE    Backend
	loadFailure error
)

func backend() (Backend, error) {
	loadOnce.Do(func() {
		loadedBE, loadFailure = loadBackend()
	})
	return loadedBE, loadFailure
}
