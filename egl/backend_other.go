// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !windows && !(cgo && (linux || freebsd || openbsd))

package egl

import (
	"fmt"
	"runtime"

	"github.com/gogpu/glctx"
)

func loadBackend() (Backend, error) {
	return nil, fmt.Errorf("egl: no binding for %s: %w", runtime.GOOS, glctx.ErrNotSupported)
}
