// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glctx

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestRegistryList verifies ordering: priority descending, name as
// tie-break.
func TestRegistryList(t *testing.T) {
	r := NewRegistry()
	r.Register("glx", 50, &fakeDriver{name: "glx"}, nil)
	r.Register("egl", 100, &fakeDriver{name: "egl"}, nil)
	r.Register("wgl", 50, &fakeDriver{name: "wgl"}, nil)

	want := []string{"egl", "glx", "wgl"}
	if diff := cmp.Diff(want, r.List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

// TestRegistryDefault verifies the highest-priority available backend
// wins and unavailable ones are skipped.
func TestRegistryDefault(t *testing.T) {
	r := NewRegistry()
	r.Register("egl", 100, &fakeDriver{name: "egl"}, func() bool { return false })
	r.Register("glx", 50, &fakeDriver{name: "glx"}, nil)

	d, err := r.Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if d.Name() != "glx" {
		t.Errorf("Default() = %s, want glx (egl reports unavailable)", d.Name())
	}
}

// TestRegistryDefaultNoneAvailable verifies the sentinel when every
// backend is unavailable or nothing is registered.
func TestRegistryDefaultNoneAvailable(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Default(); !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("empty registry: error = %v, want ErrNoBackendAvailable", err)
	}

	r.Register("egl", 100, &fakeDriver{name: "egl"}, func() bool { return false })
	if _, err := r.Default(); !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("all unavailable: error = %v, want ErrNoBackendAvailable", err)
	}
}

// TestRegistryAvailabilityAtSelection verifies availability is
// consulted when a backend is selected, not when it is registered.
func TestRegistryAvailabilityAtSelection(t *testing.T) {
	available := false
	r := NewRegistry()
	r.Register("egl", 100, &fakeDriver{name: "egl"}, func() bool { return available })

	if _, err := r.Default(); err == nil {
		t.Fatal("Default() succeeded while unavailable")
	}
	available = true
	if _, err := r.Default(); err != nil {
		t.Errorf("Default() error = %v after the backend became available", err)
	}
}

// TestRegistryReplace verifies re-registering a name replaces the
// previous entry.
func TestRegistryReplace(t *testing.T) {
	r := NewRegistry()
	r.Register("egl", 100, &fakeDriver{name: "first"}, nil)
	r.Register("egl", 100, &fakeDriver{name: "second"}, nil)

	d, ok := r.Get("egl")
	if !ok {
		t.Fatal("Get(egl) = false")
	}
	if d.Name() != "second" {
		t.Errorf("Get(egl).Name() = %s, want second", d.Name())
	}
	if got := len(r.List()); got != 1 {
		t.Errorf("List() has %d entries, want 1", got)
	}
}

// TestRegistryUnregister verifies removal.
func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("egl", 100, &fakeDriver{name: "egl"}, nil)
	r.Unregister("egl")
	if _, ok := r.Get("egl"); ok {
		t.Error("Get(egl) = true after Unregister")
	}
}
