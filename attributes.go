// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glctx

// GLVersion is a major.minor GL version.
type GLVersion struct {
	Major int
	Minor int
}

// AtLeast reports whether v is at least major.minor.
func (v GLVersion) AtLeast(major, minor int) bool {
	return v.Major > major || (v.Major == major && v.Minor >= minor)
}

// PolicyKind discriminates the VersionPolicy variants.
type PolicyKind int

const (
	// PolicyLatest requests the latest version of the platform's best
	// API.
	PolicyLatest PolicyKind = iota
	// PolicySpecific requests exactly one API and version.
	PolicySpecific
	// PolicyGlThenGles requests desktop OpenGL first, OpenGL ES second.
	PolicyGlThenGles
)

// VersionPolicy describes the API and version being requested when a
// context is created. Construct values with Latest, Specific or
// GlThenGles.
type VersionPolicy struct {
	// Kind selects the variant; the remaining fields are meaningful
	// only for the variants that name them.
	Kind PolicyKind
	// API and Version apply to PolicySpecific.
	API     API
	Version GLVersion
	// Desktop and Embedded apply to PolicyGlThenGles.
	Desktop  GLVersion
	Embedded GLVersion
}

// Latest requests the latest version of the "best" API of the
// platform. On desktop this tries OpenGL first.
func Latest() VersionPolicy {
	return VersionPolicy{Kind: PolicyLatest}
}

// Specific requests exactly the given API and version.
//
// Example: Specific(glctx.OpenGL, glctx.GLVersion{Major: 3, Minor: 3}).
func Specific(api API, version GLVersion) VersionPolicy {
	return VersionPolicy{Kind: PolicySpecific, API: api, Version: version}
}

// GlThenGles requests a desktop OpenGL context of the given version if
// OpenGL is available, otherwise an OpenGL ES context of the embedded
// version.
func GlThenGles(desktop, embedded GLVersion) VersionPolicy {
	return VersionPolicy{Kind: PolicyGlThenGles, Desktop: desktop, Embedded: embedded}
}

// CoreProfilePolicy is the minimum core-profile desktop context, useful
// for getting the lowest GL version that still works on platforms that
// forbid compatibility-profile features.
func CoreProfilePolicy() VersionPolicy {
	return Specific(OpenGL, GLVersion{Major: 3, Minor: 2})
}

// DesktopVersion extracts the requested desktop GL version, if any.
func (p VersionPolicy) DesktopVersion() (GLVersion, bool) {
	switch p.Kind {
	case PolicySpecific:
		if p.API == OpenGL {
			return p.Version, true
		}
	case PolicyGlThenGles:
		return p.Desktop, true
	}
	return GLVersion{}, false
}

// GlAttributes is the context-creation policy: which API and version to
// negotiate, and the context flags to create with.
type GlAttributes struct {
	// Version is how the backend chooses the API and version. The zero
	// value is Latest.
	Version VersionPolicy

	// Profile is the requested desktop OpenGL profile, or nil for the
	// backend default.
	Profile *Profile

	// Debug enables the context's debug flag. Debug contexts are
	// usually slower but report errors much better.
	Debug bool

	// Robustness is how the context detects faults.
	Robustness Robustness

	// VSync is the swap synchronization to apply when the context is
	// finished against a surface.
	VSync VSyncMode

	// Share is an existing context whose GL objects the new context
	// shares. Both contexts must come from the same native backend.
	Share *Context
}
