// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package egl

import (
	"errors"
	"fmt"

	"github.com/gogpu/glctx"
)

// bindAPI applies the version policy: it binds the client API for
// subsequent EGL calls and returns the API negotiation will target,
// together with the pinned version when the policy names one. A nil
// version lets negotiation run its fallback cascade.
//
// eglBindAPI only exists on EGL 1.2+, and desktop OpenGL is only
// bindable on 1.4+; older displays are OpenGL ES only.
func bindAPI(be Backend, ver Version, policy glctx.VersionPolicy) (glctx.API, *glctx.GLVersion, error) {
	switch policy.Kind {
	case glctx.PolicyLatest:
		if ver.AtLeast(1, 4) {
			if be.BindAPI(eglOpenGLAPI) {
				return glctx.OpenGL, nil, nil
			}
			if !be.BindAPI(eglOpenGLESAPI) {
				return 0, nil, fmt.Errorf("egl: cannot bind OpenGL ES: %w", glctx.ErrVersionNotSupported)
			}
		}
		return glctx.OpenGLES, nil, nil

	case glctx.PolicySpecific:
		v := policy.Version
		switch policy.API {
		case glctx.OpenGLES:
			if ver.AtLeast(1, 2) && !be.BindAPI(eglOpenGLESAPI) {
				return 0, nil, fmt.Errorf("egl: cannot bind OpenGL ES: %w", glctx.ErrVersionNotSupported)
			}
			return glctx.OpenGLES, &v, nil
		case glctx.OpenGL:
			if !ver.AtLeast(1, 4) || !be.BindAPI(eglOpenGLAPI) {
				return 0, nil, fmt.Errorf("egl: cannot bind OpenGL: %w", glctx.ErrVersionNotSupported)
			}
			return glctx.OpenGL, &v, nil
		default:
			return 0, nil, fmt.Errorf("egl: %s contexts: %w", policy.API, glctx.ErrNotSupported)
		}

	case glctx.PolicyGlThenGles:
		if ver.AtLeast(1, 4) {
			if be.BindAPI(eglOpenGLAPI) {
				v := policy.Desktop
				return glctx.OpenGL, &v, nil
			}
			if !be.BindAPI(eglOpenGLESAPI) {
				return 0, nil, fmt.Errorf("egl: cannot bind OpenGL ES: %w", glctx.ErrVersionNotSupported)
			}
		}
		v := policy.Embedded
		return glctx.OpenGLES, &v, nil

	default:
		return 0, nil, fmt.Errorf("egl: unknown version policy %d: %w", policy.Kind, glctx.ErrNotSupported)
	}
}

// versionCandidates is the fallback cascade for an unpinned version:
// newest first, ending at the baseline the API guarantees.
func versionCandidates(api glctx.API, pinned *glctx.GLVersion) []glctx.GLVersion {
	if pinned != nil {
		return []glctx.GLVersion{*pinned}
	}
	if api == glctx.OpenGL {
		return []glctx.GLVersion{{Major: 3, Minor: 2}, {Major: 3, Minor: 1}, {Major: 1, Minor: 0}}
	}
	return []glctx.GLVersion{{Major: 2, Minor: 0}, {Major: 1, Minor: 0}}
}

// negotiateContext walks the candidate version list, attempting
// eglCreateContext for each until one succeeds. Version rejections
// continue the cascade; every other failure aborts it. When every
// candidate is rejected the collected reasons come back together.
func negotiateContext(
	be Backend,
	d Display,
	ver Version,
	exts []string,
	config Config,
	api glctx.API,
	pinned *glctx.GLVersion,
	attrs *glctx.GlAttributes,
	share Handle,
) (Handle, glctx.GLVersion, error) {
	candidates := versionCandidates(api, pinned)
	var errs []error
	for _, v := range candidates {
		h, err := tryVersion(be, d, ver, exts, config, api, v, attrs, share)
		if err == nil {
			glctx.Logger().Debug("egl: created context",
				"api", api.String(), "version", fmt.Sprintf("%d.%d", v.Major, v.Minor))
			return h, v, nil
		}
		if !isVersionRejection(err) {
			return noContext, glctx.GLVersion{}, err
		}
		glctx.Logger().Debug("egl: context version rejected",
			"api", api.String(), "version", fmt.Sprintf("%d.%d", v.Major, v.Minor))
		errs = append(errs, err)
	}
	if len(errs) == 1 {
		return noContext, glctx.GLVersion{}, errs[0]
	}
	return noContext, glctx.GLVersion{}, &glctx.CreationErrors{Errs: errs}
}

func isVersionRejection(err error) bool {
	return errors.Is(err, glctx.ErrVersionNotSupported)
}

// tryVersion attempts to create a context of exactly one version.
func tryVersion(
	be Backend,
	d Display,
	ver Version,
	exts []string,
	config Config,
	api glctx.API,
	v glctx.GLVersion,
	attrs *glctx.GlAttributes,
	share Handle,
) (Handle, error) {
	attribs, err := contextAttribs(ver, exts, api, v, attrs)
	if err != nil {
		return noContext, err
	}
	h := be.CreateContext(d, config, share, attribs)
	if h == noContext {
		switch code := be.GetError(); code {
		case eglBadMatch, eglBadAttribute:
			// The driver rejected the version or an attribute tied to
			// it. Recoverable: the cascade moves on.
			return noContext, fmt.Errorf("egl: %d.%d rejected by driver: %w",
				v.Major, v.Minor, glctx.ErrVersionNotSupported)
		default:
			panic(fmt.Sprintf("glctx: eglCreateContext failed with 0x%x", code))
		}
	}
	return h, nil
}

// contextAttribs builds the eglCreateContext attribute list.
//
// EGL 1.5 and EGL_KHR_create_context take the full attribute set.
// Plain EGL 1.3+ can still pin the major version of an ES context via
// EGL_CONTEXT_CLIENT_VERSION. Anything older creates with defaults.
func contextAttribs(ver Version, exts []string, api glctx.API, v glctx.GLVersion, attrs *glctx.GlAttributes) ([]int32, error) {
	out := make([]int32, 0, 16)

	switch {
	case ver.AtLeast(1, 5) || hasExtension(exts, "EGL_KHR_create_context"):
		out = append(out,
			eglContextMajorVersion, int32(v.Major),
			eglContextMinorVersion, int32(v.Minor))

		if api == glctx.OpenGL && attrs.Profile != nil {
			out = append(out, eglContextOpenGLProfileMask)
			if *attrs.Profile == glctx.CoreProfile {
				out = append(out, eglContextOpenGLCoreProfileBit)
			} else {
				out = append(out, eglContextOpenGLCompatProfileBit)
			}
		}

		var flags int32
		robust := ver.AtLeast(1, 5) || hasExtension(exts, "EGL_EXT_create_context_robustness")
		switch attrs.Robustness {
		case glctx.NotRobust:
		case glctx.NoError:
			if hasExtension(exts, "EGL_KHR_create_context_no_error") {
				out = append(out, eglContextNoErrorKHR, 1)
			}
		case glctx.RobustNoResetNotification, glctx.TryRobustNoResetNotification:
			if !robust {
				if attrs.Robustness == glctx.RobustNoResetNotification {
					return nil, glctx.ErrRobustnessNotSupported
				}
				break
			}
			out = append(out, eglContextResetNotificationStrategy, eglNoResetNotification)
			flags |= eglRobustAccessBit
		case glctx.RobustLoseContextOnReset, glctx.TryRobustLoseContextOnReset:
			if !robust {
				if attrs.Robustness == glctx.RobustLoseContextOnReset {
					return nil, glctx.ErrRobustnessNotSupported
				}
				break
			}
			out = append(out, eglContextResetNotificationStrategy, eglLoseContextOnReset)
			flags |= eglRobustAccessBit
		}
		if flags&eglRobustAccessBit != 0 && ver.AtLeast(1, 5) {
			// EGL 1.5 promoted robust access from a flag bit to its own
			// attribute.
			flags &^= eglRobustAccessBit
			out = append(out, eglContextOpenGLRobustAccess, 1)
		}

		// Debug only goes out on EGL 1.5. Some drivers reject the
		// KHR debug flag bit with BAD_ATTRIBUTE, which would be
		// indistinguishable from a version rejection and silently
		// downgrade the context.
		if attrs.Debug && ver.AtLeast(1, 5) {
			out = append(out, eglContextOpenGLDebug, 1)
		}
		if flags != 0 {
			out = append(out, eglContextFlagsKHR, flags)
		}

	case ver.AtLeast(1, 3) && api == glctx.OpenGLES:
		switch attrs.Robustness {
		case glctx.RobustNoResetNotification, glctx.RobustLoseContextOnReset:
			return nil, glctx.ErrRobustnessNotSupported
		}
		out = append(out, eglContextClientVersion, int32(v.Major))

	default:
		switch attrs.Robustness {
		case glctx.RobustNoResetNotification, glctx.RobustLoseContextOnReset:
			return nil, glctx.ErrRobustnessNotSupported
		}
	}

	out = append(out, eglNone)
	return out, nil
}
