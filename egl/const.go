// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package egl

// EGL constants, from the Khronos EGL registry. Only the attributes
// and error codes this backend touches are listed.
const (
	eglAlphaSize       = 0x3021
	eglBlueSize        = 0x3022
	eglGreenSize       = 0x3023
	eglRedSize         = 0x3024
	eglDepthSize       = 0x3025
	eglStencilSize     = 0x3026
	eglConfigCaveat    = 0x3027
	eglSamples         = 0x3031
	eglSurfaceType     = 0x3033
	eglNone            = 0x3038
	eglColorBufferType = 0x303F
	eglRenderableType  = 0x3040
	eglConformant      = 0x3042
	eglSlowConfig      = 0x3050
	eglRGBBuffer       = 0x308E
	eglNativeVisualID  = 0x302E
	eglMinSwapInterval = 0x303B
	eglMaxSwapInterval = 0x303C
	eglExtensions      = 0x3055
	eglHeight          = 0x3056
	eglWidth           = 0x3057
	eglDraw            = 0x3059
	eglRead            = 0x305A

	eglWindowBit  = 0x0004
	eglPBufferBit = 0x0001

	eglOpenGLESBit  = 0x0001
	eglOpenGLES2Bit = 0x0004
	eglOpenGLES3Bit = 0x0040
	eglOpenGLBit    = 0x0008

	eglOpenGLESAPI = 0x30A0
	eglOpenGLAPI   = 0x30A2

	eglContextClientVersion  = 0x3098
	eglContextMajorVersion   = 0x3098
	eglContextMinorVersion   = 0x30FB
	eglContextFlagsKHR       = 0x30FC
	eglContextOpenGLDebug    = 0x31B0
	eglContextOpenGLDebugBit = 0x0001
	eglContextNoErrorKHR     = 0x31B3

	eglContextOpenGLProfileMask      = 0x30FD
	eglContextOpenGLCoreProfileBit   = 0x0001
	eglContextOpenGLCompatProfileBit = 0x0002
	eglContextOpenGLRobustAccess     = 0x31B2

	eglContextResetNotificationStrategy = 0x31BD
	eglNoResetNotification              = 0x31BE
	eglLoseContextOnReset               = 0x31BF
	eglRobustAccessBit                  = 0x0004

	eglSuccess      = 0x3000
	eglBadAttribute = 0x3004
	eglBadMatch     = 0x3009
	eglContextLost  = 0x300E

	eglBufferAgeEXT = 0x313D

	eglGLColorspaceKHR     = 0x309D
	eglGLColorspaceSRGBKHR = 0x3089

	eglPlatformDeviceEXT  = 0x313F
	eglPlatformAndroidKHR = 0x3141
	eglPlatformX11KHR     = 0x31D5
	eglPlatformX11EXT     = 0x31D5
	eglPlatformGbmKHR     = 0x31D7
	eglPlatformGbmMESA    = 0x31D7
	eglPlatformWaylandKHR = 0x31D8
	eglPlatformWaylandEXT = 0x31D8
)

// Null handles. EGL uses zero for all of them.
const (
	noDisplay Display = 0
	noConfig  Config  = 0
	noSurface Surface = 0
	noContext Handle  = 0
)
