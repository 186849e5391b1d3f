// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux || freebsd || windows

package egl

const (
	_EGL_SUCCESS             = 0x3000
	_EGL_NOT_INITIALIZED     = 0x3001
	_EGL_BAD_ACCESS          = 0x3002
	_EGL_BAD_ALLOC           = 0x3003
	_EGL_BAD_ATTRIBUTE       = 0x3004
	_EGL_BAD_CONFIG          = 0x3005
	_EGL_BAD_CONTEXT         = 0x3006
	_EGL_BAD_CURRENT_SURFACE = 0x3007
	_EGL_BAD_DISPLAY         = 0x3008
	_EGL_BAD_MATCH           = 0x3009
	_EGL_BAD_NATIVE_PIXMAP   = 0x300a
	_EGL_BAD_NATIVE_WINDOW   = 0x300b
	_EGL_BAD_PARAMETER       = 0x300c
	_EGL_BAD_SURFACE         = 0x300d
	_EGL_CONTEXT_LOST        = 0x300e
)

func errorName(code _EGLint) string {
	switch code {
	case _EGL_SUCCESS:
		return "EGL_SUCCESS"
	case _EGL_NOT_INITIALIZED:
		return "EGL_NOT_INITIALIZED"
	case _EGL_BAD_ACCESS:
		return "EGL_BAD_ACCESS"
	case _EGL_BAD_ALLOC:
		return "EGL_BAD_ALLOC"
	case _EGL_BAD_ATTRIBUTE:
		return "EGL_BAD_ATTRIBUTE"
	case _EGL_BAD_CONFIG:
		return "EGL_BAD_CONFIG"
	case _EGL_BAD_CONTEXT:
		return "EGL_BAD_CONTEXT"
	case _EGL_BAD_CURRENT_SURFACE:
		return "EGL_BAD_CURRENT_SURFACE"
	case _EGL_BAD_DISPLAY:
		return "EGL_BAD_DISPLAY"
	case _EGL_BAD_MATCH:
		return "EGL_BAD_MATCH"
	case _EGL_BAD_NATIVE_PIXMAP:
		return "EGL_BAD_NATIVE_PIXMAP"
	case _EGL_BAD_NATIVE_WINDOW:
		return "EGL_BAD_NATIVE_WINDOW"
	case _EGL_BAD_PARAMETER:
		return "EGL_BAD_PARAMETER"
	case _EGL_BAD_SURFACE:
		return "EGL_BAD_SURFACE"
	case _EGL_CONTEXT_LOST:
		return "EGL_CONTEXT_LOST"
	default:
		return "unknown error"
	}
}
