// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux || freebsd || windows

package egl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorName(t *testing.T) {
	tests := []struct {
		code _EGLint
		name string
	}{
		{_EGL_SUCCESS, "EGL_SUCCESS"},
		{_EGL_NOT_INITIALIZED, "EGL_NOT_INITIALIZED"},
		{_EGL_BAD_DISPLAY, "EGL_BAD_DISPLAY"},
		{_EGL_CONTEXT_LOST, "EGL_CONTEXT_LOST"},
		{0x42, "unknown error"},
	}
	for _, test := range tests {
		if got := errorName(test.code); got != test.name {
			t.Errorf("errorName(0x%x): expected %q got %q", uint32(test.code), test.name, got)
		}
	}
}

func TestSupportsExtension(t *testing.T) {
	d := &Display{exts: []string{"EGL_KHR_surfaceless_context", "EGL_KHR_gl_colorspace"}}
	require.True(t, d.SupportsExtension("EGL_KHR_surfaceless_context"))
	require.False(t, d.SupportsExtension("EGL_KHR_surfaceless"))
	require.False(t, d.SupportsExtension("EGL_EXT_device_query"))
}
