// SPDX-License-Identifier: Unlicense OR MIT

package gles

import (
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/mrmangohands/lwjgl3/internal/dl"
)

type procFunc func(args ...uintptr) uintptr

func (p procFunc) Call(args ...uintptr) uintptr { return p(args...) }

func (p procFunc) Addr() uintptr { return 0 }

// fakeDriver emulates a driver's symbol table: working core entry
// points backed by the configured strings, and extension entry points
// for every announced extension.
type fakeDriver struct {
	version  string
	vendor   string
	renderer string
	exts     []string
	missing  map[string]bool // symbols to withhold
	resolve  map[string]bool // symbols to export even when unannounced

	strs map[string][]byte // keeps returned C strings alive
}

func newFakeDriver(version string, exts ...string) *fakeDriver {
	return &fakeDriver{
		version:  version,
		vendor:   "Fake Driver Vendor",
		renderer: "Fake Renderer",
		exts:     exts,
		missing:  make(map[string]bool),
		resolve:  make(map[string]bool),
	}
}

func (d *fakeDriver) cString(s string) uintptr {
	if d.strs == nil {
		d.strs = make(map[string][]byte)
	}
	buf, ok := d.strs[s]
	if !ok {
		buf = append([]byte(s), 0)
		d.strs[s] = buf
	}
	return uintptr(unsafe.Pointer(&buf[0]))
}

func (d *fakeDriver) hasExt(name string) bool {
	for _, e := range d.exts {
		if e == name {
			return true
		}
	}
	return false
}

func (d *fakeDriver) Lookup(name string) dl.Proc {
	if d.missing[name] {
		return nil
	}
	switch name {
	case "glGetError":
		return procFunc(func(args ...uintptr) uintptr { return NO_ERROR })
	case "glGetString":
		return procFunc(func(args ...uintptr) uintptr {
			switch Enum(args[0]) {
			case VERSION:
				return d.cString(d.version)
			case VENDOR:
				return d.cString(d.vendor)
			case RENDERER:
				return d.cString(d.renderer)
			case EXTENSIONS:
				return d.cString(strings.Join(d.exts, " "))
			}
			return 0
		})
	case "glGetStringi":
		return procFunc(func(args ...uintptr) uintptr {
			if Enum(args[0]) == EXTENSIONS {
				return d.cString(d.exts[int(args[1])])
			}
			return 0
		})
	case "glGetIntegerv":
		return procFunc(func(args ...uintptr) uintptr {
			if Enum(args[0]) == NUM_EXTENSIONS {
				*(*int32)(unsafe.Pointer(args[1])) = int32(len(d.exts))
			}
			return 0
		})
	}
	for i, sym := range procNames {
		if sym == name {
			if d.hasExt(procExtensions[i]) || d.resolve[name] {
				return dl.ProcAddress(uintptr(0x1000 + 16*i))
			}
			return nil
		}
	}
	return nil
}

func TestNewFunctionsES3(t *testing.T) {
	drv := newFakeDriver("OpenGL ES 3.2",
		"GL_NV_viewport_swizzle",
		"GL_KHR_blend_equation_advanced",
		"GL_EXT_disjoint_timer_query",
		"GL_OES_EGL_image", // announced but not dispatched here
	)
	f, err := NewFunctions(drv, Config{})
	require.NoError(t, err)
	caps := f.Capabilities()
	require.Equal(t, [2]int{3, 2}, caps.Version)
	require.Equal(t, "Fake Driver Vendor", caps.Vendor)
	require.Equal(t, "Fake Renderer", caps.Renderer)
	require.True(t, caps.NVViewportSwizzle)
	require.True(t, caps.KHRBlendEquationAdvanced)
	require.True(t, caps.EXTDisjointTimerQuery)
	require.False(t, caps.EXTBufferStorage)
	require.False(t, caps.OESCopyImage)
	require.True(t, caps.HasExtension("GL_OES_EGL_image"))
	require.False(t, caps.HasExtension("GL_OES_copy_image"))
	require.Equal(t, []string{
		"GL_EXT_disjoint_timer_query",
		"GL_KHR_blend_equation_advanced",
		"GL_NV_viewport_swizzle",
		"GL_OES_EGL_image",
	}, caps.Extensions())
}

func TestNewFunctionsES2(t *testing.T) {
	drv := newFakeDriver("OpenGL ES 2.0",
		"GL_OES_vertex_array_object",
		"GL_EXT_multisampled_render_to_texture",
	)
	drv.missing["glGetStringi"] = true
	f, err := NewFunctions(drv, Config{})
	require.NoError(t, err)
	caps := f.Capabilities()
	require.Equal(t, [2]int{2, 0}, caps.Version)
	require.True(t, caps.OESVertexArrayObject)
	require.True(t, caps.EXTMultisampledRenderToTexture)
	require.False(t, caps.NVViewportSwizzle)
}

func TestCapabilityRequiresResolution(t *testing.T) {
	drv := newFakeDriver("OpenGL ES 3.1",
		"GL_NV_scissor_exclusive",
	)
	drv.missing["glScissorExclusiveArrayvNV"] = true
	f, err := NewFunctions(drv, Config{})
	require.NoError(t, err)
	require.False(t, f.Capabilities().NVScissorExclusive)
	for _, st := range f.ExtensionStatus() {
		if st.Name == "GL_NV_scissor_exclusive" {
			require.True(t, st.Announced)
			require.False(t, st.Resolved)
			return
		}
	}
	t.Fatal("GL_NV_scissor_exclusive missing from extension status")
}

func TestCapabilityRequiresAnnouncement(t *testing.T) {
	drv := newFakeDriver("OpenGL ES 3.0")
	drv.resolve["glBlendBarrierKHR"] = true
	f, err := NewFunctions(drv, Config{})
	require.NoError(t, err)
	require.False(t, f.Capabilities().KHRBlendEquationAdvanced)
	for _, st := range f.ExtensionStatus() {
		if st.Name == "GL_KHR_blend_equation_advanced" {
			require.False(t, st.Announced)
			require.True(t, st.Resolved)
		}
	}
}

func TestMissingCoreSymbol(t *testing.T) {
	drv := newFakeDriver("OpenGL ES 3.0")
	drv.missing["glGetString"] = true
	_, err := NewFunctions(drv, Config{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "glGetString")
}

func TestBadVersionString(t *testing.T) {
	drv := newFakeDriver("not a version")
	_, err := NewFunctions(drv, Config{})
	require.Error(t, err)
}

func TestMultiSourceOrder(t *testing.T) {
	first := mapSource{"glViewportSwizzleNV": dl.ProcAddress(0x10)}
	second := mapSource{
		"glViewportSwizzleNV": dl.ProcAddress(0x20),
		"glBlendBarrierKHR":   dl.ProcAddress(0x30),
	}
	src := MultiSource{first, second}
	require.Equal(t, uintptr(0x10), src.Lookup("glViewportSwizzleNV").Addr())
	require.Equal(t, uintptr(0x30), src.Lookup("glBlendBarrierKHR").Addr())
	require.Nil(t, src.Lookup("glGenQueriesEXT"))
}
