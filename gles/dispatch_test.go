// SPDX-License-Identifier: Unlicense OR MIT

package gles

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/mrmangohands/lwjgl3/internal/dl"
)

// recordProc records every call made through it.
type recordProc struct {
	ret   uintptr
	calls [][]uintptr
}

func (p *recordProc) Call(args ...uintptr) uintptr {
	p.calls = append(p.calls, append([]uintptr(nil), args...))
	return p.ret
}

func (p *recordProc) Addr() uintptr {
	return uintptr(unsafe.Pointer(p))
}

// mapSource resolves from a fixed symbol set.
type mapSource map[string]dl.Proc

func (s mapSource) Lookup(name string) dl.Proc {
	return s[name]
}

func TestInitResolvesExportedSlots(t *testing.T) {
	src := mapSource{
		"glViewportSwizzleNV": &recordProc{},
		"glBlendBarrierKHR":   &recordProc{},
	}
	var table DispatchTable
	table.Init(src)
	require.NotNil(t, table.Get(procViewportSwizzleNV))
	require.NotNil(t, table.Get(procBlendBarrierKHR))
	require.Nil(t, table.Get(procGenQueriesEXT))
	require.Nil(t, table.Get(procCopyImageSubDataOES))
}

func TestInitIdempotent(t *testing.T) {
	src := mapSource{}
	for i, name := range procNames {
		src[name] = dl.ProcAddress(uintptr(0x1000 + i))
	}
	var first, second DispatchTable
	first.Init(src)
	second.Init(src)
	for i := 0; i < procCount; i++ {
		require.Equal(t, first.Get(i).Addr(), second.Get(i).Addr(), procNames[i])
	}
	// Re-initializing an already populated table with the same source
	// reproduces it as well.
	first.Init(src)
	for i := 0; i < procCount; i++ {
		require.Equal(t, second.Get(i).Addr(), first.Get(i).Addr(), procNames[i])
	}
}

func TestGetMatchesSlotName(t *testing.T) {
	// Each slot resolves to an address derived from its symbol name,
	// so a lookup that depended on population order would not match.
	addrs := make(map[string]uintptr, procCount)
	src := mapSource{}
	for i, name := range procNames {
		addr := uintptr(0x2000 + 16*i)
		addrs[name] = addr
		src[name] = dl.ProcAddress(addr)
	}
	var table DispatchTable
	table.Init(src)
	for i := 0; i < procCount; i++ {
		require.Equal(t, addrs[procNames[i]], table.Get(i).Addr(), procNames[i])
	}
}

func TestGetOutOfRange(t *testing.T) {
	var table DispatchTable
	require.Panics(t, func() { table.Get(procCount) })
	require.Panics(t, func() { table.Get(-1) })
}

func TestViewportSwizzleForwardsArgs(t *testing.T) {
	rec := new(recordProc)
	f := new(Functions)
	f.table.procs[procViewportSwizzleNV] = rec
	f.ViewportSwizzleNV(0, 1, 0, 0, 1)
	require.Equal(t, [][]uintptr{{0, 1, 0, 0, 1}}, rec.calls)
}

func TestBlitFramebufferForwardsOrder(t *testing.T) {
	rec := new(recordProc)
	f := new(Functions)
	f.table.procs[procBlitFramebufferNV] = rec
	f.BlitFramebufferNV(-2, 2, 3, 4, 5, 6, 7, 8, 0xff, 0x2600)
	require.Len(t, rec.calls, 1)
	require.Equal(t, []uintptr{
		uintptr(uint32(0xfffffffe)), 2, 3, 4, 5, 6, 7, 8, 0xff, 0x2600,
	}, rec.calls[0])
}

func TestPointerArgForwarded(t *testing.T) {
	rec := new(recordProc)
	f := new(Functions)
	f.table.procs[procGenQueriesEXT] = rec
	ids := make([]uint32, 2)
	f.GenQueriesEXT(2, &ids[0])
	require.Len(t, rec.calls, 1)
	require.Equal(t, []uintptr{2, uintptr(unsafe.Pointer(&ids[0]))}, rec.calls[0])
}

func TestBoolResult(t *testing.T) {
	rec := &recordProc{ret: 1}
	f := new(Functions)
	f.table.procs[procIsVertexArrayOES] = rec
	require.True(t, f.IsVertexArrayOES(7))
	rec.ret = 0
	require.False(t, f.IsVertexArrayOES(7))
	require.Equal(t, [][]uintptr{{7}, {7}}, rec.calls)
}

func TestZeroArgForwarder(t *testing.T) {
	rec := new(recordProc)
	f := new(Functions)
	f.table.procs[procBlendBarrierKHR] = rec
	f.BlendBarrierKHR()
	require.Len(t, rec.calls, 1)
	require.Empty(t, rec.calls[0])
}

func TestCheckedUnresolvedPanics(t *testing.T) {
	f := &Functions{checked: true}
	require.PanicsWithValue(t,
		"gles: glViewportSwizzleNV is not supported by this context (GL_NV_viewport_swizzle)",
		func() { f.ViewportSwizzleNV(0, 1, 0, 0, 1) })
}

func TestUncheckedUnresolvedIsNil(t *testing.T) {
	// Without Checked, the unresolved slot is handed back as-is;
	// calling it is the caller's contract violation.
	f := new(Functions)
	require.Nil(t, f.ext(procViewportSwizzleNV))
}
