// SPDX-License-Identifier: Unlicense OR MIT

// Package gles exposes optional OpenGL ES extension entry points
// through a per-context dispatch table.
//
// A Functions value is created from a ProcSource, typically an
// egl.Display, after a context has been made current on the calling
// thread. Construction resolves every known extension slot exactly
// once; a slot whose symbol the driver does not export stays nil for
// the lifetime of the Functions value. Calling a forwarder whose slot
// is nil is a contract violation by the caller; use Capabilities to
// check support first.
package gles

//go:generate go run ./gen

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/mrmangohands/lwjgl3/internal/dl"
)

// Enum is a GLenum.
type Enum uint32

// ProcSource resolves driver entry points by name. Lookup returns nil
// when the driver does not export name.
type ProcSource interface {
	Lookup(name string) dl.Proc
}

// MultiSource tries each source in turn. Drivers split their entry
// points between the client library and the window system's
// GetProcAddress facility, so a complete source usually chains both.
type MultiSource []ProcSource

func (s MultiSource) Lookup(name string) dl.Proc {
	for _, src := range s {
		if p := src.Lookup(name); p != nil {
			return p
		}
	}
	return nil
}

// Config controls optional dispatch behavior.
type Config struct {
	// Checked upgrades calls through unresolved slots from a runtime
	// fault to a panic naming the entry point and its extension.
	// Leave it unset in release builds; the unchecked path costs
	// nothing per call.
	Checked bool
}

// Functions dispatches OpenGL ES calls for a single context. It must
// only be used while that context is current, on the thread it is
// current on.
type Functions struct {
	table   DispatchTable
	caps    Capabilities
	checked bool

	// Core entry points, resolved at construction.
	getError    dl.Proc
	getIntegerv dl.Proc
	getString   dl.Proc
	getStringi  dl.Proc
}

// NewFunctions resolves the dispatch table and capabilities of the
// context current on the calling thread.
func NewFunctions(src ProcSource, cfg Config) (*Functions, error) {
	f := &Functions{checked: cfg.Checked}
	core := map[string]*dl.Proc{
		"glGetError":    &f.getError,
		"glGetIntegerv": &f.getIntegerv,
		"glGetString":   &f.getString,
	}
	for name, proc := range core {
		p := src.Lookup(name)
		if p == nil {
			return nil, fmt.Errorf("gles: failed to locate core entry point %s", name)
		}
		*proc = p
	}
	// glGetStringi only exists on ES 3; without it the extension list
	// comes from the space-separated GL_EXTENSIONS string.
	f.getStringi = src.Lookup("glGetStringi")
	f.table.Init(src)
	caps, err := newCapabilities(f)
	if err != nil {
		return nil, err
	}
	f.caps = caps
	return f, nil
}

// Capabilities reports what the context supports.
func (f *Functions) Capabilities() Capabilities {
	return f.caps
}

func (f *Functions) ext(index int) dl.Proc {
	p := f.table.Get(index)
	if p == nil && f.checked {
		panic(fmt.Sprintf("gles: %s is not supported by this context (%s)", procNames[index], procExtensions[index]))
	}
	return p
}

// GetError forwards to glGetError.
func (f *Functions) GetError() Enum {
	return Enum(f.getError.Call())
}

// GetString forwards to glGetString.
func (f *Functions) GetString(pname Enum) string {
	return dl.CString(f.getString.Call(uintptr(pname)))
}

// GetStringi forwards to glGetStringi. It requires an ES 3 context.
func (f *Functions) GetStringi(pname Enum, index int) string {
	return dl.CString(f.getStringi.Call(uintptr(pname), uintptr(uint32(index))))
}

// GetInteger forwards to glGetIntegerv for single-valued parameters.
func (f *Functions) GetInteger(pname Enum) int {
	var v int32
	f.getIntegerv.Call(uintptr(pname), uintptr(unsafe.Pointer(&v)))
	issue34474KeepAlive(&v)
	return int(v)
}

// issue34474KeepAlive calls runtime.KeepAlive as a
// workaround for golang.org/issue/34474.
func issue34474KeepAlive(v any) {
	runtime.KeepAlive(v)
}
