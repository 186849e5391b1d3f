// SPDX-License-Identifier: Unlicense OR MIT

// Package dl loads shared libraries and resolves their exported symbols
// to callable entry points. It is the lowest layer of the binding: the
// egl and gles packages never touch a library handle directly.
package dl

import "unsafe"

// Proc is a resolved native entry point.
type Proc interface {
	// Call invokes the entry point with args in machine words. Integer
	// arguments narrower than a word are widened. Arguments are placed
	// in integer registers only, so entry points taking floating-point
	// arguments cannot be called through Call. The first result
	// register is returned.
	Call(args ...uintptr) uintptr
	// Addr returns the native address of the entry point.
	Addr() uintptr
}

// ProcAddress wraps a raw function address obtained from a driver's own
// resolution facility (eglGetProcAddress and the like). A zero address
// maps to nil, so absence stays represented as the nil Proc.
func ProcAddress(addr uintptr) Proc {
	if addr == 0 {
		return nil
	}
	return proc(addr)
}

// CString converts a NUL-terminated native string to a Go string. A
// zero address maps to the empty string.
func CString(addr uintptr) string {
	if addr == 0 {
		return ""
	}
	var buf []byte
	for i := uintptr(0); ; i++ {
		b := *(*byte)(unsafe.Pointer(addr + i))
		if b == 0 {
			break
		}
		buf = append(buf, b)
	}
	return string(buf)
}
