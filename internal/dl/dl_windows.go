// SPDX-License-Identifier: Unlicense OR MIT

package dl

import (
	"errors"
	"fmt"
	"syscall"

	"golang.org/x/sys/windows"
)

// Library is an opened shared library.
type Library struct {
	name   string
	handle windows.Handle
}

// Open loads the first of names that resolves. Drivers install their
// libraries under more than one name, so callers pass every spelling
// they are prepared to accept.
func Open(names ...string) (*Library, error) {
	if len(names) == 0 {
		return nil, errors.New("dl: no library name given")
	}
	var firstErr error
	for _, name := range names {
		h, err := windows.LoadLibraryEx(name, 0, windows.LOAD_LIBRARY_SEARCH_DEFAULT_DIRS)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		return &Library{name: name, handle: h}, nil
	}
	return nil, fmt.Errorf("dl: failed to load %s: %v", names[0], firstErr)
}

func (l *Library) Name() string {
	return l.name
}

// Lookup resolves an exported symbol. It returns nil when the library
// does not export name; absence is represented, not reported.
func (l *Library) Lookup(name string) Proc {
	addr, err := windows.GetProcAddress(l.handle, name)
	if err != nil || addr == 0 {
		return nil
	}
	return proc(addr)
}

func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := windows.FreeLibrary(l.handle)
	l.handle = 0
	if err != nil {
		return fmt.Errorf("dl: failed to unload %s: %v", l.name, err)
	}
	return nil
}

type proc uintptr

func (p proc) Call(args ...uintptr) uintptr {
	r1, _, _ := syscall.SyscallN(uintptr(p), args...)
	return r1
}

func (p proc) Addr() uintptr {
	return uintptr(p)
}
