// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux || freebsd || windows

package egl

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/mrmangohands/lwjgl3/internal/dl"
)

var (
	libEGL *dl.Library

	_eglChooseConfig   dl.Proc
	_eglCreateContext  dl.Proc
	_eglDestroyContext dl.Proc
	_eglGetDisplay     dl.Proc
	_eglGetError       dl.Proc
	_eglGetProcAddress dl.Proc
	_eglInitialize     dl.Proc
	_eglMakeCurrent    dl.Proc
	_eglQueryString    dl.Proc
	_eglReleaseThread  dl.Proc
	_eglTerminate      dl.Proc
)

var (
	loadOnce sync.Once
	loadErr  error
)

func loadEGL() error {
	loadOnce.Do(func() {
		loadErr = bindProcs()
	})
	return loadErr
}

func bindProcs() error {
	lib, err := dl.Open(eglLibNames...)
	if err != nil {
		return err
	}
	procs := map[string]*dl.Proc{
		"eglChooseConfig":   &_eglChooseConfig,
		"eglCreateContext":  &_eglCreateContext,
		"eglDestroyContext": &_eglDestroyContext,
		"eglGetDisplay":     &_eglGetDisplay,
		"eglGetError":       &_eglGetError,
		"eglGetProcAddress": &_eglGetProcAddress,
		"eglInitialize":     &_eglInitialize,
		"eglMakeCurrent":    &_eglMakeCurrent,
		"eglQueryString":    &_eglQueryString,
		"eglReleaseThread":  &_eglReleaseThread,
		"eglTerminate":      &_eglTerminate,
	}
	for name, proc := range procs {
		p := lib.Lookup(name)
		if p == nil {
			return fmt.Errorf("egl: failed to locate %s in %s", name, lib.Name())
		}
		*proc = p
	}
	libEGL = lib
	return nil
}

func eglChooseConfig(disp _EGLDisplay, attribs []_EGLint) (_EGLConfig, bool) {
	var cfg _EGLConfig
	var ncfg _EGLint
	a := &attribs[0]
	r := _eglChooseConfig.Call(uintptr(disp), uintptr(unsafe.Pointer(a)), uintptr(unsafe.Pointer(&cfg)), 1, uintptr(unsafe.Pointer(&ncfg)))
	issue34474KeepAlive(a)
	return cfg, r != 0
}

func eglCreateContext(disp _EGLDisplay, cfg _EGLConfig, shareCtx _EGLContext, attribs []_EGLint) _EGLContext {
	a := &attribs[0]
	c := _eglCreateContext.Call(uintptr(disp), uintptr(cfg), uintptr(shareCtx), uintptr(unsafe.Pointer(a)))
	issue34474KeepAlive(a)
	return _EGLContext(c)
}

func eglDestroyContext(disp _EGLDisplay, ctx _EGLContext) bool {
	r := _eglDestroyContext.Call(uintptr(disp), uintptr(ctx))
	return r != 0
}

func eglGetDisplay(disp NativeDisplayType) _EGLDisplay {
	d := _eglGetDisplay.Call(uintptr(disp))
	return _EGLDisplay(d)
}

func eglGetError() _EGLint {
	e := _eglGetError.Call()
	return _EGLint(e)
}

func eglGetProcAddress(name string) uintptr {
	cname := append([]byte(name), 0)
	addr := _eglGetProcAddress.Call(uintptr(unsafe.Pointer(&cname[0])))
	issue34474KeepAlive(cname)
	return addr
}

func eglInitialize(disp _EGLDisplay) (_EGLint, _EGLint, bool) {
	var maj, min _EGLint
	r := _eglInitialize.Call(uintptr(disp), uintptr(unsafe.Pointer(&maj)), uintptr(unsafe.Pointer(&min)))
	issue34474KeepAlive(&maj)
	issue34474KeepAlive(&min)
	return maj, min, r != 0
}

func eglMakeCurrent(disp _EGLDisplay, draw, read _EGLSurface, ctx _EGLContext) bool {
	r := _eglMakeCurrent.Call(uintptr(disp), uintptr(draw), uintptr(read), uintptr(ctx))
	return r != 0
}

func eglQueryString(disp _EGLDisplay, name _EGLint) string {
	r := _eglQueryString.Call(uintptr(disp), uintptr(name))
	return dl.CString(r)
}

func eglReleaseThread() bool {
	r := _eglReleaseThread.Call()
	return r != 0
}

func eglTerminate(disp _EGLDisplay) bool {
	r := _eglTerminate.Call(uintptr(disp))
	return r != 0
}

// issue34474KeepAlive calls runtime.KeepAlive as a
// workaround for golang.org/issue/34474.
func issue34474KeepAlive(v any) {
	runtime.KeepAlive(v)
}
