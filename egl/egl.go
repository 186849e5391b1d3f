// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux || freebsd || windows

// Package egl opens EGL displays and creates surfaceless OpenGL ES
// contexts. A Display doubles as the symbol source the gles package
// resolves its dispatch table from, through eglGetProcAddress.
package egl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mrmangohands/lwjgl3/internal/dl"
)

type (
	_EGLint     int32
	_EGLDisplay uintptr
	_EGLConfig  uintptr
	_EGLContext uintptr
	_EGLSurface uintptr

	// NativeDisplayType is the platform display handle passed to
	// eglGetDisplay.
	NativeDisplayType uintptr
)

// DefaultDisplay selects the platform's default display.
const DefaultDisplay NativeDisplayType = 0

var (
	nilEGLDisplay _EGLDisplay
	nilEGLSurface _EGLSurface
	nilEGLContext _EGLContext
	nilEGLConfig  _EGLConfig
)

const (
	_EGL_BLUE_SIZE              = 0x3022
	_EGL_CONFIG_CAVEAT          = 0x3027
	_EGL_CONTEXT_CLIENT_VERSION = 0x3098
	_EGL_EXTENSIONS             = 0x3055
	_EGL_GREEN_SIZE             = 0x3023
	_EGL_NONE                   = 0x3038
	_EGL_OPENGL_ES2_BIT         = 0x4
	_EGL_PBUFFER_BIT            = 0x1
	_EGL_RED_SIZE               = 0x3024
	_EGL_RENDERABLE_TYPE        = 0x3040
	_EGL_SURFACE_TYPE           = 0x3033
	_EGL_VENDOR                 = 0x3053
	_EGL_VERSION                = 0x3054
)

// Display is an initialized EGL display connection.
type Display struct {
	disp         _EGLDisplay
	major, minor int
	exts         []string
}

// NewDisplay opens and initializes the EGL display for nd.
func NewDisplay(nd NativeDisplayType) (*Display, error) {
	if err := loadEGL(); err != nil {
		return nil, err
	}
	// eglGetDisplay does not set the error state on failure; it only
	// returns EGL_NO_DISPLAY.
	disp := eglGetDisplay(nd)
	if disp == nilEGLDisplay {
		return nil, errors.New("egl: eglGetDisplay returned no display")
	}
	major, minor, ok := eglInitialize(disp)
	if !ok {
		return nil, lastError("eglInitialize")
	}
	d := &Display{
		disp:  disp,
		major: int(major),
		minor: int(minor),
	}
	d.exts = strings.Split(eglQueryString(disp, _EGL_EXTENSIONS), " ")
	return d, nil
}

// Version reports the EGL major and minor version of the display.
func (d *Display) Version() (major, minor int) {
	return d.major, d.minor
}

// Vendor reports the EGL implementation vendor string.
func (d *Display) Vendor() string {
	return eglQueryString(d.disp, _EGL_VENDOR)
}

// VersionString reports the EGL version string of the display.
func (d *Display) VersionString() string {
	return eglQueryString(d.disp, _EGL_VERSION)
}

// Extensions returns the EGL extensions announced by the display.
func (d *Display) Extensions() []string {
	return d.exts
}

// SupportsExtension reports whether the display announces the EGL
// extension ext.
func (d *Display) SupportsExtension(ext string) bool {
	return hasExtension(d.exts, ext)
}

// Lookup resolves a client API entry point through eglGetProcAddress.
// It returns nil when the driver does not export name.
func (d *Display) Lookup(name string) dl.Proc {
	return dl.ProcAddress(eglGetProcAddress(name))
}

// Terminate releases the display connection. The display must not be
// used afterwards.
func (d *Display) Terminate() {
	if d.disp != nilEGLDisplay {
		eglTerminate(d.disp)
		d.disp = nilEGLDisplay
	}
}

// Context is a surfaceless OpenGL ES context.
type Context struct {
	disp          *Display
	config        _EGLConfig
	ctx           _EGLContext
	clientVersion int
}

// NewContext creates an OpenGL ES context on d without a drawing
// surface. It asks for an ES 3 context first and falls back to ES 2,
// leaving newer entry points to extension dispatch.
//
// The context has thread affinity once current; callers that care pin
// their goroutine with runtime.LockOSThread before MakeCurrent.
func NewContext(d *Display) (*Context, error) {
	if !d.SupportsExtension("EGL_KHR_surfaceless_context") {
		return nil, errors.New("egl: EGL_KHR_surfaceless_context not supported")
	}
	attribs := []_EGLint{
		_EGL_RENDERABLE_TYPE, _EGL_OPENGL_ES2_BIT,
		_EGL_SURFACE_TYPE, _EGL_PBUFFER_BIT,
		_EGL_BLUE_SIZE, 8,
		_EGL_GREEN_SIZE, 8,
		_EGL_RED_SIZE, 8,
		_EGL_CONFIG_CAVEAT, _EGL_NONE,
		_EGL_NONE,
	}
	cfg, ok := eglChooseConfig(d.disp, attribs)
	if !ok {
		return nil, lastError("eglChooseConfig")
	}
	if cfg == nilEGLConfig {
		return nil, errors.New("egl: eglChooseConfig returned 0 configs")
	}
	clientVersion := 3
	ctxAttribs := []_EGLint{
		_EGL_CONTEXT_CLIENT_VERSION, 3,
		_EGL_NONE,
	}
	ctx := eglCreateContext(d.disp, cfg, nilEGLContext, ctxAttribs)
	if ctx == nilEGLContext {
		clientVersion = 2
		ctxAttribs = []_EGLint{
			_EGL_CONTEXT_CLIENT_VERSION, 2,
			_EGL_NONE,
		}
		ctx = eglCreateContext(d.disp, cfg, nilEGLContext, ctxAttribs)
		if ctx == nilEGLContext {
			return nil, lastError("eglCreateContext")
		}
	}
	return &Context{
		disp:          d,
		config:        cfg,
		ctx:           ctx,
		clientVersion: clientVersion,
	}, nil
}

// ClientVersion reports the OpenGL ES major version the context was
// created with.
func (c *Context) ClientVersion() int {
	return c.clientVersion
}

// MakeCurrent binds the context to the calling thread.
func (c *Context) MakeCurrent() error {
	if !eglMakeCurrent(c.disp.disp, nilEGLSurface, nilEGLSurface, c.ctx) {
		return lastError("eglMakeCurrent")
	}
	return nil
}

// ReleaseCurrent unbinds whatever context is current on the calling
// thread.
func (c *Context) ReleaseCurrent() {
	eglMakeCurrent(c.disp.disp, nilEGLSurface, nilEGLSurface, nilEGLContext)
}

// Release destroys the context. It must not be current on any thread.
func (c *Context) Release() {
	if c.ctx != nilEGLContext {
		eglDestroyContext(c.disp.disp, c.ctx)
		eglReleaseThread()
		c.ctx = nilEGLContext
	}
}

func hasExtension(exts []string, ext string) bool {
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

func lastError(call string) error {
	code := eglGetError()
	return fmt.Errorf("egl: %s failed: %s (0x%x)", call, errorName(code), uint32(code))
}
