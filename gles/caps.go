// SPDX-License-Identifier: Unlicense OR MIT

package gles

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type extensionDesc struct {
	name  string
	procs []int
}

// Capabilities describes the context a Functions value was resolved
// against: its OpenGL ES version, driver identification strings, the
// announced extension set, and one flag per known extension. A flag is
// true only when the driver announces the extension and every one of
// its entry points resolved.
type Capabilities struct {
	// Version is the context's OpenGL ES version as [major, minor].
	Version  [2]int
	Vendor   string
	Renderer string

	exts map[string]struct{}

	NVViewportSwizzle              bool
	EXTDisjointTimerQuery          bool
	OESVertexArrayObject           bool
	EXTMultisampledRenderToTexture bool
	NVFramebufferBlit              bool
	NVScissorExclusive             bool
	KHRBlendEquationAdvanced       bool
	EXTBufferStorage               bool
	EXTClipControl                 bool
	OESCopyImage                   bool
}

// HasExtension reports whether the context announces ext, whether or
// not this package dispatches any of its functions.
func (c *Capabilities) HasExtension(ext string) bool {
	_, ok := c.exts[ext]
	return ok
}

// Extensions returns the announced extension names, sorted.
func (c *Capabilities) Extensions() []string {
	exts := maps.Keys(c.exts)
	slices.Sort(exts)
	return exts
}

func newCapabilities(f *Functions) (Capabilities, error) {
	caps := Capabilities{exts: make(map[string]struct{})}
	ver, err := ParseVersion(f.GetString(VERSION))
	if err != nil {
		return Capabilities{}, err
	}
	caps.Version = ver
	caps.Vendor = f.GetString(VENDOR)
	caps.Renderer = f.GetString(RENDERER)
	if ver[0] >= 3 && f.getStringi != nil {
		// glGetString(GL_EXTENSIONS) is unreliable on modern
		// contexts; enumerate with glGetStringi.
		n := f.GetInteger(NUM_EXTENSIONS)
		for i := 0; i < n; i++ {
			caps.exts[f.GetStringi(EXTENSIONS, i)] = struct{}{}
		}
	} else {
		for _, ext := range strings.Split(f.GetString(EXTENSIONS), " ") {
			if ext != "" {
				caps.exts[ext] = struct{}{}
			}
		}
	}
	for _, ext := range extensionProcs {
		supported := caps.HasExtension(ext.name) && f.table.resolvedAll(ext.procs)
		caps.setExtensionFlag(ext.name, supported)
	}
	return caps, nil
}

// ExtensionStatus describes one known extension of the dispatch table.
type ExtensionStatus struct {
	// Name is the extension string, e.g. "GL_NV_viewport_swizzle".
	Name string
	// Announced reports whether the context lists the extension.
	Announced bool
	// Resolved reports whether every entry point of the extension
	// resolved to a non-nil pointer.
	Resolved bool
}

// ExtensionStatus reports, for every extension known to the dispatch
// table, whether the context announces it and whether all of its entry
// points resolved. The two usually agree; a disagreement points at a
// broken driver.
func (f *Functions) ExtensionStatus() []ExtensionStatus {
	status := make([]ExtensionStatus, 0, len(extensionProcs))
	for _, ext := range extensionProcs {
		status = append(status, ExtensionStatus{
			Name:      ext.name,
			Announced: f.caps.HasExtension(ext.name),
			Resolved:  f.table.resolvedAll(ext.procs),
		})
	}
	return status
}
