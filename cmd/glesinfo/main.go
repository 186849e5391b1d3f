// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux || freebsd || windows

// Command glesinfo opens the default EGL display, creates a
// surfaceless OpenGL ES context and reports what the driver supports:
// versions, announced extensions, and the resolution state of every
// extension entry point known to the gles dispatch table.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/mrmangohands/lwjgl3/egl"
	"github.com/mrmangohands/lwjgl3/gles"
	"github.com/mrmangohands/lwjgl3/internal/dl"
)

var (
	extsOnly = flag.Bool("exts", false, "print only the announced extension list")
	checked  = flag.Bool("checked", false, "enable checked extension dispatch")
)

func main() {
	flag.Parse()
	// The context is bound to this thread until we are done.
	runtime.LockOSThread()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "glesinfo: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	disp, err := egl.NewDisplay(egl.DefaultDisplay)
	if err != nil {
		return err
	}
	defer disp.Terminate()
	ctx, err := egl.NewContext(disp)
	if err != nil {
		return err
	}
	defer ctx.Release()
	if err := ctx.MakeCurrent(); err != nil {
		return err
	}
	defer ctx.ReleaseCurrent()

	// Prefer symbols exported by the client library itself, falling
	// back to eglGetProcAddress for the rest.
	src := gles.ProcSource(disp)
	if lib, err := dl.Open(glesLibNames...); err == nil {
		defer lib.Close()
		src = gles.MultiSource{lib, disp}
	}
	f, err := gles.NewFunctions(src, gles.Config{Checked: *checked})
	if err != nil {
		return err
	}
	caps := f.Capabilities()
	if *extsOnly {
		for _, ext := range caps.Extensions() {
			fmt.Println(ext)
		}
		return nil
	}
	eglMajor, eglMinor := disp.Version()
	fmt.Printf("EGL version:  %d.%d (%s)\n", eglMajor, eglMinor, disp.Vendor())
	fmt.Printf("GLES version: %d.%d (context client version %d)\n", caps.Version[0], caps.Version[1], ctx.ClientVersion())
	fmt.Printf("Vendor:       %s\n", caps.Vendor)
	fmt.Printf("Renderer:     %s\n", caps.Renderer)
	fmt.Printf("Extensions:   %d announced\n\n", len(caps.Extensions()))
	for _, st := range f.ExtensionStatus() {
		state := "unsupported"
		switch {
		case st.Announced && st.Resolved:
			state = "supported"
		case st.Announced && !st.Resolved:
			state = "announced, missing entry points"
		case !st.Announced && st.Resolved:
			state = "unannounced, entry points present"
		}
		fmt.Printf("%-40s %s\n", st.Name, state)
	}
	return nil
}
