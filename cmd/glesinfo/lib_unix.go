// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux || freebsd

package main

var glesLibNames = []string{"libGLESv2.so.2", "libGLESv2.so"}
