// SPDX-License-Identifier: Unlicense OR MIT

package main

var glesLibNames = []string{"libGLESv2.dll"}
