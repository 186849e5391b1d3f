// SPDX-License-Identifier: Unlicense OR MIT

package egl

var eglLibNames = []string{"libEGL.dll"}
