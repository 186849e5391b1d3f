// SPDX-License-Identifier: Unlicense OR MIT

package gles

import "fmt"

// ParseVersion parses an OpenGL ES version string as returned by
// glGetString(GL_VERSION).
func ParseVersion(glVer string) ([2]int, error) {
	var ver [2]int
	if _, err := fmt.Sscanf(glVer, "OpenGL ES %d.%d", &ver[0], &ver[1]); err == nil {
		return ver, nil
	} else if _, err := fmt.Sscanf(glVer, "%d.%d", &ver[0], &ver[1]); err == nil {
		return ver, nil
	}
	return ver, fmt.Errorf("gles: failed to parse OpenGL ES version (%s)", glVer)
}
