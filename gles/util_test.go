// SPDX-License-Identifier: Unlicense OR MIT

package gles

import (
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		version string
		ver     [2]int
	}{
		{"OpenGL ES 3.2", [2]int{3, 2}},
		{"OpenGL ES 3.1 Mesa 23.1.4", [2]int{3, 1}},
		{"OpenGL ES 2.0 (ANGLE 2.1.0)", [2]int{2, 0}},
		{"3.0 Mesa", [2]int{3, 0}},
	}
	for _, test := range tests {
		ver, err := ParseVersion(test.version)
		if err != nil {
			t.Errorf("ParseVersion(%q): %v", test.version, err)
			continue
		}
		if ver != test.ver {
			t.Errorf("ParseVersion(%q): expected %v got %v", test.version, test.ver, ver)
		}
	}
}

func TestParseVersionInvalid(t *testing.T) {
	for _, v := range []string{"", "OpenGL", "Direct3D 11", "ES three"} {
		if _, err := ParseVersion(v); err == nil {
			t.Errorf("ParseVersion(%q): expected error", v)
		}
	}
}
