// SPDX-License-Identifier: Unlicense OR MIT

package gles

import (
	"fmt"

	"github.com/mrmangohands/lwjgl3/internal/dl"
)

// DispatchTable maps generation-time slot indices to entry points
// resolved from a driver. A table belongs to the context it was
// resolved against; once Init returns, a slot never changes for that
// context's lifetime.
type DispatchTable struct {
	procs [procCount]dl.Proc
}

// Init resolves every known slot against src. A symbol the driver does
// not export leaves its slot nil; absence is represented, not
// reported. Init with an unchanged src produces an identical table.
func (t *DispatchTable) Init(src ProcSource) {
	for i, name := range procNames {
		t.procs[i] = src.Lookup(name)
	}
}

// Get returns the entry point in slot index, or nil when the driver
// does not export it. It panics if index is not a generated slot
// constant; that is a generation-time invariant violation, not a
// runtime condition.
func (t *DispatchTable) Get(index int) dl.Proc {
	if index < 0 || index >= procCount {
		panic(fmt.Sprintf("gles: proc index %d out of range", index))
	}
	return t.procs[index]
}

func (t *DispatchTable) resolvedAll(indices []int) bool {
	for _, i := range indices {
		if t.procs[i] == nil {
			return false
		}
	}
	return true
}
