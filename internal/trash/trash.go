// Package trash probes for a reversible deletion utility on the host.
//
// When a trash utility is available, removed directories go to a
// recoverable location instead of being erased. Absence is not an error;
// callers fall back to permanent deletion.
package trash

import (
	"context"
	"os/exec"
	"runtime"

	"github.com/jftuga/gclone/internal/execx"
)

// Trash is a handle to a trash utility found on PATH.
type Trash struct {
	name string
	args []string // argument prefix before the target path
}

// Name returns the utility's executable name.
func (t Trash) Name() string {
	return t.name
}

// Remove moves a path to the trash via the utility.
func (t Trash) Remove(ctx context.Context, path string) error {
	return execx.RunContext(ctx, "", t.name, append(append([]string{}, t.args...), path)...)
}

// candidates returns the utilities to probe, in preference order, for the
// current OS family.
func candidates() []Trash {
	if runtime.GOOS == "darwin" {
		return []Trash{
			{name: "trash"},
		}
	}
	return []Trash{
		{name: "trash-put"},
		{name: "gio", args: []string{"trash"}},
		{name: "trash"},
	}
}

// Find probes PATH for a trash utility. The boolean is false when none is
// available.
func Find() (Trash, bool) {
	return find(exec.LookPath)
}

// find is the injectable core of Find.
func find(lookPath func(string) (string, error)) (Trash, bool) {
	for _, c := range candidates() {
		if _, err := lookPath(c.name); err == nil {
			return c, true
		}
	}
	return Trash{}, false
}
