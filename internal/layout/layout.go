// Package layout derives the repository owner from the working directory.
//
// gclone enforces the convention <container>/<owner>/: the current
// directory's name is the owner, and its parent must match the configured
// container name (default "github").
package layout

import (
	"fmt"
	"path/filepath"
)

// ErrNotInContainer reports a working directory whose parent does not
// match the expected container name.
type ErrNotInContainer struct {
	Container string // expected parent directory name
	Parent    string // observed parent directory name
}

func (e *ErrNotInContainer) Error() string {
	return fmt.Sprintf("parent directory is %q, expected %q", e.Parent, e.Container)
}

// Derive returns the owner name for a working directory, failing unless
// the directory sits directly under the container directory.
func Derive(wd, container string) (string, error) {
	owner := filepath.Base(wd)
	parent := filepath.Base(filepath.Dir(wd))
	if parent != container {
		return "", &ErrNotInContainer{Container: container, Parent: parent}
	}
	return owner, nil
}
