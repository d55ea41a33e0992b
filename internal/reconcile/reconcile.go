// Package reconcile resolves a naming conflict between an existing local
// directory and the target clone destination.
//
// The user is offered removal first (to the trash when a utility is
// available, permanent otherwise), then a rename to a timestamp-suffixed
// name. Declining both leaves the directory in place and skips the clone.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jftuga/gclone/internal/output"
	"github.com/jftuga/gclone/internal/trash"
	"github.com/jftuga/gclone/internal/ui/prompt"
	"github.com/jftuga/gclone/internal/ui/styles"
)

// Outcome is the result of reconciling a target path.
type Outcome int

const (
	// NotPresent means the path did not exist; nothing was done.
	NotPresent Outcome = iota
	// Removed means the directory was trashed or deleted.
	Removed
	// Renamed means the directory was moved to a timestamp-suffixed name.
	Renamed
	// Declined means the user chose to leave the directory in place.
	Declined
)

func (o Outcome) String() string {
	switch o {
	case NotPresent:
		return "not present"
	case Removed:
		return "removed"
	case Renamed:
		return "renamed"
	case Declined:
		return "declined"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// suffixFormat renders a modification time as YYYYMMDD.HHMMSS.
const suffixFormat = "20060102.150405"

// Reconciler decides what happens to a pre-existing directory at the
// clone destination. The zero value is not usable; use New.
type Reconciler struct {
	// Confirm asks a yes/no question; only an explicit yes returns true.
	Confirm func(promptText string) bool

	// ModTime returns a path's last-modified time, used for the rename
	// suffix. Injectable so tests can pin the timestamp.
	ModTime func(path string) (time.Time, error)

	// Trash is the reversible deletion utility, nil when unavailable.
	Trash *trash.Trash
}

// New creates a Reconciler wired to the interactive prompt and, when one
// is found on PATH, a trash utility.
func New() *Reconciler {
	r := &Reconciler{
		Confirm: prompt.Confirm,
		ModTime: statModTime,
	}
	if t, ok := trash.Find(); ok {
		r.Trash = &t
	}
	return r
}

func statModTime(path string) (time.Time, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return fi.ModTime(), nil
}

// RenameTarget returns the timestamp-suffixed name a path would be
// renamed to, derived from its last-modified time in local time.
func (r *Reconciler) RenameTarget(path string) (string, error) {
	mt, err := r.ModTime(path)
	if err != nil {
		return "", err
	}
	return path + "--" + mt.Format(suffixFormat), nil
}

// Reconcile ensures the path is free for a clone, or reports that the
// user declined. After any outcome other than Declined the path does not
// exist.
func (r *Reconciler) Reconcile(ctx context.Context, path string) (Outcome, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NotPresent, nil
		}
		return Declined, err
	}

	out := output.FromContext(ctx)

	question := fmt.Sprintf("Permanently delete directory '%s'?", path)
	if r.Trash != nil {
		question = fmt.Sprintf("Move directory '%s' to the trash?", path)
	}

	if r.Confirm(question) {
		if r.Trash != nil {
			if err := r.Trash.Remove(ctx, path); err != nil {
				return Declined, fmt.Errorf("move '%s' to trash: %w", path, err)
			}
			out.Printf("%s Moved '%s' to the trash (via %s)\n", styles.Checkmark(), path, r.Trash.Name())
		} else {
			if err := os.RemoveAll(path); err != nil {
				return Declined, fmt.Errorf("delete '%s': %w", path, err)
			}
			out.Printf("%s Permanently deleted '%s'\n", styles.Checkmark(), path)
		}
		return Removed, nil
	}

	newName, err := r.RenameTarget(path)
	if err != nil {
		return Declined, err
	}

	if r.Confirm(fmt.Sprintf("Rename '%s' to '%s'?", path, newName)) {
		if err := os.Rename(path, newName); err != nil {
			return Declined, fmt.Errorf("rename '%s': %w", path, err)
		}
		out.Printf("%s Renamed '%s' to '%s'\n", styles.Checkmark(), path, newName)
		return Renamed, nil
	}

	out.Printf("%s\n", styles.MutedStyle.Render(fmt.Sprintf("Skipped: '%s' left in place, clone not attempted", path)))
	return Declined, nil
}
