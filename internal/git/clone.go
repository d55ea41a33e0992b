package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/jftuga/gclone/internal/log"
)

// ExitError reports a git subprocess that exited non-zero. The code is
// propagated unchanged as the program's exit status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("git exited with status %d", e.Code)
}

// Clone runs "git clone <url>" in the working directory with the user's
// terminal attached, so git's own progress and errors pass through.
func Clone(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l := log.FromContext(ctx)
	done := l.Command("", "git", "clone", url)
	start := time.Now()

	cmd := exec.CommandContext(ctx, "git", "clone", url)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	done(time.Since(start))

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Code: exitErr.ExitCode()}
		}
		return err
	}
	return nil
}
