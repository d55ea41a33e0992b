package git

import (
	"context"

	"github.com/jftuga/gclone/internal/execx"
)

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// runGit executes a git command with context support and verbose logging.
func runGit(ctx context.Context, dir string, args ...string) error {
	return execx.RunContext(ctx, "", "git", gitArgs(dir, args)...)
}

// LsRemote probes a remote URL by listing its references.
// A nil error means the remote is reachable and exists; an empty
// repository still probes successfully.
func LsRemote(ctx context.Context, url string) error {
	return runGit(ctx, "", "ls-remote", url)
}
