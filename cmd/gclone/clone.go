package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jftuga/gclone/internal/config"
	"github.com/jftuga/gclone/internal/git"
	"github.com/jftuga/gclone/internal/github"
	"github.com/jftuga/gclone/internal/layout"
	"github.com/jftuga/gclone/internal/log"
	"github.com/jftuga/gclone/internal/output"
	"github.com/jftuga/gclone/internal/reconcile"
	"github.com/jftuga/gclone/internal/ui/styles"
)

// maxSuggestions caps the "did you mean" list on the not-found diagnostic.
const maxSuggestions = 3

// runClone is the whole program: validate the directory layout, confirm
// the repository exists, reconcile a conflicting local directory, then
// delegate to git clone.
func runClone(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	if initConfig {
		path, err := config.Init(false)
		if err != nil {
			return err
		}
		out.Printf("%s Wrote %s\n", styles.Checkmark(), path)
		return nil
	}

	owner, err := layout.Derive(workDir, cfg.Container)
	if err != nil {
		printUsage(out, "OWNER_NAME")
		var notIn *layout.ErrNotInContainer
		if errors.As(err, &notIn) {
			l.Printf("\n%s gclone must be run from a directory directly under '%s'; the parent here is '%s'.\nMove your owner directory under '%s' (e.g. %s/%s/) and try again.\n",
				styles.Cross(), notIn.Container, notIn.Parent, notIn.Container, notIn.Container, "OWNER_NAME")
		}
		return &exitError{code: 1}
	}

	// Missing or extra arguments are a help request, not an error
	if len(args) != 1 {
		printUsage(out, owner)
		return nil
	}

	repo := args[0]
	remoteURL := cfg.RemoteURL(owner, repo)
	l.Debug("derived target", "owner", owner, "repo", repo, "url", remoteURL)

	checker := github.NewChecker(cfg)
	if !checker.Exists(ctx, owner, repo) {
		l.Printf("%s Repository not found: %s\n\nPossible causes:\n  * the repository name '%s' is misspelled\n  * you do not have permission to access it\n  * no network connectivity to %s\n",
			styles.Cross(), remoteURL, repo, cfg.Host)
		if suggestions := checker.Suggest(ctx, owner, repo, maxSuggestions); len(suggestions) > 0 {
			l.Printf("\nDid you mean:\n")
			for _, s := range suggestions {
				l.Printf("  %s\n", s)
			}
		}
		return &exitError{code: 1}
	}

	outcome, err := reconcile.New().Reconcile(ctx, repo)
	if err != nil {
		return err
	}
	l.Debug("reconciled", "path", repo, "outcome", outcome)
	if outcome == reconcile.Declined {
		// The user's choice to keep the existing directory is respected
		return nil
	}

	return git.Clone(ctx, remoteURL)
}

// printUsage writes the usage text, substituting the derived owner into
// the example (or a placeholder when the layout check failed).
func printUsage(out *output.Printer, owner string) {
	out.Printf(`gclone - clone a repository into the current owner directory

Usage:
  gclone <repo-name>

Run from a directory directly under '%s'; the directory name is the
repository owner.

Example:
  cd %s/%s
  gclone my-repo        # clones %s

Flags:
  -v                    Show version
  -V, --verbose         Show external commands being executed
  -q, --quiet           Suppress all log output
      --init-config     Write the default config file and exit
`,
		cfg.Container, cfg.Container, owner, cfg.RemoteURL(owner, "my-repo"))
}
