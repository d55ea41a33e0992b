package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/jftuga/gclone/internal/config"
	"github.com/jftuga/gclone/internal/log"
	"github.com/jftuga/gclone/internal/output"
)

// testCommand builds a command whose context writes primary output and
// diagnostics into buffers. Mutates the package globals, so these tests
// do not run in parallel.
func testCommand(wd string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cfg = config.Default()
	workDir = wd
	initConfig = false

	var stdout, stderr bytes.Buffer
	ctx := output.WithPrinter(context.Background(), &stdout)
	ctx = log.WithLogger(ctx, log.New(&stderr, false, false))

	cmd := &cobra.Command{}
	cmd.SetContext(ctx)
	return cmd, &stdout, &stderr
}

func TestRunClone_InvalidLayout(t *testing.T) {
	cmd, stdout, stderr := testCommand(filepath.Join(t.TempDir(), "projects", "jftuga"))

	err := runClone(cmd, []string{"gclone"})
	var reported *exitError
	if !errors.As(err, &reported) || reported.code != 1 {
		t.Fatalf("runClone = %v, want exitError{1}", err)
	}
	if !strings.Contains(stdout.String(), "gclone <repo-name>") {
		t.Errorf("stdout = %q, want usage text", stdout.String())
	}
	if !strings.Contains(stdout.String(), "OWNER_NAME") {
		t.Errorf("stdout = %q, want placeholder owner", stdout.String())
	}
	if !strings.Contains(stderr.String(), "directly under 'github'") {
		t.Errorf("stderr = %q, want corrective note", stderr.String())
	}
}

func TestRunClone_NoArgsIsHelp(t *testing.T) {
	cmd, stdout, _ := testCommand(filepath.Join(t.TempDir(), "github", "jftuga"))

	if err := runClone(cmd, nil); err != nil {
		t.Fatalf("runClone = %v, want nil (help request)", err)
	}
	got := stdout.String()
	if !strings.Contains(got, "cd github/jftuga") {
		t.Errorf("stdout = %q, want example with derived owner", got)
	}
	if !strings.Contains(got, "https://github.com/jftuga/my-repo") {
		t.Errorf("stdout = %q, want derived example URL", got)
	}
}

func TestRunClone_TooManyArgsIsHelp(t *testing.T) {
	cmd, stdout, _ := testCommand(filepath.Join(t.TempDir(), "github", "jftuga"))

	if err := runClone(cmd, []string{"a", "b"}); err != nil {
		t.Fatalf("runClone = %v, want nil (help request)", err)
	}
	if !strings.Contains(stdout.String(), "Usage:") {
		t.Errorf("stdout = %q, want usage text", stdout.String())
	}
}

func TestVersionString(t *testing.T) {
	got := versionString()
	if !strings.HasPrefix(got, "gclone v") {
		t.Errorf("versionString = %q, want gclone v prefix", got)
	}
	if !strings.Contains(got, projectURL) {
		t.Errorf("versionString = %q, want project URL", got)
	}
}

func TestExitErrorMessage(t *testing.T) {
	err := &exitError{code: 1}
	if got := err.Error(); got != "exit status 1" {
		t.Errorf("Error() = %q", got)
	}
}
