package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jftuga/gclone/internal/config"
	"github.com/jftuga/gclone/internal/git"
	"github.com/jftuga/gclone/internal/log"
	"github.com/jftuga/gclone/internal/output"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	initConfig bool

	// Shared state injected into the command
	cfg     config.Config
	workDir string
)

// exitError carries an exit code for failures already reported to the user.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// rootCmd is the whole CLI; gclone has no subcommands.
var rootCmd = &cobra.Command{
	Use:   "gclone <repo-name>",
	Short: "Clone a repository into the <container>/<owner>/ directory convention",
	Long: `gclone clones a repository for the owner derived from the current directory.

Run it from a directory directly under the container directory (default
"github"): the directory name is the owner, and the single argument is the
repository to clone. A pre-existing directory of the same name is moved to
the trash, deleted, or renamed with a timestamp suffix before cloning.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}
		// Flags are parsed by now; attach the logger here so --verbose
		// and --quiet take effect.
		logger := log.New(os.Stderr, verbose, quiet)
		cmd.SetContext(log.WithLogger(cmd.Context(), logger))
		if initConfig {
			// Writing the config file does not need git
			return nil
		}
		return git.CheckGit()
	},
	RunE: runClone,
}

// Execute loads config, wires the context, and maps errors to exit codes.
func Execute() {
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = loadedCfg

	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gclone: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Printer on stdout for primary output; the logger is attached after
	// flag parsing in PersistentPreRunE
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		var cloneErr *git.ExitError
		if errors.As(err, &cloneErr) {
			// The delegated clone's exit status is the program's
			os.Exit(cloneErr.Code)
		}
		var reported *exitError
		if errors.As(err, &reported) {
			os.Exit(reported.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "V", false, "Show external commands being executed")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.Flags().BoolVar(&initConfig, "init-config", false, "Write the default config file and exit")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Cobra picks -v as the version shorthand since --verbose uses -V
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}
