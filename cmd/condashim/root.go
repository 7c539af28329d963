// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/eventlOwOp/R-with-conda/internal/config"
	"github.com/eventlOwOp/R-with-conda/internal/launcher"
	"github.com/eventlOwOp/R-with-conda/pkg/platform"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// app holds what the root command needs from the process. Tests replace
// arg0 and configure to run the command against a fake environment tree.
type app struct {
	// arg0 returns the launcher's own argv[0].
	arg0 func() string
	// configure adjusts the launcher before it prepares the launch.
	configure func(*launcher.Launcher)

	// verbose is set once the configuration is loaded.
	verbose bool
}

func newApp() *app {
	return &app{arg0: func() string { return os.Args[0] }}
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

func (a *app) rootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "condashim [args...]",
		Short: "Run the conda environment program this launcher stands in for",
		Long: TitleStyle.Render("condashim") + `

Placed as <env>/Scripts/<name>.conda.exe, runs <env>/Scripts/<name>.exe with
the environment's library directories on PATH. Every argument is forwarded.

Environment:
  CONDA_SHIM_VERBOSE     debug logging and full error chains
  CONDA_SHIM_DRY_RUN     print the resolved launch instead of running it
  CONDA_SHIM_PATH_MODE   auto (default) or always
  CONDA_SHIM_CONVENTION  auto (default), windows or posix`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               a.run,
	}
}

// forwardArgs puts "--" in front of args so cobra stops looking for a
// subcommand name, which would otherwise route a leading "__complete" to
// cobra's hidden completion command. run drops the marker again.
func forwardArgs(args []string) []string {
	return append([]string{"--"}, args...)
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.verbose = cfg.Verbose

	level := log.WarnLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "condashim", Level: level})

	conv, err := launcher.ConventionByName(launcher.ConventionName(cfg.Convention), platform.Current())
	if err != nil {
		return err
	}

	l := launcher.New(conv, logger)
	l.PathMode = launcher.PathMode(cfg.PathMode)
	if a.configure != nil {
		a.configure(l)
	}

	argv := append([]string{a.arg0()}, args...)
	if cfg.DryRun {
		launch, err := l.Prepare(argv)
		if err != nil {
			return err
		}
		renderDryRun(cmd.OutOrStdout(), launch)
		return nil
	}

	code, err := l.Run(cmd.Context(), argv)
	if err != nil {
		return err
	}
	if !code.IsSuccess() {
		return &ExitError{Code: code}
	}
	return nil
}

// execute runs root through fang with args forwarded verbatim.
func (a *app) execute(ctx context.Context, root *cobra.Command, args []string) error {
	root.SetArgs(forwardArgs(args))
	return fang.Execute(
		ctx,
		root,
		fang.WithVersion(getVersionString()),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
		fang.WithErrorHandler(a.errorHandler()),
	)
}

// Execute runs the shim and exits the process with the target's exit code.
// This is called by main.main().
func Execute() {
	a := newApp()
	if err := a.execute(context.Background(), a.rootCmd(), os.Args[1:]); err != nil {
		os.Exit(exitCodeFor(err).Int())
	}
}
