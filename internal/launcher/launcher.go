// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"

	"github.com/eventlOwOp/R-with-conda/internal/runtime"
	"github.com/eventlOwOp/R-with-conda/pkg/types"
)

// Launcher runs the program a shim stands in for.
//
// The zero value is not usable; create one with New and override fields as
// needed (tests swap Runner, Environ and LookPath).
type Launcher struct {
	// Convention supplies the platform-specific names.
	Convention Convention
	// PathMode selects whether PATH augmentation may be skipped.
	PathMode PathMode
	// Runner starts the child process.
	Runner runtime.Runner
	// Logger receives diagnostics. Warnings are shown by default.
	Logger *log.Logger
	// Environ returns the inherited environment.
	Environ func() []string
	// LookPath resolves bare program names found in argv[0].
	LookPath LookPathFunc

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Launch is a prepared child process, ready to run.
type Launch struct {
	Plan    *Plan
	PATH    PathDecision
	Command runtime.Command
}

// New creates a Launcher for conv that starts real processes.
func New(conv Convention, logger *log.Logger) *Launcher {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "condashim", Level: log.WarnLevel})
	}
	return &Launcher{
		Convention: conv,
		PathMode:   PathModeAuto,
		Runner:     runtime.NewNativeRuntime(),
		Logger:     logger,
		Environ:    os.Environ,
		LookPath:   exec.LookPath,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}
}

// Prepare resolves argv (argv[0] is the launcher itself) into a Launch.
// Every returned error is an *issue.ActionableError wrapping one of this
// package's typed errors.
func (l *Launcher) Prepare(argv []string) (*Launch, error) {
	arg0 := ""
	if len(argv) > 0 {
		arg0 = argv[0]
	}

	inv, err := ResolveInvocation(arg0, l.LookPath)
	if err != nil {
		return nil, l.describe(err)
	}
	l.logInvocation(inv)

	plan, err := NewPlan(inv, l.Convention)
	if err != nil {
		return nil, l.describe(err)
	}
	l.Logger.Debug("resolved environment",
		"root", plan.EnvRoot,
		"target", plan.Target,
		"search_dirs", plan.SearchDirs)

	environ := l.Environ()
	inherited, _ := runtime.LookupEnv(environ, "PATH", l.Convention.EnvCaseInsensitive)
	decision := DecidePath(plan, inherited, l.Convention, l.PathMode)

	childEnv := environ
	if decision.Augmented {
		childEnv = runtime.WithEnv(environ, "PATH", decision.Value, l.Convention.EnvCaseInsensitive)
	} else {
		l.Logger.Debug("PATH already holds the environment directories, passing it through")
	}

	var args []string
	if len(argv) > 1 {
		args = append(args, argv[1:]...)
	}

	return &Launch{
		Plan: plan,
		PATH: decision,
		Command: runtime.Command{
			Path:   plan.Target.String(),
			Args:   args,
			Env:    childEnv,
			Stdin:  l.Stdin,
			Stdout: l.Stdout,
			Stderr: l.Stderr,
		},
	}, nil
}

// Run prepares argv and runs the target, returning the target's exit code.
// When an error is returned nothing was launched (or the launch itself
// failed) and the exit code is types.ExitFailure.
func (l *Launcher) Run(ctx context.Context, argv []string) (types.ExitCode, error) {
	launch, err := l.Prepare(argv)
	if err != nil {
		return types.ExitFailure, err
	}
	return l.Execute(ctx, launch)
}

// Execute runs a prepared Launch.
func (l *Launcher) Execute(ctx context.Context, launch *Launch) (types.ExitCode, error) {
	l.Logger.Debug("launching",
		"command", QuoteCommand(launch.Command.Path, launch.Command.Args),
		"path_augmented", launch.PATH.Augmented)

	result := l.Runner.Run(ctx, launch.Command)
	if result.Error != nil {
		return types.ExitFailure, l.describe(&LaunchError{Target: launch.Command.Path, Err: result.Error})
	}
	l.Logger.Debug("target exited", "code", result.ExitCode)
	return result.ExitCode, nil
}

func (l *Launcher) logInvocation(inv Invocation) {
	switch inv.By {
	case ResolvedWorkingDir:
		l.Logger.Warn("launcher started with a relative path; environment detection depends on the working directory",
			"arg0", inv.Arg0, "resolved", inv.Path)
	case ResolvedSearchPath:
		l.Logger.Debug("launcher found through PATH", "arg0", inv.Arg0, "resolved", inv.Path)
	case ResolvedAbsolute:
		l.Logger.Debug("launcher path", "path", inv.Path)
	}
}
