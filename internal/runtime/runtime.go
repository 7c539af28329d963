// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"io"

	"github.com/eventlOwOp/R-with-conda/pkg/types"
)

type (
	// Command describes one child process launch.
	Command struct {
		// Path is the absolute path of the program to start.
		Path string
		// Args are the arguments after the program name, passed as discrete
		// argv elements.
		Args []string
		// Env is the complete environment block for the child, as KEY=VALUE
		// strings. A nil Env inherits nothing.
		Env []string
		// Stdin is where the child reads standard input.
		Stdin io.Reader
		// Stdout is where the child writes standard output.
		Stdout io.Writer
		// Stderr is where the child writes standard error.
		Stderr io.Writer
	}

	// Result contains the result of a child process run.
	Result struct {
		// ExitCode is the exit code of the child, or ExitFailure when it
		// could not be started.
		ExitCode types.ExitCode
		// Error is set when the child could not be started or waited on.
		// A child that ran and exited non-zero is not an error.
		Error error
	}

	// Runner starts a Command and waits for it to finish.
	Runner interface {
		Run(ctx context.Context, cmd Command) *Result
	}
)
