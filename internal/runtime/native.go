// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"os/signal"
)

// ErrEmptyProgramPath is returned when a Command has no program path.
var ErrEmptyProgramPath = errors.New("program path is empty")

// NativeRuntime starts programs directly with os/exec.
type NativeRuntime struct {
	// HoldInterrupts keeps the launcher alive when the console delivers an
	// interrupt, so that the child (which receives the same interrupt) decides
	// how to exit and its status is propagated.
	HoldInterrupts bool
}

// NewNativeRuntime creates a NativeRuntime that holds interrupts while the
// child runs.
func NewNativeRuntime() *NativeRuntime {
	return &NativeRuntime{HoldInterrupts: true}
}

// Run starts cmd, waits for it, and reports its exit code.
func (r *NativeRuntime) Run(ctx context.Context, cmd Command) *Result {
	if cmd.Path == "" {
		return NewErrorResult(ErrEmptyProgramPath)
	}

	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	c.Env = cmd.Env
	if c.Env == nil {
		c.Env = []string{}
	}
	c.Stdin = cmd.Stdin
	c.Stdout = cmd.Stdout
	c.Stderr = cmd.Stderr

	if r.HoldInterrupts {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt)
		defer signal.Stop(sigs)
	}

	if err := c.Start(); err != nil {
		return NewErrorResult(err)
	}

	return extractExitCode(c.Wait())
}
