// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/fang"

	"github.com/eventlOwOp/R-with-conda/internal/issue"
	"github.com/eventlOwOp/R-with-conda/internal/launcher"
)

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// errorHandler returns the fang error handler. The target's own non-zero exit
// is not an error of the shim and prints nothing.
func (a *app) errorHandler() fang.ErrorHandler {
	return func(w io.Writer, _ fang.Styles, err error) {
		var exitErr *ExitError
		if errors.As(err, &exitErr) && exitErr.Err == nil {
			return
		}
		fmt.Fprintln(w, ErrorStyle.Render("condashim: ")+formatErrorForDisplay(err, a.verbose))
	}
}

// renderDryRun writes the resolved launch without running it.
func renderDryRun(w io.Writer, launch *launcher.Launch) {
	plan := launch.Plan
	row := func(label, value string) {
		fmt.Fprintln(w, LabelStyle.Render(label)+value)
	}

	fmt.Fprintln(w, TitleStyle.Render("condashim dry run"))
	row("launcher", PathStyle.Render(plan.Invocation.Path.String()))
	row("target", PathStyle.Render(plan.Target.String()))
	row("env root", PathStyle.Render(plan.EnvRoot.String()))
	if len(plan.SearchDirs) == 0 {
		row("search dirs", WarningStyle.Render("(none exist)"))
	} else {
		row("search dirs", strings.Join(plan.SearchDirs, ", "))
	}
	if launch.PATH.Augmented {
		row("PATH", SuccessStyle.Render("augmented"))
	} else {
		row("PATH", WarningStyle.Render("inherited unchanged"))
	}
	row("", launch.PATH.Value)
	row("command", PathStyle.Render(launcher.QuoteCommand(launch.Command.Path, launch.Command.Args)))
}
