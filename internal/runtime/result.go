// SPDX-License-Identifier: MPL-2.0

package runtime

import "github.com/eventlOwOp/R-with-conda/pkg/types"

// NewErrorResult creates a Result for a child that could not be run.
func NewErrorResult(err error) *Result {
	return &Result{ExitCode: types.ExitFailure, Error: err}
}

// NewExitCodeResult creates a Result with the given exit code and no error.
// Use this for children that ran to completion, whatever their status.
func NewExitCodeResult(code types.ExitCode) *Result {
	return &Result{ExitCode: code}
}
