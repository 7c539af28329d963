// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"os/exec"

	"github.com/eventlOwOp/R-with-conda/pkg/types"
)

// extractExitCode determines the Result from the error returned by Wait.
func extractExitCode(err error) *Result {
	if err == nil {
		return NewExitCodeResult(types.ExitSuccess)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The child ran; a non-zero status is its answer, not our failure.
		return NewExitCodeResult(types.FromProcessState(exitErr.ExitCode()))
	}

	// I/O copy failures and similar: the child may have run, but we cannot
	// vouch for its status.
	return NewErrorResult(err)
}
