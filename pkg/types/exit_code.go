// SPDX-License-Identifier: MPL-2.0

package types

import (
	"strconv"
)

const (
	// ExitSuccess is returned when the launched program succeeded.
	ExitSuccess ExitCode = 0
	// ExitFailure is returned for every failure that happens before the target
	// program is launched.
	ExitFailure ExitCode = 1
)

// ExitCode represents a process exit status code.
// The zero value (0) means success. Windows exit codes are 32-bit, so no upper
// bound is enforced; negative values (signal termination on POSIX) are
// normalized by FromProcessState.
type ExitCode int

// FromProcessState converts the raw code reported by os.ProcessState.ExitCode.
// A process killed by a signal reports -1, which maps to ExitFailure.
func FromProcessState(code int) ExitCode {
	if code < 0 {
		return ExitFailure
	}
	return ExitCode(code)
}

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

// Int returns the code as an int suitable for os.Exit.
func (c ExitCode) Int() int { return int(c) }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
