// SPDX-License-Identifier: MPL-2.0

//go:build unix

package testutil

import (
	"os"
	"syscall"
	"time"
)

// interruptParent sends SIGINT to the launching process and gives it time to
// react before the helper exits.
func interruptParent() {
	_ = syscall.Kill(os.Getppid(), syscall.SIGINT)
	time.Sleep(200 * time.Millisecond)
}
