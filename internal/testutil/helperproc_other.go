// SPDX-License-Identifier: MPL-2.0

//go:build !unix

package testutil

// interruptParent is a no-op where console interrupts cannot be sent to a
// single process.
func interruptParent() {}
