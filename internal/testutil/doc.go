// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Besides the Must* helpers it offers EnvTree, a fake conda environment laid
// out under a temporary directory, and a helper-process protocol that lets a
// copy of the test binary stand in for the target program of the launcher.
package testutil
