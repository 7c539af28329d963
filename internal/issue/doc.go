// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors for operator-facing diagnostics.
//
// Every failure the launcher reports before starting the target program is an
// ActionableError: it names the step that failed, the path involved, and what
// the operator can change to fix it.
package issue
