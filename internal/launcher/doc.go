// SPDX-License-Identifier: MPL-2.0

// Package launcher turns a shim invocation into a child process launch.
//
// A launcher binary named <name><suffix> lives in the scripts directory of an
// environment (for conda on Windows: <env>\Scripts\<name>.conda.exe). It
// resolves its own path, checks that placement, finds the sibling <name><ext>,
// computes the PATH the target needs (the environment root plus whichever of a
// fixed list of subdirectories exist, ahead of the inherited PATH), and runs
// the target with the remaining arguments forwarded unchanged.
//
// The platform-specific names live in a Convention so the same code can be
// driven with POSIX conventions in tests. Nothing here mutates the launcher's
// own environment: the child receives an explicit environment block.
package launcher
