// SPDX-License-Identifier: MPL-2.0

// Package cmd is the command layer of the conda shim.
//
// The root command defines no flags and no subcommands: every argument after
// argv[0] belongs to the target program, including "--help", "--version" and
// names cobra reserves such as "__complete". Options are read from CONDA_SHIM_*
// environment variables by internal/config.
package cmd
