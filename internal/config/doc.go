// SPDX-License-Identifier: MPL-2.0

// Package config reads the launcher's runtime options using Viper.
//
// The launcher takes no flags (every argument belongs to the target program)
// and reads no files, so options come only from CONDA_SHIM_* environment
// variables: CONDA_SHIM_VERBOSE, CONDA_SHIM_DRY_RUN, CONDA_SHIM_PATH_MODE and
// CONDA_SHIM_CONVENTION.
package config
