// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"os/exec"
	"path/filepath"

	"github.com/eventlOwOp/R-with-conda/pkg/types"
)

// Ways an invocation path was turned into an absolute one.
const (
	ResolvedAbsolute ResolvedBy = iota
	ResolvedWorkingDir
	ResolvedSearchPath
)

type (
	// ResolvedBy records how ResolveInvocation made the path absolute.
	ResolvedBy int

	// Invocation is the launcher's own location, derived once from argv[0].
	Invocation struct {
		// Arg0 is argv[0] exactly as received.
		Arg0 string
		// Path is the absolute, cleaned launcher path.
		Path types.FilesystemPath
		// Dir is the directory containing the launcher.
		Dir string
		// File is the launcher's file name.
		File string
		// By records how Path was obtained.
		By ResolvedBy
	}

	// LookPathFunc searches the executable search path for a bare program
	// name, like exec.LookPath.
	LookPathFunc func(file string) (string, error)
)

// ResolveInvocation turns argv[0] into an Invocation.
//
// Absolute paths are cleaned. A bare program name (no directory component) is
// what a shell passes when it found the launcher through PATH, so it is
// looked up with lookPath first; if that fails, or for any other relative
// path, the path is resolved against the working directory. lookPath may be
// nil to skip the search.
func ResolveInvocation(arg0 string, lookPath LookPathFunc) (Invocation, error) {
	if err := types.FilesystemPath(arg0).Validate(); err != nil {
		return Invocation{}, &PathResolutionError{Path: arg0, Err: err}
	}

	inv := Invocation{Arg0: arg0, By: ResolvedAbsolute}
	p := arg0
	if !filepath.IsAbs(p) {
		inv.By = ResolvedWorkingDir
		if lookPath != nil && filepath.Base(p) == p {
			// exec.ErrDot still reports the match found in the working directory.
			if found, err := lookPath(p); found != "" && (err == nil || errors.Is(err, exec.ErrDot)) {
				p = found
				inv.By = ResolvedSearchPath
			}
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return Invocation{}, &PathResolutionError{Path: arg0, Err: err}
		}
		p = abs
	}
	p = filepath.Clean(p)
	inv.Path = types.FilesystemPath(p)

	dir, file := filepath.Split(p)
	dir = filepath.Clean(dir)
	if file == "" || dir == "" || dir == p {
		return Invocation{}, &PathParseError{Path: p}
	}
	inv.Dir = dir
	inv.File = file
	return inv, nil
}
