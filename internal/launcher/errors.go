// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per failure category. Every error returned by the
// launcher wraps exactly one of them, so callers can classify failures with
// errors.Is regardless of how much context was added on top.
var (
	ErrPathResolution  = errors.New("launcher path could not be made absolute")
	ErrPathParse       = errors.New("launcher directory or file name could not be determined")
	ErrDirectoryAccess = errors.New("launcher directory is missing or inaccessible")
	ErrPlacement       = errors.New("launcher is not placed in an environment scripts directory")
	ErrMissingPath     = errors.New("required path does not exist")
	ErrLaunch          = errors.New("target program could not be started")
)

// Kinds of path reported by MissingPathError.
const (
	PathKindEnvRoot PathKind = "environment root"
	PathKindTarget  PathKind = "target program"
)

type (
	// PathKind names the role of a path in a MissingPathError.
	PathKind string

	// PathResolutionError is returned when the invocation path cannot be
	// made absolute.
	PathResolutionError struct {
		Path string
		Err  error
	}

	// PathParseError is returned when the absolute invocation path has no
	// usable directory or file name component.
	PathParseError struct {
		Path string
	}

	// DirectoryAccessError is returned when the launcher's directory cannot
	// be inspected.
	DirectoryAccessError struct {
		Dir string
		Err error
	}

	// PlacementError is returned when the launcher is not
	// <env>/<ScriptsDir>/<name><MarkerSuffix>.
	PlacementError struct {
		Dir          string
		File         string
		ScriptsDir   string
		MarkerSuffix string
	}

	// MissingPathError is returned when the environment root or the target
	// program does not exist.
	MissingPathError struct {
		Kind PathKind
		Path string
	}

	// LaunchError is returned when the target process cannot be created.
	LaunchError struct {
		Target string
		Err    error
	}
)

func (e *PathResolutionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cannot convert %q to an absolute path", e.Path)
	}
	return fmt.Sprintf("cannot convert %q to an absolute path: %v", e.Path, e.Err)
}

// Unwrap exposes both the category sentinel and the underlying cause.
func (e *PathResolutionError) Unwrap() []error { return joinCause(ErrPathResolution, e.Err) }

func (e *PathParseError) Error() string {
	return fmt.Sprintf("cannot split %q into directory and file name", e.Path)
}

// Unwrap returns ErrPathParse for errors.Is() compatibility.
func (e *PathParseError) Unwrap() error { return ErrPathParse }

func (e *DirectoryAccessError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cannot access launcher directory %s", e.Dir)
	}
	return fmt.Sprintf("cannot access launcher directory %s: %v", e.Dir, e.Err)
}

// Unwrap exposes both the category sentinel and the underlying cause.
func (e *DirectoryAccessError) Unwrap() []error { return joinCause(ErrDirectoryAccess, e.Err) }

func (e *PlacementError) Error() string {
	return fmt.Sprintf("launcher %q in %s must be placed in a %q directory and named <name>%s",
		e.File, e.Dir, e.ScriptsDir, e.MarkerSuffix)
}

// Unwrap returns ErrPlacement for errors.Is() compatibility.
func (e *PlacementError) Unwrap() error { return ErrPlacement }

func (e *MissingPathError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Path)
}

// Unwrap returns ErrMissingPath for errors.Is() compatibility.
func (e *MissingPathError) Unwrap() error { return ErrMissingPath }

func (e *LaunchError) Error() string {
	return fmt.Sprintf("cannot start %s: %v", e.Target, e.Err)
}

// Unwrap exposes both the category sentinel and the underlying cause.
func (e *LaunchError) Unwrap() []error { return joinCause(ErrLaunch, e.Err) }

func joinCause(sentinel, cause error) []error {
	if cause == nil {
		return []error{sentinel}
	}
	return []error{sentinel, cause}
}
