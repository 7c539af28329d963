// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/eventlOwOp/R-with-conda/pkg/platform"
)

// Convention names.
const (
	ConventionWindows ConventionName = "windows"
	ConventionPOSIX   ConventionName = "posix"
)

// ErrUnknownConvention is the sentinel error wrapped by UnknownConventionError.
var ErrUnknownConvention = errors.New("unknown launcher convention")

type (
	// ConventionName identifies a built-in Convention.
	ConventionName string

	// Convention is the table of platform-specific names the launcher relies on.
	Convention struct {
		// Name identifies the convention in diagnostics.
		Name ConventionName
		// ScriptsDir is the required final segment of the launcher's directory.
		ScriptsDir string
		// MarkerSuffix is the required ending of the launcher's file name.
		MarkerSuffix string
		// ExeExt is appended to the stem to form the target's file name.
		ExeExt string
		// ListSeparator separates PATH entries.
		ListSeparator string
		// SearchDirs are the candidate subdirectories of the environment root,
		// slash-separated, in PATH priority order.
		SearchDirs []string
		// EnvCaseInsensitive makes environment variable names compare
		// case-insensitively (Windows spells PATH as "Path").
		EnvCaseInsensitive bool
	}

	// UnknownConventionError is returned by ConventionByName for names
	// that match no built-in convention.
	UnknownConventionError struct {
		Value ConventionName
	}
)

// WindowsConvention is the layout of a conda environment on Windows.
func WindowsConvention() Convention {
	return Convention{
		Name:          ConventionWindows,
		ScriptsDir:    "Scripts",
		MarkerSuffix:  ".conda.exe",
		ExeExt:        ".exe",
		ListSeparator: ";",
		SearchDirs: []string{
			"Library/mingw-w64/bin",
			"Library/usr/bin",
			"Library/bin",
			"Scripts",
			"bin",
		},
		EnvCaseInsensitive: true,
	}
}

// POSIXConvention is the layout of a conda environment on Linux and macOS,
// where executables live in <env>/bin and carry no extension.
func POSIXConvention() Convention {
	return Convention{
		Name:          ConventionPOSIX,
		ScriptsDir:    "bin",
		MarkerSuffix:  ".conda",
		ExeExt:        "",
		ListSeparator: ":",
		SearchDirs:    []string{"bin"},
	}
}

// DefaultConvention returns the convention for the given GOOS.
func DefaultConvention(goos string) Convention {
	if platform.IsWindows(goos) {
		return WindowsConvention()
	}
	return POSIXConvention()
}

// ConventionByName returns the built-in convention called name. The empty
// name and "auto" select DefaultConvention(goos).
func ConventionByName(name ConventionName, goos string) (Convention, error) {
	switch name {
	case "", "auto":
		return DefaultConvention(goos), nil
	case ConventionWindows:
		return WindowsConvention(), nil
	case ConventionPOSIX:
		return POSIXConvention(), nil
	default:
		return Convention{}, &UnknownConventionError{Value: name}
	}
}

// Error implements the error interface.
func (e *UnknownConventionError) Error() string {
	return fmt.Sprintf("unknown launcher convention %q (valid: auto, %s, %s)", e.Value, ConventionWindows, ConventionPOSIX)
}

// Unwrap returns ErrUnknownConvention for errors.Is() compatibility.
func (e *UnknownConventionError) Unwrap() error { return ErrUnknownConvention }

// String returns the string representation of the ConventionName.
func (n ConventionName) String() string { return string(n) }

// TargetName derives the target's file name from the launcher's file name.
// It reports false when launcherName does not end with MarkerSuffix or when
// nothing precedes the suffix.
func (c Convention) TargetName(launcherName string) (string, bool) {
	stem, ok := strings.CutSuffix(launcherName, c.MarkerSuffix)
	if !ok || stem == "" {
		return "", false
	}
	return stem + c.ExeExt, true
}

// IsScriptsDir reports whether dir's final segment is ScriptsDir.
func (c Convention) IsScriptsDir(dir string) bool {
	return filepath.Base(dir) == c.ScriptsDir
}

// SplitList splits a PATH value into its entries. Empty entries are kept, so
// the split is exact.
func (c Convention) SplitList(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, c.ListSeparator)
}

// JoinList joins entries into a PATH value.
func (c Convention) JoinList(entries []string) string {
	return strings.Join(entries, c.ListSeparator)
}
