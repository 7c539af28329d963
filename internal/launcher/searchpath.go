// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"path/filepath"

	"github.com/eventlOwOp/R-with-conda/pkg/types"
)

// Path modes.
const (
	// PathModeAuto leaves PATH alone when it already holds every directory
	// the target needs.
	PathModeAuto PathMode = "auto"
	// PathModeAlways rebuilds PATH on every launch.
	PathModeAlways PathMode = "always"
)

type (
	// PathMode selects whether PATH augmentation may be skipped.
	PathMode string

	// PathDecision is the PATH the child receives.
	PathDecision struct {
		// Value is the child's PATH.
		Value string
		// Augmented is false when the inherited PATH was passed through.
		Augmented bool
		// Required lists the directories the target needs on PATH, in order:
		// the environment root followed by the search directory set.
		Required []string
	}
)

// SearchDirectorySet returns the candidate subdirectories of root that exist
// as directories, in conv's priority order.
func SearchDirectorySet(root string, conv Convention) []string {
	dirs := make([]string, 0, len(conv.SearchDirs))
	for _, rel := range conv.SearchDirs {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if types.FilesystemPath(p).IsDir() {
			dirs = append(dirs, p)
		}
	}
	return dirs
}

// RequiredDirs returns the environment root followed by the search
// directory set.
func (p *Plan) RequiredDirs() []string {
	return append([]string{p.EnvRoot.String()}, p.SearchDirs...)
}

// DecidePath computes the child's PATH from the inherited value.
//
// In PathModeAuto, when every required directory is already an entry of
// inherited (exact string comparison), inherited is returned untouched.
// Otherwise the result is the required directories followed by inherited.
// An empty inherited PATH adds no trailing separator.
func DecidePath(p *Plan, inherited string, conv Convention, mode PathMode) PathDecision {
	required := p.RequiredDirs()

	if mode != PathModeAlways && containsAll(conv.SplitList(inherited), required) {
		return PathDecision{Value: inherited, Augmented: false, Required: required}
	}

	entries := append([]string(nil), required...)
	if inherited != "" {
		entries = append(entries, inherited)
	}
	return PathDecision{Value: conv.JoinList(entries), Augmented: true, Required: required}
}

func containsAll(entries, want []string) bool {
	present := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		present[e] = struct{}{}
	}
	for _, w := range want {
		if _, ok := present[w]; !ok {
			return false
		}
	}
	return true
}
