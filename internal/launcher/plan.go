// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"os"
	"path/filepath"

	"github.com/eventlOwOp/R-with-conda/pkg/types"
)

// Plan is everything derived from the launcher's placement before any
// process is started. It is computed once and never modified.
type Plan struct {
	// Invocation is the resolved launcher location.
	Invocation Invocation
	// TargetName is the file name of the real program.
	TargetName string
	// EnvRoot is the parent of the scripts directory.
	EnvRoot types.FilesystemPath
	// Target is the absolute path of the real program.
	Target types.FilesystemPath
	// SearchDirs holds the existing candidate subdirectories of EnvRoot in
	// the convention's priority order.
	SearchDirs []string
}

// NewPlan validates inv against conv and derives the target and the search
// directory set. The returned errors are the typed errors of this package.
func NewPlan(inv Invocation, conv Convention) (*Plan, error) {
	info, err := os.Stat(inv.Dir)
	if err != nil {
		return nil, &DirectoryAccessError{Dir: inv.Dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &DirectoryAccessError{Dir: inv.Dir}
	}

	inv = completeExtension(inv, conv)
	targetName, ok := conv.TargetName(inv.File)
	if !ok || !conv.IsScriptsDir(inv.Dir) {
		return nil, &PlacementError{
			Dir:          inv.Dir,
			File:         inv.File,
			ScriptsDir:   conv.ScriptsDir,
			MarkerSuffix: conv.MarkerSuffix,
		}
	}

	envRoot := types.FilesystemPath(filepath.Dir(inv.Dir))
	target := types.FilesystemPath(filepath.Join(inv.Dir, targetName))

	if !envRoot.IsDir() {
		return nil, &MissingPathError{Kind: PathKindEnvRoot, Path: envRoot.String()}
	}
	if !target.Exists() {
		return nil, &MissingPathError{Kind: PathKindTarget, Path: target.String()}
	}

	return &Plan{
		Invocation: inv,
		TargetName: targetName,
		EnvRoot:    envRoot,
		Target:     target,
		SearchDirs: SearchDirectorySet(envRoot.String(), conv),
	}, nil
}

// completeExtension restores an executable extension the caller left off.
// Windows shells pass argv[0] as typed, so `Scripts\python.conda` may name
// the running python.conda.exe.
func completeExtension(inv Invocation, conv Convention) Invocation {
	if conv.ExeExt == "" {
		return inv
	}
	if _, ok := conv.TargetName(inv.File); ok {
		return inv
	}
	file := inv.File + conv.ExeExt
	if _, ok := conv.TargetName(file); !ok {
		return inv
	}
	p := types.FilesystemPath(filepath.Join(inv.Dir, file))
	if !p.Exists() {
		return inv
	}
	inv.File = file
	inv.Path = p
	return inv
}
