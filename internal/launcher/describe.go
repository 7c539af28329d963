// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"path/filepath"

	"github.com/eventlOwOp/R-with-conda/internal/issue"
)

// describe wraps a typed launcher error in an ActionableError that tells the
// operator what to change.
func (l *Launcher) describe(err error) error {
	conv := l.Convention
	ctx := issue.NewErrorContext().Wrap(err)

	var (
		resolveErr   *PathResolutionError
		parseErr     *PathParseError
		dirErr       *DirectoryAccessError
		placementErr *PlacementError
		missingErr   *MissingPathError
		launchErr    *LaunchError
	)

	switch {
	case errors.As(err, &resolveErr):
		ctx.WithOperation("resolve launcher path").
			WithResource(resolveErr.Path).
			WithSuggestion("Run the launcher with its full absolute path")
	case errors.As(err, &parseErr):
		ctx.WithOperation("parse launcher path").
			WithResource(parseErr.Path).
			WithSuggestion("Run the launcher with its full absolute path")
	case errors.As(err, &dirErr):
		ctx.WithOperation("access launcher directory").
			WithResource(dirErr.Dir).
			WithSuggestion("Check that the directory exists and is readable").
			WithSuggestion("Run the launcher with its full absolute path instead of a relative one")
	case errors.As(err, &placementErr):
		ctx.WithOperation("validate launcher placement").
			WithResource(filepath.Join(placementErr.Dir, placementErr.File)).
			WithSuggestionf("Place the launcher in the %s directory of an environment: /path/to/env/%s", conv.ScriptsDir, conv.ScriptsDir).
			WithSuggestionf("Name it after the program it wraps with the %s suffix, e.g. python%s for python%s",
				conv.MarkerSuffix, conv.MarkerSuffix, conv.ExeExt)
	case errors.As(err, &missingErr):
		ctx.WithOperation("locate " + string(missingErr.Kind)).
			WithResource(missingErr.Path)
		if missingErr.Kind == PathKindTarget {
			ctx.WithSuggestionf("Install the package that provides %s into the environment", filepath.Base(missingErr.Path)).
				WithSuggestion("Rename the launcher so that it matches a program next to it")
		} else {
			ctx.WithSuggestion("Check that the environment has not been moved or deleted")
		}
	case errors.As(err, &launchErr):
		ctx.WithOperation("start target program").
			WithResource(launchErr.Target).
			WithSuggestion("Check that the target is an executable built for this platform").
			WithSuggestion("Check that you have permission to execute it")
	default:
		ctx.WithOperation("run launcher")
	}

	return ctx.BuildError()
}
