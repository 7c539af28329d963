// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"path/filepath"
	"testing"
)

// EnvTree is a fake environment root created under t.TempDir().
// All rel arguments are slash-separated and relative to Root.
type EnvTree struct {
	// Root is the absolute path of the environment root.
	Root string

	t testing.TB
}

// NewEnvTree creates an empty environment root named "env".
func NewEnvTree(t testing.TB) *EnvTree {
	t.Helper()
	root := filepath.Join(t.TempDir(), "env")
	MustMkdirAll(t, root, 0o755)
	return &EnvTree{Root: root, t: t}
}

// Path returns the absolute path of rel without creating anything.
func (e *EnvTree) Path(rel string) string {
	return filepath.Join(e.Root, filepath.FromSlash(rel))
}

// Dir creates the directory rel and returns its absolute path.
func (e *EnvTree) Dir(rel string) string {
	e.t.Helper()
	p := e.Path(rel)
	MustMkdirAll(e.t, p, 0o755)
	return p
}

// File creates an empty file rel (and its parents) and returns its absolute path.
func (e *EnvTree) File(rel string) string {
	e.t.Helper()
	p := e.Path(rel)
	MustWriteFile(e.t, p, nil, 0o755)
	return p
}
