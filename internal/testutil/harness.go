// Package testutil provides helpers for tests that need a packaging tree on
// disk.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/debtemplates/internal/lint"
	"github.com/stretchr/testify/require"
)

// WriteTree creates a temporary root directory and writes every file in
// files under it. Keys are slash-separated relative paths such as
// "debian/control.in"; intermediate directories are created. It returns the
// root directory.
func WriteTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}
	return root
}

// ReadFile returns the content of a file under root.
func ReadFile(t *testing.T, root, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
	require.NoError(t, err)
	return string(data)
}

// LintRunner is a lint.Runner that records its invocations and returns a
// canned result.
type LintRunner struct {
	Result lint.Result
	Err    error

	Calls [][]string
	Dirs  []string
}

// Run implements lint.Runner.
func (r *LintRunner) Run(_ context.Context, dir string, argv []string) (lint.Result, error) {
	r.Calls = append(r.Calls, argv)
	r.Dirs = append(r.Dirs, dir)
	return r.Result, r.Err
}
