// Package drift detects generated files that no longer match what their
// template produces.
package drift

import (
	"errors"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// ErrDrift is the kind wrapped by every *Error.
var ErrDrift = errors.New("generated file out of sync with template")

// Error reports a generated file whose committed content differs from a
// fresh regeneration.
type Error struct {
	Path string
	// Diff is a unified diff from the committed content to the regenerated one.
	Diff string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: Needs to be regenerated from template", e.Path)
}

func (e *Error) Unwrap() error {
	return ErrDrift
}

// Check compares the committed content of path with its regeneration and
// returns an *Error when they differ.
func Check(path, committed, regenerated string) error {
	if committed == regenerated {
		return nil
	}
	return &Error{Path: path, Diff: Diff(path, committed, regenerated)}
}

// Missing returns the *Error for a generated file that was never committed.
func Missing(path, regenerated string) error {
	return &Error{Path: path, Diff: Diff(path, "", regenerated)}
}

// Diff renders a unified diff between two versions of path.
func Diff(path, committed, regenerated string) string {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(committed),
		B:        difflib.SplitLines(regenerated),
		FromFile: path,
		ToFile:   path + " (regenerated)",
		Context:  3,
	})
	if err != nil {
		// Rendering only writes to a buffer; fall back to no diff.
		return ""
	}
	return text
}
