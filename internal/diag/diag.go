// Package diag defines the positioned diagnostics reported while reading
// variable files and templates.
package diag

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSyntax marks a line that does not have the expected shape.
	ErrInvalidSyntax = errors.New("invalid syntax")
	// ErrUnknownGroup marks a condition naming an architecture group that
	// was never defined.
	ErrUnknownGroup = errors.New("unknown architecture group")
)

// Error is a problem tied to a line of an input file.
type Error struct {
	Path    string
	Line    int // 1-based
	Kind    error
	Message string
}

// Error renders the diagnostic as "path:line: message".
func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
}

// Unwrap exposes the error kind to errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind
}

// InvalidSyntax builds the diagnostic for a malformed line.
func InvalidSyntax(path string, line int) *Error {
	return &Error{Path: path, Line: line, Kind: ErrInvalidSyntax, Message: "Invalid syntax"}
}

// UnknownGroup builds the diagnostic for an undefined group reference.
func UnknownGroup(path string, line int, group string) *Error {
	return &Error{
		Path:    path,
		Line:    line,
		Kind:    ErrUnknownGroup,
		Message: fmt.Sprintf("Unknown architecture group '%s'", group),
	}
}
