// Package lint runs the external formatting check that verifies template
// inputs are already wrapped and sorted canonically.
package lint

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultCommand is the check run when the project does not configure one.
var DefaultCommand = []string{"wrap-and-sort", "-ast", "--dry-run"}

// ErrNotCanonical is the kind wrapped by *Error.
var ErrNotCanonical = errors.New("input files are not canonically formatted")

// Result is the captured outcome of one invocation.
type Result struct {
	Stdout   string
	ExitCode int
}

// Runner executes a command in dir with no stdin and captures its stdout.
type Runner interface {
	Run(ctx context.Context, dir string, argv []string) (Result, error)
}

// ExecRunner runs commands as subprocesses.
type ExecRunner struct{}

// Run starts argv[0] and waits for it. A non-zero exit status is reported in
// the Result, not as an error; errors mean the command could not be run.
func (ExecRunner) Run(ctx context.Context, dir string, argv []string) (Result, error) {
	if len(argv) == 0 {
		return Result{}, errors.New("empty lint command")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return Result{Stdout: stdout.String()}, nil
	case errors.As(err, &exitErr):
		return Result{Stdout: stdout.String(), ExitCode: exitErr.ExitCode()}, nil
	default:
		return Result{}, fmt.Errorf("failed to run %s: %w", argv[0], err)
	}
}

// Error reports a check that failed or produced output.
type Error struct {
	Result
}

func (e *Error) Error() string {
	return fmt.Sprintf("stdout:\n%s\nrc: %d", strings.TrimSpace(e.Stdout), e.ExitCode)
}

func (e *Error) Unwrap() error {
	return ErrNotCanonical
}

// Checker runs a formatting check command.
type Checker struct {
	Command []string
	Dir     string
	Runner  Runner
}

// Name returns the program name of the configured command.
func (c *Checker) Name() string {
	if len(c.command()) == 0 {
		return ""
	}
	return c.command()[0]
}

func (c *Checker) command() []string {
	if c.Command == nil {
		return DefaultCommand
	}
	return c.Command
}

// Check runs the command. It fails when the command exits non-zero or writes
// anything to stdout.
func (c *Checker) Check(ctx context.Context) error {
	runner := c.Runner
	if runner == nil {
		runner = ExecRunner{}
	}

	res, err := runner.Run(ctx, c.Dir, c.command())
	if err != nil {
		return err
	}
	if res.ExitCode != 0 || res.Stdout != "" {
		return &Error{Result: res}
	}
	return nil
}
