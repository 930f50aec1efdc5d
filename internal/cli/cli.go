package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/debtemplates/internal/app"
	"github.com/spf13/pflag"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := pflag.NewFlagSet("process-templates", pflag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
process-templates - expand debian/*.in templates into generated files.

Usage:
  process-templates [options]

Modes:
  generate  regenerate the control file only (for maintainers)
  build     regenerate every file for --arch and --os, fail if control drifted
  verify    regenerate every file without conditions, fail if control drifted
            or the formatting check reports changes

Options:
`)
		flagSet.PrintDefaults()
	}

	modeFlag := flagSet.String("mode", string(app.ModeGenerate), "Operating mode. Options: 'generate', 'build', 'verify'.")
	archFlag := flagSet.String("arch", "", "Target architecture (required for --mode=build).")
	osFlag := flagSet.String("os", "", "Target OS identifier, e.g. 'linux' (required for --mode=build).")
	rootFlag := flagSet.String("root", ".", "Package root containing the template directory.")
	configFlag := flagSet.String("config", "", "Optional HCL project file overriding the default layout.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument: %s", flagSet.Arg(0))}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		Mode:       app.Mode(*modeFlag),
		Arch:       *archFlag,
		OS:         *osFlag,
		Root:       *rootFlag,
		ConfigPath: *configFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		if errors.Is(err, app.ErrBuildContext) {
			return nil, false, &ExitError{Code: 1, Message: err.Error()}
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
