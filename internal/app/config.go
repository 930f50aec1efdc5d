package app

import (
	"errors"
	"fmt"
)

// Mode selects what a run does with the templates.
type Mode string

const (
	// ModeGenerate regenerates only the control file, for maintainers to
	// commit.
	ModeGenerate Mode = "generate"
	// ModeBuild regenerates every file for one architecture and OS and
	// fails if the committed control file has drifted.
	ModeBuild Mode = "build"
	// ModeVerify regenerates every file with conditions stripped, checks
	// the control file for drift and runs the formatting check.
	ModeVerify Mode = "verify"
)

// ErrBuildContext is returned when build mode lacks an architecture or OS.
var ErrBuildContext = errors.New("--arch and --os are required for --mode=build")

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Mode Mode
	Arch string
	OS   string

	Root       string // package root containing the template directory
	ConfigPath string // optional project file

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Mode == "" {
		cfg.Mode = ModeGenerate
	}
	switch cfg.Mode {
	case ModeGenerate, ModeBuild, ModeVerify:
	default:
		return nil, fmt.Errorf("invalid mode %q: must be 'generate', 'build' or 'verify'", cfg.Mode)
	}

	if cfg.Mode == ModeBuild && (cfg.Arch == "" || cfg.OS == "") {
		return nil, ErrBuildContext
	}

	if cfg.Root == "" {
		cfg.Root = "."
	}

	return &cfg, nil
}
