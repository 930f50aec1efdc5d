package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/debtemplates/internal/config"
	"github.com/specialistvlad/debtemplates/internal/ctxlog"
	"github.com/specialistvlad/debtemplates/internal/lint"
	"github.com/specialistvlad/debtemplates/internal/vars"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	project *config.Project
	table   *vars.Table
	lint    *lint.Checker
}

// Option customises an App at construction.
type Option func(*App)

// WithLintRunner replaces the subprocess runner used by verify mode.
func WithLintRunner(r lint.Runner) Option {
	return func(a *App) {
		a.lint.Runner = r
	}
}

// NewApp is the constructor for the main application. Progress lines go to
// outW and log records to logW. It loads the project file (when configured)
// and the variables table once; both are read-only afterwards.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, opts ...Option) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	project := config.Default()
	if cfg.ConfigPath != "" {
		loaded, err := loader.Load(ctx, cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load project file: %w", err)
		}
		project = loaded
	}
	logger.Debug("Project settings resolved.", "template_dir", project.TemplateDir, "suffix", project.TemplateSuffix)

	table, err := vars.Load(project.VariablesPath(cfg.Root))
	if err != nil {
		return nil, err
	}
	logger.Debug("Variables loaded.", "groups", table.Len())

	a := &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		project: project,
		table:   table,
		lint: &lint.Checker{
			Command: project.LintCommand,
			Dir:     cfg.Root,
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Table returns the loaded variables table. This is primarily for testing.
func (a *App) Table() *vars.Table {
	return a.table
}
