package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/specialistvlad/debtemplates/internal/conditional"
	"github.com/specialistvlad/debtemplates/internal/ctxlog"
	"github.com/specialistvlad/debtemplates/internal/drift"
	"github.com/specialistvlad/debtemplates/internal/expand"
	"github.com/specialistvlad/debtemplates/internal/fsutil"
)

// Run processes every template of the project according to the configured
// mode. The first error stops the run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "mode", a.config.Mode)

	templates, err := fsutil.FindTemplates(a.project.TemplatePath(a.config.Root), a.project.TemplateSuffix)
	if err != nil {
		return err
	}
	a.logger.Debug("Templates discovered.", "count", len(templates))

	for _, tmpl := range templates {
		if err := a.processTemplate(ctx, tmpl); err != nil {
			return err
		}
	}

	if a.config.Mode == ModeVerify {
		fmt.Fprintf(a.outW, "  CHK %s\n", a.lint.Name())
		if err := a.lint.Check(ctx); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) processTemplate(ctx context.Context, tmpl fsutil.Template) error {
	logger := ctxlog.FromContext(ctx)
	isControl := tmpl.Basename == a.project.Control

	// Generate mode only keeps the control file in sync for maintainers.
	if a.config.Mode == ModeGenerate && !isControl {
		logger.Debug("Skipping template.", "template", tmpl.Path)
		return nil
	}

	fmt.Fprintf(a.outW, "  GEN %s\n", tmpl.Output)

	output, err := a.render(tmpl, isControl)
	if err != nil {
		return err
	}

	// Outside generate mode the committed control file must already match
	// its template; a mismatch means we cannot tell which one is right.
	if a.config.Mode != ModeGenerate && isControl {
		committed, exists, err := fsutil.ReadFileIfExists(tmpl.Output)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", tmpl.Output, err)
		}
		err = drift.Check(tmpl.Output, committed, output)
		if !exists {
			err = drift.Missing(tmpl.Output, output)
		}
		if err != nil {
			var driftErr *drift.Error
			if errors.As(err, &driftErr) {
				logger.Warn("Generated file drifted from its template.", "file", tmpl.Output, "diff", driftErr.Diff)
			}
			return err
		}
		logger.Debug("Control file is in sync.", "file", tmpl.Output)
		return nil
	}

	if err := fsutil.WriteFileAtomic(tmpl.Output, output); err != nil {
		return err
	}
	logger.Debug("Wrote generated file.", "file", tmpl.Output, "bytes", len(output))
	return nil
}

func (a *App) render(tmpl fsutil.Template, isControl bool) (string, error) {
	if isControl {
		data, err := os.ReadFile(tmpl.Path)
		if err != nil {
			return "", fmt.Errorf("failed to read template: %w", err)
		}
		return expand.Control(string(data), a.table), nil
	}

	f, err := os.Open(tmpl.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read template: %w", err)
	}
	defer f.Close()

	p := &conditional.Processor{
		Table: a.table,
		Mode:  conditional.Filter,
		Arch:  a.config.Arch,
		OS:    a.config.OS,
	}
	if a.config.Mode == ModeVerify {
		p.Mode = conditional.Strip
	}
	return p.Process(tmpl.Path, f)
}
