package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/specialistvlad/debtemplates/internal/lint"
)

// Project holds the layout of a packaging tree.
type Project struct {
	// TemplateDir is the directory holding templates and generated files,
	// relative to the package root.
	TemplateDir string
	// VariablesFile is the definitions file, relative to TemplateDir.
	VariablesFile string
	// TemplateSuffix identifies template files; stripping it yields the
	// generated basename.
	TemplateSuffix string
	// Control is the generated basename expanded with group placeholders
	// rather than conditional lines.
	Control string
	// LintCommand is the formatting check run by verify mode, from the
	// package root.
	LintCommand []string
}

// Default returns the settings of a standard debian/ tree.
func Default() *Project {
	return &Project{
		TemplateDir:    "debian",
		VariablesFile:  "arches.mk",
		TemplateSuffix: ".in",
		Control:        "control",
		LintCommand:    slices.Clone(lint.DefaultCommand),
	}
}

// Validate checks the settings for values that cannot work.
func (p *Project) Validate() error {
	var errs []error
	if p.TemplateDir == "" {
		errs = append(errs, errors.New("template_dir must not be empty"))
	}
	if p.VariablesFile == "" {
		errs = append(errs, errors.New("variables_file must not be empty"))
	}
	if p.TemplateSuffix == "" {
		errs = append(errs, errors.New("template_suffix must not be empty"))
	}
	if p.Control == "" || strings.ContainsRune(p.Control, filepath.Separator) {
		errs = append(errs, fmt.Errorf("control must be a plain file name, got %q", p.Control))
	}
	if len(p.LintCommand) == 0 || p.LintCommand[0] == "" {
		errs = append(errs, errors.New("lint command must name a program"))
	}
	return errors.Join(errs...)
}

// TemplatePath returns the template directory under root.
func (p *Project) TemplatePath(root string) string {
	return filepath.Join(root, p.TemplateDir)
}

// VariablesPath returns the variables file under root.
func (p *Project) VariablesPath(root string) string {
	return filepath.Join(root, p.TemplateDir, p.VariablesFile)
}
