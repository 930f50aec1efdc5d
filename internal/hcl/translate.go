package hcl

import (
	"slices"

	"github.com/specialistvlad/debtemplates/internal/config"
)

// translateProject overlays the values set in the HCL file onto the defaults.
func (l *Loader) translateProject(f *projectFile) *config.Project {
	p := config.Default()
	if f.TemplateDir != nil {
		p.TemplateDir = *f.TemplateDir
	}
	if f.VariablesFile != nil {
		p.VariablesFile = *f.VariablesFile
	}
	if f.TemplateSuffix != nil {
		p.TemplateSuffix = *f.TemplateSuffix
	}
	if f.Control != nil {
		p.Control = *f.Control
	}
	if f.Lint != nil {
		p.LintCommand = slices.Clone(f.Lint.Command)
	}
	return p
}
