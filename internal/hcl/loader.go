package hcl

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/debtemplates/internal/config"
	"github.com/specialistvlad/debtemplates/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// Environ supplies the `env` object; os.Environ when nil.
	Environ func() []string
}

// NewLoader creates a new HCL project file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses and decodes the project file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Project, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root projectFile
	diags = gohcl.DecodeBody(file.Body, l.evalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	attrs, remainDiags := root.Remain.JustAttributes()
	for name := range attrs {
		logger.Warn("Ignoring unknown project setting.", "path", path, "name", name)
	}
	// Leftover blocks surface as diagnostics rather than attributes.
	for _, d := range remainDiags {
		logger.Warn("Ignoring unknown project setting.", "path", path, "detail", d.Error())
	}

	project := l.translateProject(&root)
	if err := project.Validate(); err != nil {
		return nil, fmt.Errorf("invalid project file %s: %w", path, err)
	}

	logger.Debug("HCL loading complete.", "template_dir", project.TemplateDir, "variables_file", project.VariablesFile)
	return project, nil
}

// evalContext exposes the process environment as the `env` object.
func (l *Loader) evalContext() *hcl.EvalContext {
	environ := l.Environ
	if environ == nil {
		environ = os.Environ
	}

	env := make(map[string]cty.Value)
	for _, kv := range environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		env[name] = cty.StringVal(value)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
	}
}
