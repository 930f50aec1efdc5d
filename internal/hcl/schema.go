package hcl

import "github.com/hashicorp/hcl/v2"

// projectFile is the HCL-specific schema of a project file.
type projectFile struct {
	TemplateDir    *string    `hcl:"template_dir,optional"`
	VariablesFile  *string    `hcl:"variables_file,optional"`
	TemplateSuffix *string    `hcl:"template_suffix,optional"`
	Control        *string    `hcl:"control,optional"`
	Lint           *lintBlock `hcl:"lint,block"`
	Remain         hcl.Body   `hcl:",remain"`
}

// lintBlock configures the formatting check run in verify mode.
type lintBlock struct {
	Command []string `hcl:"command"`
}
