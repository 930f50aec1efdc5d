// Package config defines the format-agnostic project settings: where the
// templates and the variables file live, which generated file is the control
// file, and which formatting check verify mode runs.
//
// The `config.Project` returned by Default reproduces the conventional Debian
// layout. Concrete loaders, such as the HCL one, live in separate packages and
// only override the fields a project file sets.
package config
