// Package hcl implements config.Loader for project files written in HCL.
//
// A project file may set any of the following; unset values keep their
// defaults:
//
//	template_dir    = "debian"
//	variables_file  = "arches.mk"
//	template_suffix = ".in"
//	control         = "control"
//
//	lint {
//	  command = ["wrap-and-sort", "-ast", "--dry-run"]
//	}
//
// Expressions can read the process environment through the `env` object,
// for example `template_dir = env.DEBIAN_DIR`.
package hcl
