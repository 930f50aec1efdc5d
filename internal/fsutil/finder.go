// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Template is a template file and the generated file it produces.
type Template struct {
	Path     string // the template itself, e.g. debian/control.in
	Basename string // generated basename, e.g. control
	Output   string // generated file, e.g. debian/control
}

// FindTemplates lists the regular files directly inside dir whose name ends
// with suffix, ordered by name. Hidden files are ignored, as are files named
// exactly suffix.
func FindTemplates(dir string, suffix string) ([]Template, error) {
	if suffix == "" {
		panic("suffix must not be empty")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates in %s: %w", dir, err)
	}

	var templates []Template
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, suffix) {
			continue
		}
		basename := strings.TrimSuffix(name, suffix)
		if basename == "" {
			continue
		}
		templates = append(templates, Template{
			Path:     filepath.Join(dir, name),
			Basename: basename,
			Output:   filepath.Join(dir, basename),
		})
	}

	slices.SortFunc(templates, func(a, b Template) int {
		return strings.Compare(a.Basename, b.Basename)
	})
	return templates, nil
}
