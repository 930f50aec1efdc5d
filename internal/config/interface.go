package config

import "context"

// Loader is the interface for a format-specific project file loader.
type Loader interface {
	// Load reads the project file at path and returns the settings it
	// describes, with every unset field taken from Default.
	Load(ctx context.Context, path string) (*Project, error)
}
