package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ReadFileIfExists returns the content of path and whether it exists. A
// missing file is not an error.
func ReadFileIfExists(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

// WriteFileAtomic replaces path with content. The data is written to a
// temporary file in the same directory and renamed over path, so readers
// see either the old or the new content. An existing file keeps its mode.
func WriteFileAtomic(path string, content string) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	file, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary file for %s: %w", path, err)
	}
	tmpPath := file.Name()

	if _, err := file.WriteString(content); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temporary file for %s: %w", path, err)
	}
	if err := file.Chmod(mode); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("setting mode of temporary file for %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temporary file for %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming %s into place: %w", path, err)
	}
	return nil
}
