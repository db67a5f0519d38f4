package generate

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateFile writes contents to path, creating parent directories and
// replacing any existing file.
func CreateFile(path string, contents []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, contents, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// CreateFolder ensures the directory tree at path exists.
func CreateFolder(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create folder %s: %w", path, err)
	}
	return nil
}

// WriteIfAbsent writes contents to path unless a file already exists there.
// It reports whether a write happened. Generators are idempotent by
// existence, not by content: a second run never overwrites.
func WriteIfAbsent(path string, contents []byte) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := CreateFile(path, contents); err != nil {
		return false, err
	}
	return true, nil
}
