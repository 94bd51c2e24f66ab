package settings

import (
	"fmt"
	"os"
	"path/filepath"
)

// atomicWrite writes data to a file atomically using a temp file + rename
// strategy, so the settings file is never observed half-written.
//
//  1. Write data to a temporary file in the same directory
//  2. Sync the temp file to disk (fsync)
//  3. Rename the temp file to the target path (atomic on POSIX systems)
//
// If any step fails, the original file (if it exists) remains unchanged.
func atomicWrite(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to ensure parent directory: %w", err)
	}

	// Temp file in the same directory as the target keeps the rename on
	// one filesystem, which is what makes it atomic.
	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions on temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to target: %w", err)
	}

	success = true
	return nil
}
