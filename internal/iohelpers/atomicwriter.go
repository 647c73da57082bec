// Package iohelpers provides the atomic-write primitive the driver uses
// to land the three generated files: write to a temporary sibling,
// fsync, then rename over the destination, so a crash or interrupted
// run never leaves a half-written header behind.
// Grounded on the teacher's atomic writer: same temp-then-rename shape,
// generalized with an optional ".orig" backup copy of the previous
// contents (the driver always passes backup=false).
package iohelpers

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data to path by first writing to a temp file in
// the same directory, then renaming it into place. If backup is true and
// path already exists, the previous contents are copied to path+".orig"
// before the rename.
func WriteFileAtomic(path string, data []byte, perm os.FileMode, backup bool) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("iohelpers: creating directory %s: %w", dir, err)
	}

	if backup {
		if err := backupExisting(path); err != nil {
			return err
		}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("iohelpers: creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	// If anything below fails, don't leave the temp file lying around.
	succeeded := false
	defer func() {
		if !succeeded {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("iohelpers: writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("iohelpers: syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("iohelpers: closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("iohelpers: chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("iohelpers: renaming into place: %w", err)
	}
	succeeded = true
	return nil
}

func backupExisting(path string) error {
	existing, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("iohelpers: reading existing file for backup: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("iohelpers: stat existing file for backup: %w", err)
	}
	if err := os.WriteFile(path+".orig", existing, info.Mode()); err != nil {
		return fmt.Errorf("iohelpers: writing backup file: %w", err)
	}
	return nil
}

// ReadFileIfExists reads path and returns (data, true, nil) if it
// exists, or (nil, false, nil) if it doesn't.
func ReadFileIfExists(path string) ([]byte, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("iohelpers: reading %s: %w", path, err)
	}
	return data, true, nil
}
