// Package fileutil provides common file operations.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrSymlinkNotSupported indicates symlinks are not supported for this operation.
var ErrSymlinkNotSupported = errors.New("symlinks are not supported")

// WriteFile writes data to path through a temp file in the same directory
// and renames it into place, so readers never observe a half-written file.
// An existing regular file keeps its permissions; new files get perm.
// Returns ErrSymlinkNotSupported if path is a symlink.
func WriteFile(path string, data []byte, perm fs.FileMode) error {
	mode := perm
	info, err := os.Lstat(path)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return fmt.Errorf("%s: %w", path, ErrSymlinkNotSupported)
		}
		mode = info.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create parent directories: %w", err)
	}

	// Temp file in the same directory keeps the rename on one filesystem
	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("write content: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("set permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename to destination: %w", err)
	}

	success = true
	return nil
}
