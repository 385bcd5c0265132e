// ABOUTME: Recursive directory copy used when forking profiles
// ABOUTME: Symlinks are dereferenced so the copy stands alone as real files

package profile

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// copyTree recursively copies src into dst, following symlinks. A symlink to
// a directory is copied as a real directory tree, a symlink to a file as a
// real file. A broken symlink fails the copy. Nothing is rolled back on
// failure; the destination may be left incomplete.
func copyTree(src, dst string) error {
	if err := os.MkdirAll(dst, 0755); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		// Stat, not the entry's Lstat-based type: symlinked directories
		// must recurse as directories.
		info, err := os.Stat(srcPath)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", srcPath, err)
		}

		if info.IsDir() {
			if err := copyTree(srcPath, dstPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, dstPath, info.Mode().Perm()); err != nil {
				return err
			}
		}
	}

	return nil
}

// copyFile copies a single file, reading through symlinks.
func copyFile(src, dst string, perm fs.FileMode) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, perm)
}
