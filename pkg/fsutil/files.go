package fsutil

import (
	"fmt"
	"os"
)

// DirPerm is the permission mode used when creating directories.
const DirPerm = 0o755

// IsExecutable reports whether path refers to a regular file with at least
// one execute bit set. Symlinks are followed; missing files report false.
func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}

// EnsureDir creates the directory (and any parents) if it does not exist.
func EnsureDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("directory path cannot be empty")
	}
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
