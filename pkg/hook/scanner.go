package hook

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/glorpus-work/certmate/pkg/errors"
	"github.com/glorpus-work/certmate/pkg/fsutil"
)

// OSDirectoryScanner discovers directory hooks on the local filesystem.
type OSDirectoryScanner struct{}

// NewDirectoryScanner creates a filesystem-backed scanner.
func NewDirectoryScanner() *OSDirectoryScanner {
	return &OSDirectoryScanner{}
}

// ListExecutables returns the absolute paths of all executable regular
// files directly inside dir, sorted ascending. A missing directory is
// normal (the hook directories are created lazily) and yields an empty
// list; other read failures are returned.
func (s *OSDirectoryScanner) ListExecutables(dir string) ([]string, error) {
	if dir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read hooks directory %s", dir)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path, err := filepath.Abs(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve hook path %s", entry.Name())
		}
		if fsutil.IsExecutable(path) {
			paths = append(paths, path)
		}
	}

	sort.Strings(paths)
	return paths, nil
}
