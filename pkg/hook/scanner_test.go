package hook_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/glorpus-work/certmate/pkg/hook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListExecutables_SortedExecutablesOnly(t *testing.T) {
	tempDir := t.TempDir()

	// Created out of order on purpose.
	for _, name := range []string{"b.sh", "a.sh", "z.sh"} {
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, name), []byte("#!/bin/sh\n"), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "readme.txt"), []byte("not a hook"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(tempDir, "subdir"), 0o755))

	scanner := hook.NewDirectoryScanner()
	paths, err := scanner.ListExecutables(tempDir)
	require.NoError(t, err)

	expected := []string{
		filepath.Join(tempDir, "a.sh"),
		filepath.Join(tempDir, "b.sh"),
		filepath.Join(tempDir, "z.sh"),
	}
	assert.Equal(t, expected, paths)
	assert.True(t, sort.StringsAreSorted(paths))
	for _, p := range paths {
		assert.True(t, filepath.IsAbs(p), "paths must be absolute: %s", p)
	}
}

func TestListExecutables_MissingDirectoryIsEmpty(t *testing.T) {
	scanner := hook.NewDirectoryScanner()

	paths, err := scanner.ListExecutables(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err, "a missing hook directory is not an error")
	assert.Empty(t, paths)
}

func TestListExecutables_EmptyInputs(t *testing.T) {
	scanner := hook.NewDirectoryScanner()

	paths, err := scanner.ListExecutables("")
	require.NoError(t, err)
	assert.Empty(t, paths)

	paths, err = scanner.ListExecutables(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, paths)
}
