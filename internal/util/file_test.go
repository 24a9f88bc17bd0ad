package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir), "existing directory is fine")

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureParentDir(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "output", "final.png")

	require.NoError(t, EnsureParentDir(file))

	info, err := os.Stat(filepath.Join(root, "output"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	_, err = os.Stat(file)
	assert.True(t, os.IsNotExist(err))
}

func TestEnsureDirOverFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	assert.Error(t, EnsureDir(filepath.Join(file, "sub")))
}
