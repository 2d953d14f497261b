package loader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kleascm/binspect/pkg/analysis"
	"github.com/kleascm/binspect/pkg/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReadsWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.bin")
	want := []byte{0x41, 0x41, 0x00, 0xFF}
	require.NoError(t, os.WriteFile(path, want, 0644))

	data, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, data)
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	data, err := loader.Load(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.bin")

	data, err := loader.Load(path)
	require.Error(t, err)
	assert.Nil(t, data)
	assert.Equal(t, analysis.FileNotFound, analysis.KindOf(err))
	assert.Equal(t, "File not found: "+path, err.Error())
}

func TestLoadDirectoryIsNotFound(t *testing.T) {
	dir := t.TempDir()

	_, err := loader.Load(dir)
	require.Error(t, err)
	assert.Equal(t, analysis.FileNotFound, analysis.KindOf(err))
}

func TestLoadPathBelowRegularFileIsNotFound(t *testing.T) {
	file := filepath.Join(t.TempDir(), "blob.bin")
	require.NoError(t, os.WriteFile(file, []byte{0x01}, 0644))
	path := filepath.Join(file, "child")

	_, err := loader.Load(path)
	require.Error(t, err)
	assert.Equal(t, analysis.FileNotFound, analysis.KindOf(err))
	assert.Equal(t, "File not found: "+path, err.Error())
}

func TestLoadOverlongNameIsNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), strings.Repeat("x", 5000))

	_, err := loader.Load(path)
	require.Error(t, err)
	assert.Equal(t, analysis.FileNotFound, analysis.KindOf(err))
}

func TestLoadSymlinkLoopIsNotFound(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	if err := os.Symlink(b, a); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	require.NoError(t, os.Symlink(a, b))

	_, err := loader.Load(a)
	require.Error(t, err)
	assert.Equal(t, analysis.FileNotFound, analysis.KindOf(err))
}

func TestLoadUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	path := filepath.Join(t.TempDir(), "locked.bin")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0000))

	_, err := loader.Load(path)
	require.Error(t, err)
	assert.Equal(t, analysis.IOFailure, analysis.KindOf(err))
	assert.Equal(t, "Unable to read file: "+path+": permission denied", err.Error())
}
