package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.tsx")

	require.NoError(t, WriteFileAtomic(path, []byte("first"), 0o644))
	require.NoError(t, WriteFileAtomic(path, []byte("second"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestWriteFileAtomic_MissingParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "page.tsx")
	assert.Error(t, WriteFileAtomic(path, []byte("x"), 0o644))
}

func TestWriteFileAtomic_TargetIsDirectoryKeepsIt(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "occupied")
	require.NoError(t, os.Mkdir(target, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), []byte("k"), 0o600))

	require.Error(t, WriteFileAtomic(target, []byte("x"), 0o644))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "failed write leaves no temp file")
	_, err = os.Stat(filepath.Join(target, "keep"))
	assert.NoError(t, err)
}

func TestCopyFileAtomic(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.png")
	content := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff, '\n', '\r'}
	require.NoError(t, os.WriteFile(src, content, 0o600))

	dst := filepath.Join(dir, "dst.png")
	require.NoError(t, CopyFileAtomic(src, dst, 0o644))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	assert.Error(t, CopyFileAtomic(filepath.Join(dir, "missing.png"), dst, 0o644))
}
