package iohelpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomicCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.h")

	err := WriteFileAtomic(path, []byte("hello"), 0o644, false)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

func TestWriteFileAtomicOverwritesWithoutStaleTemp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.h")

	require.NoError(t, WriteFileAtomic(path, []byte("v1"), 0o644, false))
	require.NoError(t, WriteFileAtomic(path, []byte("v2"), 0o644, false))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should not be left behind")
}

func TestWriteFileAtomicBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.h")

	require.NoError(t, WriteFileAtomic(path, []byte("v1"), 0o644, false))
	require.NoError(t, WriteFileAtomic(path, []byte("v2"), 0o644, true))

	backup, err := os.ReadFile(path + ".orig")
	require.NoError(t, err)
	assert.Equal(t, "v1", string(backup))
}

func TestReadFileIfExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.h")

	_, ok, err := ReadFileIfExists(path)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))
	data, ok, err := ReadFileIfExists(path)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "data", string(data))
}
