package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "PreviousData.csv", "a.csv"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0755))

	fm := NewFileManager()
	files, err := fm.ListFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"PreviousData.csv", "a.csv", "b.csv"}, files)
}

func TestListFiles_EmptyAndMissing(t *testing.T) {
	fm := NewFileManager()

	files, err := fm.ListFiles(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)

	_, err = fm.ListFiles(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Compiled Output.csv")
	dst := filepath.Join(dir, "Backup_Compiled Output.csv")
	content := []byte("Date,Total $\r\n2024-01-01,100.0\r\n")
	require.NoError(t, os.WriteFile(src, content, 0644))
	require.NoError(t, os.WriteFile(dst, []byte("older backup that is longer than the new one"), 0644))

	fm := NewFileManager()
	require.NoError(t, fm.CopyFile(src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	assert.Error(t, fm.CopyFile(filepath.Join(dir, "missing.csv"), dst))
}

func TestFileExistsAndIsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.csv")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	fm := NewFileManager()
	assert.True(t, fm.FileExists(file))
	assert.False(t, fm.FileExists(dir))
	assert.False(t, fm.FileExists(filepath.Join(dir, "b.csv")))

	assert.True(t, IsDir(dir))
	assert.False(t, IsDir(file))
}

func TestDeleteFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "Jan.csv")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	fm := NewFileManager()
	require.NoError(t, fm.DeleteFile(file))
	assert.NoFileExists(t, file)
	assert.Error(t, fm.DeleteFile(file))
}

func TestOpenFile_UsesAbsolutePath(t *testing.T) {
	var opened string
	fm := &FileManager{opener: func(path string) error {
		opened = path
		return nil
	}}

	require.NoError(t, fm.OpenFile("report.csv"))
	assert.True(t, filepath.IsAbs(opened))
	assert.Equal(t, "report.csv", filepath.Base(opened))
}
