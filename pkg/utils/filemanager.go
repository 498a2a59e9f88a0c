// =============================================================================
// Overdue Report Compiler - File Manager Utility
// =============================================================================
//
// This module provides the file operations the compiler needs:
//   - Listing the raw data directory
//   - Byte-for-byte copies (report backups)
//   - Removing consumed raw files
//   - Opening the finished report in the desktop default application
//
// All operations are blocking and unlocked. Only one compile run may touch a
// given raw/output directory pair at a time.
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for the compiler.
type FileManager struct {
	// opener launches a file in the desktop default application. Replaced
	// in tests.
	opener func(path string) error
}

// NewFileManager creates a FileManager backed by the local file system.
func NewFileManager() *FileManager {
	return &FileManager{opener: openWithDefaultApp}
}

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// ListFiles returns the names of the regular files directly inside dir,
// sorted by name. Subdirectories are skipped.
func (fm *FileManager) ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	return files, nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// FileExists checks if a regular file exists at path.
func (fm *FileManager) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// =============================================================================
// COPY AND DELETE
// =============================================================================

// CopyFile copies src to dst byte for byte, replacing dst if it exists.
func (fm *FileManager) CopyFile(src, dst string) error {
	if err := copyFile(src, dst); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	return nil
}

// DeleteFile removes the file at path.
func (fm *FileManager) DeleteFile(path string) error {
	return os.Remove(path)
}

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return err
	}

	return destFile.Sync()
}

// =============================================================================
// DESKTOP INTEGRATION
// =============================================================================

// OpenFile opens path in the desktop default application without waiting
// for it to exit.
func (fm *FileManager) OpenFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	return fm.opener(abs)
}

func openWithDefaultApp(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
