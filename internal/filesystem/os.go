// Package filesystem provides the file system primitives used by the post migrator.
package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem abstracts the file operations needed to rewrite posts in place.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	Glob(pattern string) ([]string, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, permissions fs.FileMode) error
}

// OSFileSystem implements FileSystem using the operating system primitives.
type OSFileSystem struct{}

// Stat retrieves file metadata.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// Glob returns the paths matching the pattern in lexical order.
func (OSFileSystem) Glob(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}

// ReadFile reads file contents without any newline translation.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile truncates and writes data to a file with the supplied permissions.
func (OSFileSystem) WriteFile(path string, data []byte, permissions fs.FileMode) error {
	return os.WriteFile(path, data, permissions)
}
