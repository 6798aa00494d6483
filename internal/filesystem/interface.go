package filesystem

import (
	"io/fs"
)

// FileSystem provides an abstraction over read-only file operations for testability
type FileSystem interface {
	// File operations
	ReadFile(path string) ([]byte, error)

	// Directory operations
	ReadDir(path string) ([]fs.DirEntry, error)

	// Path operations
	Exists(path string) bool
}
