package venv

import (
	"bytes"
	"fmt"
	"path/filepath"

	gitignore "github.com/denormal/go-gitignore"

	"github.com/JaLnYn/zed-pyenvselect/internal/filesystem"
	"github.com/JaLnYn/zed-pyenvselect/internal/models"
)

// Scanner discovers virtual environments nested anywhere under a root
// directory.
type Scanner struct {
	fs         filesystem.FileSystem
	ignorePath string
}

// Option configures scanner behavior.
type Option func(*Scanner)

// WithIgnoreFile prunes directories matched by the given gitignore-format
// file. By default no exclusion list is applied and every non-environment
// directory is visited.
func WithIgnoreFile(path string) Option {
	return func(s *Scanner) {
		s.ignorePath = path
	}
}

// NewScanner creates a new Scanner instance.
func NewScanner(fs filesystem.FileSystem, options ...Option) *Scanner {
	s := &Scanner{fs: fs}

	for _, option := range options {
		option(s)
	}

	return s
}

// Scan walks the tree rooted at root and returns one record per
// environment whose interpreter resolves.
//
// A directory classified as an environment is never descended into, so
// nothing nested inside a recognized environment is visited. A directory
// that cannot be listed contributes a single diagnostic record and the
// scan continues with the remaining work; no error escapes this method.
//
// Traversal uses an explicit work list rather than recursion, so tree
// depth is bounded only by memory. Symlinked directories are not followed:
// classification relies on DirEntry.IsDir, which is false for symlinks.
// Results appear in listing order, one directory at a time; no sort is
// applied.
func (s *Scanner) Scan(root string) []models.Record {
	ignore := s.loadIgnore(root)

	var records []models.Record

	stack := []string{root}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := s.fs.ReadDir(dir)
		if err != nil {
			records = append(records, models.NewDiagnostic(
				fmt.Sprintf("Error reading directory (%s): %v", dir, err),
				models.SourceVenv,
			))
			continue
		}

		// Push in reverse so directories pop in listing order.
		var subdirs []string
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}

			path := filepath.Join(dir, entry.Name())

			if ignore != nil && s.ignored(ignore, root, path) {
				continue
			}

			if IsEnvironment(s.fs, path) {
				if python, ok := ResolveInterpreter(s.fs, path); ok {
					records = append(records, models.NewEnvironment(entry.Name(), python, models.SourceVenv))
				}
				// Environment internals are not re-scanned.
				continue
			}

			subdirs = append(subdirs, path)
		}
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}

	return records
}

func (s *Scanner) loadIgnore(root string) gitignore.GitIgnore {
	if s.ignorePath == "" {
		return nil
	}

	data, err := s.fs.ReadFile(s.ignorePath)
	if err != nil {
		return nil
	}

	return gitignore.New(bytes.NewReader(data), root, nil)
}

func (s *Scanner) ignored(ignore gitignore.GitIgnore, root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}

	match := ignore.Relative(filepath.ToSlash(rel), true)
	return match != nil && match.Ignore()
}
