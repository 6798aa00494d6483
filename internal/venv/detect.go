package venv

import (
	"path/filepath"

	"github.com/JaLnYn/zed-pyenvselect/internal/filesystem"
)

// IsEnvironment reports whether dir looks like a virtual environment root.
//
// The check is a heuristic over marker files: an activation script at
// bin/activate or a pyvenv.cfg. Existence only, contents are never read.
// Environments using other layouts (e.g. a Windows-style Scripts/
// directory) are not recognized.
func IsEnvironment(fs filesystem.FileSystem, dir string) bool {
	activateScript := filepath.Join(dir, "bin", "activate")
	pyvenvCfg := filepath.Join(dir, "pyvenv.cfg")

	return fs.Exists(activateScript) || fs.Exists(pyvenvCfg)
}

// ResolveInterpreter returns the path to the environment's python
// executable. Only the conventional bin/python location is probed; an
// environment without it resolves to nothing and is excluded from results.
func ResolveInterpreter(fs filesystem.FileSystem, envDir string) (string, bool) {
	python := filepath.Join(envDir, "bin", "python")
	if fs.Exists(python) {
		return python, true
	}
	return "", false
}
