// Package fsutil is the thin OS filesystem layer the pALM tooling reads
// configs and outputs through and writes generated configs with.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
)

// OSFileSystem implements filesystem operations using the local OS filesystem primitives.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OSFileSystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Getwd returns the process working directory.
func (OSFileSystem) Getwd() (string, error) {
	return os.Getwd()
}

// ReadFile reads the whole file.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for a path (follows symlinks).
func (OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// ReadDir lists directory entries sorted by name.
func (OSFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

// WalkDir walks the tree rooted at root.
func (OSFileSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

// ListNames returns the names of every entry in dir, files and directories alike.
func (f OSFileSystem) ListNames(dir string) ([]string, error) {
	entries, err := f.ReadDir(dir)
	if err != nil {
		return nil, &ListDirError{Dir: dir, Cause: err}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// WriteFileAtomic replaces path with content. The data goes to a temp file
// in the same folder first, so readers see either the old or the new file.
func (OSFileSystem) WriteFileAtomic(path string, content []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return &WriteError{Path: path, Op: OpCreateTemp, Cause: err}
	}

	closed := false
	defer func() {
		if !closed {
			_ = tmp.Close()
		}
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return &WriteError{Path: path, Op: OpWrite, Cause: err}
	}
	if err := tmp.Sync(); err != nil {
		return &WriteError{Path: path, Op: OpSync, Cause: err}
	}
	// Windows refuses to rename open files.
	closed = true
	if err := tmp.Close(); err != nil {
		return &WriteError{Path: path, Op: OpClose, Cause: err}
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return &WriteError{Path: path, Op: OpChmod, Cause: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &WriteError{Path: path, Op: OpRename, Cause: err}
	}
	return nil
}
