package liability

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Cyclone1070/palm/internal/artifact"
	"github.com/Cyclone1070/palm/internal/palmpath"
)

// Reader is the filesystem surface Discover needs.
type Reader interface {
	WalkDir(root string, fn fs.WalkDirFunc) error
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// Writer is the filesystem surface WriteNext needs.
type Writer interface {
	ListNames(dir string) ([]string, error)
	WriteFileAtomic(path string, content []byte, perm os.FileMode) error
}

// Entry is one run configuration found under a module's config folder.
type Entry struct {
	Dir      string // folder holding liability_config.json
	Name     string // last segment of Dir, shown to users
	Document Document
	Summary  Summary
}

// Discover walks root and decodes liability_config.json from every folder
// below it. root itself is not checked. The walk stops at the first folder
// whose config cannot be read or decoded.
func Discover(fsys Reader, root string) ([]Entry, error) {
	var entries []Entry

	err := fsys.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || path == root {
			return nil
		}

		cfgPath := filepath.Join(path, ConfigFileName)
		if _, err := fsys.Stat(cfgPath); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}

		data, err := fsys.ReadFile(cfgPath)
		if err != nil {
			return err
		}
		doc, err := DecodeBytes(data)
		if err != nil {
			return &DecodeError{Path: cfgPath, Cause: errors.Unwrap(err)}
		}
		summary, err := doc.Summary()
		if err != nil {
			return &DecodeError{Path: cfgPath, Cause: errors.Unwrap(err)}
		}

		entries = append(entries, Entry{
			Dir:      path,
			Name:     palmpath.Base(path),
			Document: doc,
			Summary:  summary,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// WriteNext writes doc into dir as the next liability_config_N.json and
// returns the chosen file name.
func WriteNext(fsys Writer, dir string, doc Document) (string, error) {
	names, err := fsys.ListNames(dir)
	if err != nil {
		return "", &WriteError{Dir: dir, Cause: err}
	}

	data, err := Encode(doc)
	if err != nil {
		return "", &WriteError{Dir: dir, Cause: err}
	}

	name := artifact.NextLiabilityConfig(names)
	if err := fsys.WriteFileAtomic(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", &WriteError{Dir: dir, Cause: err}
	}

	return name, nil
}
