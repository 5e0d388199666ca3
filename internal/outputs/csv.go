// Package outputs reads the CSV files pALM runs and the parser scripts
// leave behind, and shapes their series for display.
package outputs

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/Cyclone1070/palm/internal/logging"
	"github.com/charmbracelet/log"
)

// fileSystem is the filesystem surface the reader needs.
type fileSystem interface {
	ReadFile(path string) ([]byte, error)
	ReadDir(path string) ([]fs.DirEntry, error)
	WalkDir(root string, fn fs.WalkDirFunc) error
}

// CSVFile is one parsed output file.
type CSVFile struct {
	Path string
	Name string
	Data [][]string
}

// Reader loads output CSVs from a folder.
type Reader struct {
	fs     fileSystem
	logger *log.Logger
}

// NewReader creates a Reader. logger may be nil.
func NewReader(fsys fileSystem, logger *log.Logger) *Reader {
	if fsys == nil {
		panic("fs is required")
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Reader{fs: fsys, logger: logger}
}

// ReadFiles parses every .csv file under root whose name contains filter
// (any name when filter is empty). Paths matched by root's .palmignore are
// skipped.
//
// With recursive set the whole tree is walked and the first unreadable file
// aborts the call. Otherwise only root's own files are read, and bad files
// are logged and skipped.
func (r *Reader) ReadFiles(root, filter string, recursive bool) ([]CSVFile, error) {
	ignore, err := NewIgnoreMatcher(root, r.fs)
	if err != nil {
		return nil, err
	}

	if recursive {
		return r.walk(root, filter, ignore)
	}

	entries, err := r.fs.ReadDir(root)
	if err != nil {
		r.logger.Error("reading output folder", "dir", root, "err", err)
		return nil, err
	}

	var result []CSVFile
	for _, entry := range entries {
		if entry.IsDir() || ignore.ShouldIgnore(entry.Name(), false) {
			continue
		}

		path := filepath.Join(root, entry.Name())
		file, err := r.processFile(path, entry.Name(), filter)
		if err != nil {
			r.logger.Warn("skipping output file", "path", path, "err", err)
			continue
		}
		if file != nil {
			result = append(result, *file)
		}
	}
	return result, nil
}

func (r *Reader) walk(root, filter string, ignore *IgnoreMatcher) ([]CSVFile, error) {
	var result []CSVFile

	err := r.fs.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		if ignore.ShouldIgnore(rel, d.IsDir()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		file, err := r.processFile(path, d.Name(), filter)
		if err != nil {
			r.logger.Error("processing output file", "path", path, "err", err)
			return err
		}
		if file != nil {
			result = append(result, *file)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// processFile returns nil, nil for files that are not CSVs or fail filter.
func (r *Reader) processFile(path, name, filter string) (*CSVFile, error) {
	if !IsCSV(name) {
		return nil, nil
	}
	if filter != "" && !strings.Contains(name, filter) {
		return nil, nil
	}

	data, err := r.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	records, err := ParseCSV(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Path: path, Cause: err}
	}

	return &CSVFile{Path: path, Name: name, Data: records}, nil
}

// IsCSV reports whether name has a .csv extension, in any case.
func IsCSV(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".csv")
}

// ParseCSV reads records after stripping trailing commas from every line.
// pALM pads rows with empty trailing columns, so rows may differ in length.
func ParseCSV(r io.Reader) ([][]string, error) {
	var buf bytes.Buffer
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		buf.WriteString(strings.TrimRight(scanner.Text(), ","))
		buf.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	reader := csv.NewReader(&buf)
	reader.FieldsPerRecord = -1

	var data [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		data = append(data, record)
	}
	return data, nil
}
