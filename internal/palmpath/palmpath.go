// Package palmpath relates pALM paths to each other as plain strings.
//
// Every function here is a pure transform: nothing touches the filesystem,
// so results are identical for paths that do not exist on disk. Inputs may
// mix '\' and '/' separators; output always uses '/'.
package palmpath

import (
	"regexp"
	"strings"
)

// Separator is the only separator emitted by this package.
const Separator = "/"

// fileNamePattern matches a final segment that names a file: word, comma,
// hyphen or whitespace characters, a dot, then a 2 to 5 letter extension.
// Whitespace includes vertical tab, every Unicode space separator, BOM and
// the line and paragraph separators, not just RE2's ASCII \s.
var fileNamePattern = regexp.MustCompile(`^[\w,\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029}-]+\.[A-Za-z]{2,5}$`)

// Normalize replaces every backslash with a forward slash.
func Normalize(path string) string {
	return strings.ReplaceAll(path, `\`, Separator)
}

// IsFileName reports whether segment looks like a file name rather than a
// directory name.
func IsFileName(segment string) bool {
	return fileNamePattern.MatchString(segment)
}

// Segments normalizes path and splits it on '/'. Empty segments are kept.
func Segments(path string) []string {
	return strings.Split(Normalize(path), Separator)
}

// Base returns the last segment of path, or "" for an empty path.
func Base(path string) string {
	segs := Segments(path)
	return segs[len(segs)-1]
}

// RelativePathFrom returns the path that leads from basePath to fullPath.
//
// This is a segment-prefix diff: one ".." per base segment past the common
// prefix, then the remaining segments of fullPath. A base that names a file
// is not trimmed, so it costs one extra "..". Callers that hold a file path
// must strip the file segment first (TraversalPathToFolder does).
func RelativePathFrom(basePath, fullPath string) string {
	base := Segments(basePath)
	full := Segments(fullPath)

	common := 0
	for common < len(base) && common < len(full) && base[common] == full[common] {
		common++
	}

	up := len(base) - common
	parts := make([]string, 0, up+len(full)-common)
	for range up {
		parts = append(parts, "..")
	}
	parts = append(parts, full[common:]...)

	return strings.Join(parts, Separator)
}

// ResolvePath applies relativePath to basePath textually.
//
// A final base segment that looks like a file name is dropped first, so the
// walk starts from its directory. ".." pops a segment, "." is skipped and
// anything else is appended. Popping an empty list does nothing: ascending
// past the root is absorbed, never reported.
func ResolvePath(basePath, relativePath string) string {
	parts := Segments(basePath)
	if IsFileName(parts[len(parts)-1]) {
		parts = parts[:len(parts)-1]
	}

	for _, seg := range Segments(relativePath) {
		switch seg {
		case "..":
			if len(parts) > 0 {
				parts = parts[:len(parts)-1]
			}
		case ".":
		default:
			parts = append(parts, seg)
		}
	}

	return strings.Join(parts, Separator)
}

// TraversalPathToFolder returns the relative path from basePath to the
// folder that holds filePath.
//
// ok is false when the two paths are equal after normalization, or when
// nothing is left once empty segments and a trailing file name are removed.
// Both mean the same thing to callers: run from the base itself, no subpath
// argument needed.
func TraversalPathToFolder(basePath, filePath string) (traversal string, ok bool) {
	base := Normalize(basePath)
	file := Normalize(filePath)
	if base == file {
		return "", false
	}

	var segs []string
	for _, seg := range strings.Split(RelativePathFrom(base, file), Separator) {
		if seg != "" {
			segs = append(segs, seg)
		}
	}

	if n := len(segs); n > 0 && IsFileName(segs[n-1]) {
		segs = segs[:n-1]
	}
	if len(segs) == 0 {
		return "", false
	}

	return strings.Join(segs, Separator), true
}
