package domain

import (
	"path/filepath"
	"strings"
)

// File is a handle to a single file under a resolved installation directory.
// The path is absolute; the file itself is owned by the filesystem adapter.
type File struct {
	Path InternedString
}

// NewFile creates a File handle for the given absolute path.
func NewFile(path string) File {
	return File{Path: NewInternedString(path)}
}

// Relative returns the file path rebased onto the given root directory,
// using forward slashes regardless of platform. It returns the absolute
// path unchanged when the file is not under root.
func (f File) Relative(root string) string {
	rel, err := filepath.Rel(root, f.Path.String())
	if err != nil || strings.HasPrefix(rel, "..") {
		return f.Path.String()
	}
	return filepath.ToSlash(rel)
}
