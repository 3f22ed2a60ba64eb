// Package ports defines the core interfaces for the application.
package ports

import (
	"iter"

	"github.com/riggbuild/rigg/internal/core/domain"
)

// Filesystem abstracts the disk operations the resolver performs. All
// enumeration methods are lazy and swallow I/O errors mid-walk; existence
// checks are the only operations whose outcome ever reaches the caller.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type Filesystem interface {
	// DirectoryExists reports whether path exists and is a directory.
	DirectoryExists(path string) bool

	// FileExists reports whether path exists and is a regular file.
	FileExists(path string) bool

	// CreateDirectory creates the directory at path, including parents.
	// It is idempotent: an already-existing directory is not an error.
	CreateDirectory(path string) error

	// ReadLines reads the file at path and returns its lines.
	ReadLines(path string) ([]string, error)

	// ListFiles yields every file under dir, recursively, in filesystem
	// enumeration order.
	ListFiles(dir string) iter.Seq[domain.File]

	// Subdirectories yields the immediate subdirectories of dir whose
	// base name matches the glob pattern, in filesystem enumeration order.
	Subdirectories(dir, pattern string) iter.Seq[string]
}
