// Package fs provides the operating-system filesystem adapter.
package fs

import (
	"bufio"
	iofs "io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/riggbuild/rigg/internal/core/domain"
	"github.com/riggbuild/rigg/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Filesystem = (*Filesystem)(nil)

// Filesystem implements ports.Filesystem on top of the os package.
type Filesystem struct{}

// NewFilesystem creates a new Filesystem.
func NewFilesystem() *Filesystem {
	return &Filesystem{}
}

// DirectoryExists reports whether path exists and is a directory.
func (f *Filesystem) DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// FileExists reports whether path exists and is a regular file.
func (f *Filesystem) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// CreateDirectory creates the directory at path, including parents.
// An already-existing directory is not an error.
func (f *Filesystem) CreateDirectory(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", path)
	}
	return nil
}

// ReadLines reads the file at path and returns its lines without trailing
// newline characters.
func (f *Filesystem) ReadLines(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer file.Close() //nolint:errcheck // Best effort close in defer

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}
	return lines, nil
}

// ListFiles yields every file under dir, recursively, in filesystem
// enumeration order. Walk errors terminate the sequence silently.
func (f *Filesystem) ListFiles(dir string) iter.Seq[domain.File] {
	return func(yield func(domain.File) bool) {
		_ = filepath.WalkDir(dir, func(path string, d iofs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if !yield(domain.NewFile(path)) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// Subdirectories yields the immediate subdirectories of dir whose base name
// matches pattern, in filesystem enumeration order. An unreadable dir yields
// nothing.
func (f *Filesystem) Subdirectories(dir, pattern string) iter.Seq[string] {
	return func(yield func(string) bool) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if matched, _ := filepath.Match(pattern, entry.Name()); !matched {
				continue
			}
			if !yield(filepath.Join(dir, entry.Name())) {
				return
			}
		}
	}
}
