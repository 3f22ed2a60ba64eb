// Package npm locates the files an npm installation step placed for a package.
package npm

import (
	"iter"
	"path/filepath"

	"github.com/riggbuild/rigg/internal/core/domain"
	"github.com/riggbuild/rigg/internal/core/ports"
	"go.trai.ch/zerr"
)

const modulesDir = "node_modules"

var _ ports.PackageLocator = (*Locator)(nil)

// Locator implements ports.PackageLocator for npm-installed packages.
// It computes the directory npm would have used for a given install scope
// and returns everything found underneath it.
//
// Scoped packages can be requested either by their full "@scope/name"
// (matched directly under the modules root) or by the bare name (found by
// searching the "@*" scope directories); the first match wins.
type Locator struct {
	fs       ports.Filesystem
	env      ports.Environment
	settings ports.Settings
}

// NewLocator creates a new Locator.
func NewLocator(fs ports.Filesystem, env ports.Environment, settings ports.Settings) *Locator {
	return &Locator{fs: fs, env: env, settings: settings}
}

// Resolve returns the package's installation directory and every file under
// it, recursively. Addin packages are rejected before any filesystem access;
// npm cannot service them.
func (l *Locator) Resolve(ref domain.PackageReference, kind domain.PackageKind, scope domain.InstallScope) (string, []domain.File, error) {
	switch kind {
	case domain.KindTool:
	case domain.KindAddin:
		return "", nil, zerr.With(domain.ErrUnsupportedPackageKind, "package", ref.String())
	default:
		err := zerr.With(domain.ErrUnknownPackageKind, "package", ref.String())
		return "", nil, zerr.With(err, "kind", int(kind))
	}

	dir, err := l.resolveDirectory(ref, scope)
	if err != nil {
		return "", nil, err
	}
	if dir == "" || !l.fs.DirectoryExists(dir) {
		err := zerr.With(domain.ErrDirectoryNotFound, "package", ref.Name.String())
		return "", nil, zerr.With(err, "scope", scope.String())
	}

	files := make([]domain.File, 0)
	for f := range l.fs.ListFiles(dir) {
		files = append(files, f)
	}
	return dir, files, nil
}

// resolveDirectory computes the installation directory for the given scope.
// An empty result means no candidate directory exists; the caller turns
// that into ErrDirectoryNotFound.
func (l *Locator) resolveDirectory(ref domain.PackageReference, scope domain.InstallScope) (string, error) {
	switch scope {
	case domain.ScopeGlobal:
		prefix := l.globalPrefix()
		pol := policyFor(l.env.Platform())
		if pol.binarySubdir == "" {
			return prefix, nil
		}
		return filepath.Join(prefix, pol.binarySubdir), nil

	case domain.ScopeWorkingDirectory:
		root := filepath.Join(l.env.WorkingDirectory(), modulesDir)
		return l.packageDirectory(root, ref.Name.String()), nil

	case domain.ScopeToolsDirectory:
		cache := l.settings.ToolCachePath(l.env.WorkingDirectory())
		// Creation failures surface as a missing directory below.
		_ = l.fs.CreateDirectory(cache)
		root := filepath.Join(cache, modulesDir)
		return l.packageDirectory(root, ref.Name.String()), nil

	default:
		return "", zerr.With(domain.ErrInvalidScope, "scope", int(scope))
	}
}

// packageDirectory returns the directory holding the package under the
// modules root, or empty when no candidate exists on disk.
func (l *Locator) packageDirectory(root, name string) string {
	for candidate := range l.candidateDirs(root, name) {
		if l.fs.DirectoryExists(candidate) {
			return candidate
		}
	}
	return ""
}

// candidateDirs yields the direct path first, then one candidate per "@*"
// scope directory under the modules root, in filesystem enumeration order.
// The scope directories are only read when the direct path misses.
func (l *Locator) candidateDirs(root, name string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield(filepath.Join(root, name)) {
			return
		}
		for scopeDir := range l.fs.Subdirectories(root, "@*") {
			if !yield(filepath.Join(scopeDir, name)) {
				return
			}
		}
	}
}
