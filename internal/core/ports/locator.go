package ports

import "github.com/riggbuild/rigg/internal/core/domain"

// PackageLocator resolves the files a prior installation step placed for
// a package under a given install scope.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type PackageLocator interface {
	// Resolve computes the directory the package manager would have used
	// for the package and returns it together with every file under it,
	// recursively. It fails with domain.ErrDirectoryNotFound when the
	// computed directory does not exist, and with
	// domain.ErrUnsupportedPackageKind or domain.ErrUnknownPackageKind
	// before touching the filesystem when the kind is not serviceable.
	// An existing but empty directory is an empty file list, not an error.
	Resolve(ref domain.PackageReference, kind domain.PackageKind, scope domain.InstallScope) (string, []domain.File, error)
}
