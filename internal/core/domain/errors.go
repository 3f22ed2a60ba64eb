package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedPackageKind is returned when resolution is requested for a
	// package kind the package-manager-backed resolver does not service.
	ErrUnsupportedPackageKind = zerr.New("unsupported package kind")

	// ErrUnknownPackageKind is returned when the caller passes an unrecognized
	// kind value. This is a programming error, not a runtime condition.
	ErrUnknownPackageKind = zerr.New("unknown package kind")

	// ErrInvalidScope is returned when the caller passes an unrecognized
	// install scope value. This is a programming error, not a runtime condition.
	ErrInvalidScope = zerr.New("invalid install scope")

	// ErrDirectoryNotFound is returned when the computed installation directory
	// does not exist. It typically means the installation step did not run, or
	// ran under a different scope.
	ErrDirectoryNotFound = zerr.New("installation directory not found")

	// ErrToolAlreadyDeclared is returned when a manifest declares the same
	// package name twice.
	ErrToolAlreadyDeclared = zerr.New("tool already declared")

	// ErrToolNotDeclared is returned when a requested package is not declared
	// in the manifest.
	ErrToolNotDeclared = zerr.New("tool not declared")

	// ErrNoToolsDeclared is returned when a resolution run has nothing to do.
	ErrNoToolsDeclared = zerr.New("no tools declared")
)
