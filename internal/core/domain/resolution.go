package domain

// Resolution is the result of locating one installed package on disk.
// It is recomputed on every call; the installation layout may change
// between runs, so resolutions are never persisted.
type Resolution struct {
	// Package is the reference the resolution was requested for.
	Package PackageReference

	// Scope is the install scope the directory was resolved under.
	Scope InstallScope

	// Directory is the installation directory the files were found under.
	Directory string

	// Files are all files under the resolved directory, recursively. An
	// installed but empty directory yields an empty slice.
	Files []File

	// Digest is a stable fingerprint of the file contents, used by the
	// host to detect layout changes between runs.
	Digest string
}
