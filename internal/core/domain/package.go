// Package domain contains the core value objects for rigg.
package domain

import "strings"

// PackageReference identifies a tool package declared by the project.
// It is immutable once created; the version specifier is carried for
// identity and reporting only and is never consulted during resolution.
type PackageReference struct {
	// Name is the package name as published to the registry.
	// It may carry a scope prefix (e.g., "@angular/cli").
	Name InternedString

	// Version is the requested version or source specifier (e.g., "5.4.5").
	Version InternedString
}

// NewPackageReference creates a PackageReference from raw name and version strings.
func NewPackageReference(name, version string) PackageReference {
	return PackageReference{
		Name:    NewInternedString(name),
		Version: NewInternedString(version),
	}
}

// IsScoped reports whether the package name carries a scope prefix.
func (r PackageReference) IsScoped() bool {
	return strings.HasPrefix(r.Name.String(), "@")
}

// String returns the canonical "name@version" form, or just the name
// when no version was declared.
func (r PackageReference) String() string {
	if r.Version.String() == "" {
		return r.Name.String()
	}
	return r.Name.String() + "@" + r.Version.String()
}

// PackageKind distinguishes the purpose a package serves for the build.
type PackageKind int

const (
	// KindUnknown is the zero value and is never valid in a resolution request.
	KindUnknown PackageKind = iota

	// KindTool marks packages that provide executables or assets consumed
	// by build tasks. Only tool packages can be resolved.
	KindTool

	// KindAddin marks packages that would extend the host itself. The
	// package-manager-backed resolver does not service them.
	KindAddin
)

// String returns the lowercase name of the kind.
func (k PackageKind) String() string {
	switch k {
	case KindTool:
		return "tool"
	case KindAddin:
		return "addin"
	default:
		return "unknown"
	}
}
