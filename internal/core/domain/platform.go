package domain

// Platform is the operating system family the resolver is running on.
// Path conventions differ per family; anything unrecognized falls back
// to PlatformOther, which resolves against the working directory.
type Platform int

const (
	PlatformLinux Platform = iota
	PlatformOSX
	PlatformWindows
	PlatformOther
)

// String returns a human-readable name for the platform family.
func (p Platform) String() string {
	switch p {
	case PlatformLinux:
		return "linux"
	case PlatformOSX:
		return "osx"
	case PlatformWindows:
		return "windows"
	default:
		return "other"
	}
}
