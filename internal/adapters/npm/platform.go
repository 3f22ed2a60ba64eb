package npm

import "github.com/riggbuild/rigg/internal/core/domain"

// policy captures the per-platform npm conventions the locator needs:
// the subdirectory holding global binaries under the prefix, the
// variable naming the user's home directory, and the fallback prefix
// when nothing is configured.
type policy struct {
	// binarySubdir is appended to the global prefix. Empty means the
	// prefix itself holds the binaries, which is npm's convention on
	// Windows.
	binarySubdir string

	// homeVar names the environment variable holding the user's home
	// directory. Empty means there is no home directory concept and
	// the working directory is used instead.
	homeVar string

	// defaultPrefix is the hard platform default used when neither the
	// environment nor the npm config names a prefix. Empty means the
	// working directory.
	defaultPrefix string
}

var policies = map[domain.Platform]policy{
	domain.PlatformLinux:   {binarySubdir: "bin", homeVar: "HOME", defaultPrefix: "/usr/local"},
	domain.PlatformOSX:     {binarySubdir: "bin", homeVar: "HOME", defaultPrefix: "/usr/local"},
	domain.PlatformWindows: {homeVar: "USERPROFILE", defaultPrefix: `C:\Program Files\nodejs`},
	domain.PlatformOther:   {},
}

// policyFor returns the conventions for the given platform family.
// Unrecognized families get the last-resort policy.
func policyFor(p domain.Platform) policy {
	if pol, ok := policies[p]; ok {
		return pol
	}
	return policies[domain.PlatformOther]
}
