package npm

import (
	"path/filepath"
	"strings"
)

const (
	// prefixEnvVar is the variable npm itself sets to record the
	// configured global prefix.
	prefixEnvVar = "npm_config_prefix"

	// npmrcFile is npm's per-user configuration file name.
	npmrcFile = ".npmrc"

	prefixKey = "prefix="
)

// globalPrefix discovers the npm global prefix. It never fails: each
// strategy degrades to the next, ending at the platform default.
func (l *Locator) globalPrefix() string {
	if prefix, ok := l.prefixFromEnv(); ok {
		return prefix
	}
	if prefix, ok := l.prefixFromConfig(); ok {
		return prefix
	}
	return l.defaultPrefix()
}

// prefixFromEnv reads npm's prefix variable. Blank values count as unset.
func (l *Locator) prefixFromEnv() (string, bool) {
	value, ok := l.env.LookupEnv(prefixEnvVar)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

// prefixFromConfig reads the first "prefix=" line of the user's .npmrc.
// Read failures fall through to the platform default.
func (l *Locator) prefixFromConfig() (string, bool) {
	path := l.npmrcPath()
	if !l.fs.FileExists(path) {
		return "", false
	}
	lines, err := l.fs.ReadLines(path)
	if err != nil {
		return "", false
	}
	for _, line := range lines {
		if value, ok := strings.CutPrefix(strings.TrimSpace(line), prefixKey); ok {
			return value, true
		}
	}
	return "", false
}

// npmrcPath locates the per-user npm configuration file. When the platform
// has no home directory concept, or the home variable is unset, the working
// directory stands in.
func (l *Locator) npmrcPath() string {
	pol := policyFor(l.env.Platform())

	home := ""
	if pol.homeVar != "" {
		home, _ = l.env.LookupEnv(pol.homeVar)
	}
	if strings.TrimSpace(home) == "" {
		home = l.env.WorkingDirectory()
	}
	return filepath.Join(home, npmrcFile)
}

// defaultPrefix is the hard platform fallback of the discovery chain.
func (l *Locator) defaultPrefix() string {
	pol := policyFor(l.env.Platform())
	if pol.defaultPrefix == "" {
		return l.env.WorkingDirectory()
	}
	return pol.defaultPrefix
}
