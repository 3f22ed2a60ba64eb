package domain

import "go.trai.ch/zerr"

// InstallScope selects which root directory convention is used to locate
// the files of an installed package.
type InstallScope int

const (
	// ScopeGlobal resolves against the package manager's global prefix.
	ScopeGlobal InstallScope = iota

	// ScopeWorkingDirectory resolves against the project's own node_modules.
	ScopeWorkingDirectory

	// ScopeToolsDirectory resolves against the host's tool-cache directory.
	ScopeToolsDirectory
)

// String returns the configuration spelling of the scope.
func (s InstallScope) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopeWorkingDirectory:
		return "workdir"
	case ScopeToolsDirectory:
		return "tools"
	default:
		return "invalid"
	}
}

// ParseInstallScope converts a configuration or CLI string into an InstallScope.
func ParseInstallScope(s string) (InstallScope, error) {
	switch s {
	case "global":
		return ScopeGlobal, nil
	case "workdir", "":
		return ScopeWorkingDirectory, nil
	case "tools":
		return ScopeToolsDirectory, nil
	default:
		return ScopeWorkingDirectory, zerr.With(ErrInvalidScope, "scope", s)
	}
}
