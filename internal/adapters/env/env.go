// Package env provides the operating-system environment adapter.
package env

import (
	"os"
	"runtime"

	"github.com/riggbuild/rigg/internal/core/domain"
	"github.com/riggbuild/rigg/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Environment = (*Environment)(nil)

// Environment implements ports.Environment on top of the os package.
// The working directory is captured once at construction; resolution
// must see a stable working directory for the lifetime of a run.
type Environment struct {
	workdir  string
	platform domain.Platform
}

// New creates an Environment rooted at the current working directory.
func New() (*Environment, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine working directory")
	}
	return &Environment{
		workdir:  wd,
		platform: platformFromGOOS(runtime.GOOS),
	}, nil
}

// WorkingDirectory returns the absolute project working directory.
func (e *Environment) WorkingDirectory() string {
	return e.workdir
}

// Platform returns the operating system family.
func (e *Environment) Platform() domain.Platform {
	return e.platform
}

// LookupEnv returns the value of the named environment variable and
// whether it is set.
func (e *Environment) LookupEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

func platformFromGOOS(goos string) domain.Platform {
	switch goos {
	case "linux":
		return domain.PlatformLinux
	case "darwin":
		return domain.PlatformOSX
	case "windows":
		return domain.PlatformWindows
	default:
		return domain.PlatformOther
	}
}
