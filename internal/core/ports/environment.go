package ports

import "github.com/riggbuild/rigg/internal/core/domain"

// Environment abstracts the process environment the resolver runs in.
//
//go:generate go run go.uber.org/mock/mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type Environment interface {
	// WorkingDirectory returns the absolute project working directory.
	WorkingDirectory() string

	// Platform returns the operating system family.
	Platform() domain.Platform

	// LookupEnv returns the value of the named environment variable and
	// whether it is set.
	LookupEnv(name string) (string, bool)
}
