package ports

import "github.com/riggbuild/rigg/internal/core/domain"

// ConfigLoader defines the interface for loading the project manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the named manifest file from the given working directory.
	// An empty name selects the loader's default manifest file.
	Load(cwd, name string) (*domain.Manifest, error)
}
