// Package config provides the configuration loader for rigg.
package config

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/riggbuild/rigg/internal/core/domain"
	"github.com/riggbuild/rigg/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// Load reads the named configuration file from the given working directory.
// An empty name falls back to the loader's default filename.
func (l *FileConfigLoader) Load(cwd, name string) (*domain.Manifest, error) {
	if name == "" {
		name = l.Filename
	}
	return Load(filepath.Join(cwd, name))
}

// Load reads a configuration file from the given path and returns a domain.Manifest.
func Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var riggfile Riggfile
	if err := yaml.Unmarshal(data, &riggfile); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	manifest := domain.NewManifest()
	manifest.ToolsDir = riggfile.ToolsDir

	// Sort names so the manifest order is stable across loads
	names := make([]string, 0, len(riggfile.Packages))
	for name := range riggfile.Packages {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		dto := riggfile.Packages[name]

		scope, err := domain.ParseInstallScope(dto.Scope)
		if err != nil {
			return nil, zerr.With(err, "package", name)
		}

		decl := domain.ToolDeclaration{
			Package: domain.NewPackageReference(name, dto.Version),
			Scope:   scope,
		}
		if err := manifest.AddTool(decl); err != nil {
			return nil, err
		}
	}

	return manifest, nil
}
