package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riggbuild/rigg/internal/adapters/config"
	"github.com/riggbuild/rigg/internal/core/domain"
)

func writeRiggfile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rigg.yaml"), []byte(content), 0o600))
}

func TestLoader_Load(t *testing.T) {
	tmpDir := t.TempDir()
	writeRiggfile(t, tmpDir, `
version: "1"
toolsDir: .rigg/tools
packages:
  typescript:
    version: 5.4.5
    scope: tools
  "@angular/cli":
    version: 17.3.0
    scope: workdir
  eslint:
    version: 9.0.0
    scope: global
`)

	loader := &config.FileConfigLoader{Filename: "rigg.yaml"}
	manifest, err := loader.Load(tmpDir, "")
	require.NoError(t, err)

	assert.Equal(t, ".rigg/tools", manifest.ToolsDir)

	ts, err := manifest.Tool("typescript")
	require.NoError(t, err)
	assert.Equal(t, "5.4.5", ts.Package.Version.String())
	assert.Equal(t, domain.ScopeToolsDirectory, ts.Scope)

	ng, err := manifest.Tool("@angular/cli")
	require.NoError(t, err)
	assert.True(t, ng.Package.IsScoped())
	assert.Equal(t, domain.ScopeWorkingDirectory, ng.Scope)

	es, err := manifest.Tool("eslint")
	require.NoError(t, err)
	assert.Equal(t, domain.ScopeGlobal, es.Scope)

	assert.Len(t, manifest.Tools(), 3)
}

func TestLoader_Load_DefaultScope(t *testing.T) {
	tmpDir := t.TempDir()
	writeRiggfile(t, tmpDir, `
version: "1"
packages:
  typescript:
    version: 5.4.5
`)

	manifest, err := config.Load(filepath.Join(tmpDir, "rigg.yaml"))
	require.NoError(t, err)

	ts, err := manifest.Tool("typescript")
	require.NoError(t, err)
	assert.Equal(t, domain.ScopeWorkingDirectory, ts.Scope)
}

func TestLoader_Load_InvalidScope(t *testing.T) {
	tmpDir := t.TempDir()
	writeRiggfile(t, tmpDir, `
version: "1"
packages:
  typescript:
    version: 5.4.5
    scope: registry
`)

	_, err := config.Load(filepath.Join(tmpDir, "rigg.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidScope))
}

func TestLoader_Load_MissingFile(t *testing.T) {
	loader := &config.FileConfigLoader{Filename: "rigg.yaml"}
	_, err := loader.Load(t.TempDir(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoader_Load_MalformedYAML(t *testing.T) {
	tmpDir := t.TempDir()
	writeRiggfile(t, tmpDir, "packages: [not a map")

	_, err := config.Load(filepath.Join(tmpDir, "rigg.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoader_Load_StableOrder(t *testing.T) {
	tmpDir := t.TempDir()
	writeRiggfile(t, tmpDir, `
version: "1"
packages:
  zulu: {version: 1.0.0}
  alpha: {version: 1.0.0}
  mike: {version: 1.0.0}
`)

	manifest, err := config.Load(filepath.Join(tmpDir, "rigg.yaml"))
	require.NoError(t, err)

	var names []string
	for _, decl := range manifest.Tools() {
		names = append(names, decl.Package.Name.String())
	}
	assert.Equal(t, []string{"alpha", "mike", "zulu"}, names)
}

func TestLoader_Load_NamedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "ci.yaml"), []byte(`
version: "1"
packages:
  eslint:
    version: 9.0.0
`), 0o600))

	loader := &config.FileConfigLoader{Filename: "rigg.yaml"}

	// The named file wins over the loader's default
	manifest, err := loader.Load(tmpDir, "ci.yaml")
	require.NoError(t, err)
	_, err = manifest.Tool("eslint")
	require.NoError(t, err)

	// Without a name the default file is required, and it is absent here
	_, err = loader.Load(tmpDir, "")
	require.Error(t, err)
}
