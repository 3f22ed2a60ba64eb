package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riggbuild/rigg/internal/adapters/fs"
	"github.com/riggbuild/rigg/internal/core/domain"
)

func writeFiles(t *testing.T, root string, contents map[string]string) []domain.File {
	t.Helper()
	files := make([]domain.File, 0, len(contents))
	for name, content := range contents {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		files = append(files, domain.NewFile(path))
	}
	return files
}

func TestHasher_DigestFiles_Deterministic(t *testing.T) {
	tmpDir := t.TempDir()
	hasher := fs.NewHasher()

	files := writeFiles(t, tmpDir, map[string]string{
		"index.js":    "module.exports = {}",
		"lib/util.js": "exports.noop = () => {}",
	})

	d1, err := hasher.DigestFiles(files)
	require.NoError(t, err)

	// Reversed input order must produce the same digest
	reversed := []domain.File{files[len(files)-1], files[0]}
	d2, err := hasher.DigestFiles(reversed)
	require.NoError(t, err)

	assert.Equal(t, d1, d2)
	assert.Len(t, d1, 16)
}

func TestHasher_DigestFiles_ContentSensitive(t *testing.T) {
	tmpDir := t.TempDir()
	hasher := fs.NewHasher()

	files := writeFiles(t, tmpDir, map[string]string{"index.js": "a"})
	d1, err := hasher.DigestFiles(files)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "index.js"), []byte("b"), 0o600))
	d2, err := hasher.DigestFiles(files)
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2)
}

func TestHasher_DigestFiles_Empty(t *testing.T) {
	hasher := fs.NewHasher()

	digest, err := hasher.DigestFiles(nil)
	require.NoError(t, err)
	assert.Len(t, digest, 16)
}

func TestHasher_DigestFiles_MissingFile(t *testing.T) {
	hasher := fs.NewHasher()

	missing := []domain.File{domain.NewFile(filepath.Join(t.TempDir(), "missing.js"))}
	_, err := hasher.DigestFiles(missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")
}
