package config

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/riggbuild/rigg/internal/core/ports"
)

const (
	// toolsDirEnvVar overrides the tool-cache location when set.
	toolsDirEnvVar = "RIGG_TOOLS_DIR"

	// defaultToolsDir is the tool-cache location relative to the working
	// directory when nothing else is configured.
	defaultToolsDir = ".rigg/tools"
)

var _ ports.Settings = (*Settings)(nil)

// Settings implements ports.Settings from the environment and the manifest.
// Precedence: RIGG_TOOLS_DIR, then the manifest's toolsDir, then the
// default under the working directory. Relative values are interpreted
// against the working directory.
type Settings struct {
	env ports.Environment

	mu       sync.RWMutex
	toolsDir string
}

// NewSettings creates Settings backed by the given environment.
func NewSettings(env ports.Environment) *Settings {
	return &Settings{env: env}
}

// SetToolsDir applies the manifest's toolsDir override. The application
// calls this once after loading the manifest, before any resolution runs.
func (s *Settings) SetToolsDir(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toolsDir = dir
}

// ToolCachePath returns the directory rigg caches its tool dependencies in.
func (s *Settings) ToolCachePath(workdir string) string {
	s.mu.RLock()
	override := s.toolsDir
	s.mu.RUnlock()

	dir := defaultToolsDir
	if v, ok := s.env.LookupEnv(toolsDirEnvVar); ok && strings.TrimSpace(v) != "" {
		dir = v
	} else if override != "" {
		dir = override
	}

	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(workdir, dir)
}
