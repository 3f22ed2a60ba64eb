// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/riggbuild/rigg/internal/adapters/config"
	_ "github.com/riggbuild/rigg/internal/adapters/env"
	_ "github.com/riggbuild/rigg/internal/adapters/fs"
	_ "github.com/riggbuild/rigg/internal/adapters/logger"
	_ "github.com/riggbuild/rigg/internal/adapters/npm"
	// Register app nodes.
	_ "github.com/riggbuild/rigg/internal/app"
)
