package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/riggbuild/rigg/internal/adapters/config" //nolint:depguard // Wired in app layer
	"github.com/riggbuild/rigg/internal/adapters/env"    //nolint:depguard // Wired in app layer
	"github.com/riggbuild/rigg/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"github.com/riggbuild/rigg/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"github.com/riggbuild/rigg/internal/adapters/npm"    //nolint:depguard // Wired in app layer
	"github.com/riggbuild/rigg/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles everything the CLI entrypoint needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.SettingsNodeID,
			env.NodeID,
			fs.HasherNodeID,
			logger.NodeID,
			npm.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	locator, err := graft.Dep[ports.PackageLocator](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	environment, err := graft.Dep[ports.Environment](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[*config.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, locator, hasher, log, environment, settings), nil
}
