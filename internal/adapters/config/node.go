package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/riggbuild/rigg/internal/adapters/env"
	"github.com/riggbuild/rigg/internal/core/ports"
)

const (
	NodeID         graft.ID = "adapter.config_loader"
	SettingsNodeID graft.ID = "adapter.config_settings"
)

func init() {
	// Loader Node
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			return &FileConfigLoader{Filename: "rigg.yaml"}, nil
		},
	})

	// Settings Node (concrete type so the app can apply manifest overrides)
	graft.Register(graft.Node[*Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{env.NodeID},
		Run: func(ctx context.Context) (*Settings, error) {
			environment, err := graft.Dep[ports.Environment](ctx)
			if err != nil {
				return nil, err
			}
			return NewSettings(environment), nil
		},
	})
}
