package npm

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/riggbuild/rigg/internal/adapters/config"
	"github.com/riggbuild/rigg/internal/adapters/env"
	"github.com/riggbuild/rigg/internal/adapters/fs"
	"github.com/riggbuild/rigg/internal/core/ports"
)

const NodeID graft.ID = "adapter.npm.locator"

func init() {
	graft.Register(graft.Node[ports.PackageLocator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FilesystemNodeID, env.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.PackageLocator, error) {
			filesystem, err := graft.Dep[ports.Filesystem](ctx)
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

			return NewLocator(filesystem, environment, settings), nil
		},
	})
}
