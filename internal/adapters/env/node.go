package env

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/riggbuild/rigg/internal/core/ports"
)

const NodeID graft.ID = "adapter.env"

func init() {
	graft.Register(graft.Node[ports.Environment]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Environment, error) {
			return New()
		},
	})
}
