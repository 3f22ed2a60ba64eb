package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/riggbuild/rigg/internal/core/ports"
)

const (
	FilesystemNodeID graft.ID = "adapter.fs.filesystem"
	HasherNodeID     graft.ID = "adapter.fs.hasher"
)

func init() {
	// Filesystem Node
	graft.Register(graft.Node[ports.Filesystem]{
		ID:        FilesystemNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Filesystem, error) {
			return NewFilesystem(), nil
		},
	})

	// Hasher Node
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
