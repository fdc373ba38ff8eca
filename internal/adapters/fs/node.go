package fs

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/pin/internal/core/ports"
)

const ResolverNodeID graft.ID = "adapter.fs.resolver"

func init() {
	graft.Register(graft.Node[ports.PathResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.PathResolver, error) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			return NewDirResolver(cwd), nil
		},
	})
}
