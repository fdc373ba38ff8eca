package lockfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pin/internal/adapters/config"
	"go.trai.ch/pin/internal/adapters/fs"
	"go.trai.ch/pin/internal/adapters/logger"
	"go.trai.ch/pin/internal/adapters/project"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
)

const NodeID graft.ID = "adapter.lock_persister"

func init() {
	graft.Register(graft.Node[ports.LockPersister]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ResolverNodeID,
			project.NodeID,
			config.SettingsNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.LockPersister, error) {
			resolver, err := graft.Dep[ports.PathResolver](ctx)
			if err != nil {
				return nil, err
			}
			buildCtx, err := graft.Dep[ports.BuildContext](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewReaderWriter(resolver, buildCtx, settings.LockFileOverride, log), nil
		},
	})
}
