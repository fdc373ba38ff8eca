package project

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pin/internal/adapters/config"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
)

const NodeID graft.ID = "adapter.project_context"

func init() {
	graft.Register(graft.Node[ports.BuildContext]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.BuildContext, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewContext(RootProjectPath, settings.BuildScript), nil
		},
	})
}
