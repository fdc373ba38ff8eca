package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pin/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pin/internal/adapters/lockfile" //nolint:depguard // Wired in app layer
	"go.trai.ch/pin/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			lockfile.NodeID,
			config.SettingsNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			persister, err := graft.Dep[ports.LockPersister](ctx)
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
			return New(persister, settings, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			lockfile.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			persister, err := graft.Dep[ports.LockPersister](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:       application,
				Logger:    log,
				Persister: persister,
			}, nil
		},
	})
}
