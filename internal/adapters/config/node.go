package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
)

const (
	LoaderNodeID   graft.ID = "adapter.settings_loader"
	SettingsNodeID graft.ID = "adapter.settings"
)

func init() {
	graft.Register(graft.Node[ports.SettingsLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.SettingsLoader, error) {
			return NewLoader(), nil
		},
	})

	// Settings Node (loaded once from the working directory)
	graft.Register(graft.Node[domain.Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{LoaderNodeID},
		Run: func(ctx context.Context) (domain.Settings, error) {
			loader, err := graft.Dep[ports.SettingsLoader](ctx)
			if err != nil {
				return domain.Settings{}, err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return domain.Settings{}, err
			}
			return loader.Load(cwd)
		},
	})
}
