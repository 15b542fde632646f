package config

import (
	"context"
	"errors"

	"github.com/grindlemire/graft"
	"go.trai.ch/latt/internal/adapters/logger"
	"go.trai.ch/latt/internal/core/domain"
	"go.trai.ch/latt/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline config Graft node.
const NodeID graft.ID = "adapter.config"

// LoaderNodeID is the unique identifier for the config loader Graft node.
const LoaderNodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	// A missing latt.yaml is not an error at wiring time: commands may
	// supply roots as arguments and run on defaults.
	graft.Register(graft.Node[domain.Config]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{LoaderNodeID},
		Run: func(ctx context.Context) (domain.Config, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return domain.Config{}, err
			}
			cfg, err := loader.Load(".")
			if err != nil {
				if errors.Is(err, domain.ErrConfigNotFound) {
					return domain.DefaultConfig(), nil
				}
				return domain.Config{}, err
			}
			return cfg, nil
		},
	})
}
