package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/latt/internal/adapters/config"
	"go.trai.ch/latt/internal/adapters/logger"
	"go.trai.ch/latt/internal/core/domain"
	"go.trai.ch/latt/internal/core/ports"
)

// NodeID is the unique identifier for the file watcher Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Watcher, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(cfg, log)
		},
	})
}
