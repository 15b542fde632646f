package indexer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/latt/internal/adapters/logger"
	"go.trai.ch/latt/internal/core/ports"
)

// NodeID is the unique identifier for the indexer Graft node.
const NodeID graft.ID = "engine.indexer"

func init() {
	graft.Register(graft.Node[*Indexer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Indexer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
