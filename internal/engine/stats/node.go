package stats

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/latt/internal/adapters/cache"
	"go.trai.ch/latt/internal/adapters/config"
	"go.trai.ch/latt/internal/adapters/fs"
	"go.trai.ch/latt/internal/core/domain"
	"go.trai.ch/latt/internal/core/ports"
)

// NodeID is the unique identifier for the derived stats Graft node.
const NodeID graft.ID = "engine.stats"

func init() {
	graft.Register(graft.Node[*Derived]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cache.NodeID, fs.WalkerNodeID, config.NodeID},
		Run: func(ctx context.Context) (*Derived, error) {
			store, err := graft.Dep[ports.MemoStore](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[ports.Walker](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(store, walker, cfg), nil
		},
	})
}
