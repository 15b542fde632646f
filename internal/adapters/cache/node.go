package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/latt/internal/adapters/config"
	"go.trai.ch/latt/internal/adapters/fs"
	"go.trai.ch/latt/internal/adapters/logger"
	"go.trai.ch/latt/internal/core/domain"
	"go.trai.ch/latt/internal/core/ports"
)

// NodeID is the unique identifier for the memo store Graft node.
const NodeID graft.ID = "adapter.memo_store"

func init() {
	graft.Register(graft.Node[ports.MemoStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID, logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.MemoStore, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.CacheDir, hasher, log), nil
		},
	})
}
