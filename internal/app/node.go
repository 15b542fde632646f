package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/latt/internal/adapters/cache"
	"go.trai.ch/latt/internal/adapters/config"
	"go.trai.ch/latt/internal/adapters/fs"
	"go.trai.ch/latt/internal/adapters/logger"
	"go.trai.ch/latt/internal/adapters/telemetry"
	"go.trai.ch/latt/internal/adapters/watcher"
	"go.trai.ch/latt/internal/core/domain"
	"go.trai.ch/latt/internal/core/ports"
	"go.trai.ch/latt/internal/engine/indexer"
	"go.trai.ch/latt/internal/engine/stats"
)

// Components bundles everything the CLI needs.
type Components struct {
	Pipeline *Pipeline
	Derived  *stats.Derived
	Logger   ports.Logger
	Config   domain.Config
}

// NodeID is the unique identifier for the components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			watcher.NodeID,
			cache.NodeID,
			fs.WalkerNodeID,
			indexer.NodeID,
			stats.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			memo, err := graft.Dep[ports.MemoStore](ctx)
			if err != nil {
				return nil, err
			}
			walk, err := graft.Dep[ports.Walker](ctx)
			if err != nil {
				return nil, err
			}
			ix, err := graft.Dep[*indexer.Indexer](ctx)
			if err != nil {
				return nil, err
			}
			derived, err := graft.Dep[*stats.Derived](ctx)
			if err != nil {
				return nil, err
			}

			// Spans from the indexer surface as debug log lines.
			telemetry.Setup(log)

			return &Components{
				Pipeline: New(cfg, w, ix, memo, walk, log),
				Derived:  derived,
				Logger:   log,
				Config:   cfg,
			}, nil
		},
	})
}
