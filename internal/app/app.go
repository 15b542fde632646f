// Package app implements the pipeline composition root for latt.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.trai.ch/latt/internal/core/domain"
	"go.trai.ch/latt/internal/core/ports"
	"go.trai.ch/latt/internal/engine/indexer"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Pipeline wires the watcher, the event channel and the indexer into a
// running process, and exposes the memo store alongside for derived
// computations. Exactly two logical threads of control exist while it runs:
// the watcher's notification context and the single indexer consumer loop.
type Pipeline struct {
	cfg     domain.Config
	watcher ports.Watcher
	indexer *indexer.Indexer
	memo    ports.MemoStore
	walker  ports.Walker
	logger  ports.Logger

	group *errgroup.Group
}

// New creates a Pipeline from its components.
func New(
	cfg domain.Config,
	watcher ports.Watcher,
	ix *indexer.Indexer,
	memo ports.MemoStore,
	walker ports.Walker,
	logger ports.Logger,
) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		watcher: watcher,
		indexer: ix,
		memo:    memo,
		walker:  walker,
		logger:  logger,
	}
}

// Scan indexes every recognized file already present under the configured
// roots. It runs synchronously on the caller's goroutine, before the
// consumer loop exists, so lattice mutation stays sequential.
func (p *Pipeline) Scan(ctx context.Context) error {
	if len(p.cfg.Roots) == 0 {
		return domain.ErrNoRootsConfigured
	}

	for _, root := range p.cfg.Roots {
		if _, err := os.Stat(root); err != nil {
			p.logger.Warn(zerr.With(domain.ErrRootNotFound, "root", root).Error())
			continue
		}
		for path := range p.walker.WalkFiles(root) {
			if !p.cfg.Recognized(path) {
				continue
			}
			p.indexer.Process(ctx, domain.FileChangeEvent{
				Path:        path,
				Kind:        domain.ChangeCreated,
				FileKind:    domain.KindForPath(path),
				ObservedAt:  time.Now(),
				ProjectRoot: root,
			})
		}
	}
	return nil
}

// Start registers the roots, runs the initial scan and spawns the consumer
// loop against the watcher's channel. A root that fails to register is
// logged and skipped; the pipeline only fails when no root could be watched.
func (p *Pipeline) Start(ctx context.Context) error {
	if len(p.cfg.Roots) == 0 {
		return domain.ErrNoRootsConfigured
	}

	registered := 0
	var lastErr error
	for _, root := range p.cfg.Roots {
		if err := p.watcher.AddRoot(root); err != nil {
			lastErr = err
			p.logger.Error(err)
			continue
		}
		registered++
		p.logger.Info(fmt.Sprintf("watching %s", root))
	}
	if registered == 0 {
		return zerr.Wrap(lastErr, "no roots could be watched")
	}

	if err := p.Scan(ctx); err != nil {
		return err
	}

	if err := p.watcher.Start(ctx); err != nil {
		return err
	}

	p.group, _ = errgroup.WithContext(ctx)
	p.group.Go(func() error {
		p.indexer.Run(ctx, p.watcher.Events())
		return nil
	})

	return nil
}

// Shutdown stops the watcher, which drops pending debounce timers and closes
// the channel, then waits for the consumer loop to drain what was already
// queued and exit. A file mid-scan always finishes.
func (p *Pipeline) Shutdown() error {
	err := p.watcher.Stop()
	if p.group != nil {
		_ = p.group.Wait()
	}
	return err
}

// Lattice returns the query surface of the value lattice.
func (p *Pipeline) Lattice() ports.LatticeReader {
	return p.indexer
}

// Memo returns the shared memoization store for derived computations.
func (p *Pipeline) Memo() ports.MemoStore {
	return p.memo
}

// Config returns the pipeline configuration.
func (p *Pipeline) Config() domain.Config {
	return p.cfg
}

// Clean removes the cache directory.
func (p *Pipeline) Clean() error {
	p.logger.Info(fmt.Sprintf("removing cache at %s...", p.cfg.CacheDir))
	if err := os.RemoveAll(p.cfg.CacheDir); err != nil {
		return zerr.Wrap(err, "failed to remove cache directory")
	}
	p.logger.Info("removed cache")
	return nil
}
