package app_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/latt/internal/adapters/cache"
	"go.trai.ch/latt/internal/adapters/fs"
	"go.trai.ch/latt/internal/adapters/watcher"
	"go.trai.ch/latt/internal/app"
	"go.trai.ch/latt/internal/core/domain"
	"go.trai.ch/latt/internal/core/ports/mocks"
	"go.trai.ch/latt/internal/engine/indexer"
	"go.trai.ch/latt/internal/engine/stats"
	"go.uber.org/mock/gomock"
)

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()
	return logger
}

func newPipeline(t *testing.T, roots ...string) *app.Pipeline {
	t.Helper()
	logger := quietLogger(t)

	cfg := domain.DefaultConfig()
	cfg.Roots = roots
	cfg.DebounceWindow = 50 * time.Millisecond
	cfg.CacheDir = filepath.Join(t.TempDir(), "cache")

	w, err := watcher.NewWatcher(cfg, logger)
	require.NoError(t, err)

	hasher := fs.NewHasher()
	store := cache.NewStore(cfg.CacheDir, hasher, logger)
	ix := indexer.New(logger)

	return app.New(cfg, w, ix, store, fs.NewWalker(), logger)
}

func TestPipeline_Scan(t *testing.T) {
	t.Run("indexes existing files before watching", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "a.rs"), []byte("x = 42; y = 42; z = 7;"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(root, "skip.txt"), []byte("99"), 0o644))

		p := newPipeline(t, root)
		require.NoError(t, p.Scan(context.Background()))

		lattice := p.Lattice().Stats()
		assert.Equal(t, 2, lattice.TotalValues)

		top := p.Lattice().TopValues(1)
		require.Len(t, top, 1)
		assert.Equal(t, "42", top[0].Text)
		assert.Equal(t, uint32(2), top[0].UsageCount)
	})

	t.Run("fails without roots", func(t *testing.T) {
		p := newPipeline(t)
		assert.ErrorIs(t, p.Scan(context.Background()), domain.ErrNoRootsConfigured)
	})

	t.Run("missing root is skipped", func(t *testing.T) {
		existing := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(existing, "a.rs"), []byte("1"), 0o644))

		p := newPipeline(t, filepath.Join(existing, "gone"), existing)
		require.NoError(t, p.Scan(context.Background()))

		assert.Equal(t, 1, p.Lattice().Stats().TotalValues)
	})
}

func TestPipeline_StartAndWatch(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.rs"), []byte("42"), 0o644))

	p := newPipeline(t, root)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, p.Start(ctx))
	defer func() { _ = p.Shutdown() }()

	// The initial scan already ran.
	require.Equal(t, 1, p.Lattice().Stats().TotalValues)

	// A file written after Start flows through debounce into the lattice.
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.rs"), []byte("7"), 0o644))

	require.Eventually(t, func() bool {
		return p.Lattice().Stats().TotalValues == 2
	}, 5*time.Second, 20*time.Millisecond)
}

func TestPipeline_Shutdown(t *testing.T) {
	root := t.TempDir()
	p := newPipeline(t, root)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, p.Start(ctx))

	require.NoError(t, p.Shutdown())

	// Shutdown is idempotent.
	require.NoError(t, p.Shutdown())
}

func TestPipeline_Clean(t *testing.T) {
	root := t.TempDir()
	p := newPipeline(t, root)

	cacheDir := p.Config().CacheDir
	require.NoError(t, os.MkdirAll(cacheDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(cacheDir, "entry"), []byte("x"), 0o644))

	require.NoError(t, p.Clean())

	_, err := os.Stat(cacheDir)
	assert.True(t, os.IsNotExist(err))
}

func TestComponents_Stats(t *testing.T) {
	root := t.TempDir()
	content := "x = 42; y = 42; z = 7;"
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.rs"), []byte(content), 0o644))

	logger := quietLogger(t)
	cfg := domain.DefaultConfig()
	cfg.Roots = []string{root}
	cfg.CacheDir = filepath.Join(t.TempDir(), "cache")

	w, err := watcher.NewWatcher(cfg, logger)
	require.NoError(t, err)

	hasher := fs.NewHasher()
	store := cache.NewStore(cfg.CacheDir, hasher, logger)
	walker := fs.NewWalker()
	ix := indexer.New(logger)

	components := &app.Components{
		Pipeline: app.New(cfg, w, ix, store, walker, logger),
		Derived:  stats.New(store, walker, cfg),
		Logger:   logger,
		Config:   cfg,
	}

	out := new(bytes.Buffer)
	require.NoError(t, components.Stats(context.Background(), nil, out, app.StatsOptions{Limit: 5}))

	assert.Contains(t, out.String(), "values:      2")
	assert.Contains(t, out.String(), "42")
	assert.Contains(t, out.String(), fmt.Sprintf("%d B", len(content)))
}
