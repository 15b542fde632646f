package stats_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/latt/internal/adapters/fs"
	"go.trai.ch/latt/internal/core/domain"
	"go.trai.ch/latt/internal/core/ports"
	"go.trai.ch/latt/internal/core/ports/mocks"
	"go.trai.ch/latt/internal/engine/stats"
	"go.uber.org/mock/gomock"
)

// passthroughStore runs every computation and records the keys and
// dependencies it was handed.
func passthroughStore(ctrl *gomock.Controller, keys *[]string, deps *[][]string) *mocks.MockMemoStore {
	store := mocks.NewMockMemoStore(ctrl)
	store.EXPECT().
		GetOrCompute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string, d []string, compute ports.ComputeFunc) ([]byte, error) {
			*keys = append(*keys, key)
			*deps = append(*deps, d)
			return compute()
		}).
		AnyTimes()
	return store
}

func seedTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "main.rs"), []byte("fn main() {}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "lib.rs"), []byte("pub fn f() {}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Cargo.toml"), []byte("[package]"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("ignored"), 0o644))
	return root
}

func TestDerived_FileCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	var keys []string
	var deps [][]string

	root := seedTree(t)
	d := stats.New(passthroughStore(ctrl, &keys, &deps), fs.NewWalker(), domain.DefaultConfig())

	count, err := d.FileCount(context.Background(), root)
	require.NoError(t, err)

	// notes.txt is not a recognized extension
	assert.Equal(t, "3", count)
	require.Len(t, keys, 1)
	assert.Equal(t, "file_count:"+root, keys[0])
	assert.Equal(t, []string{root}, deps[0])
}

func TestDerived_ExtensionHistogram(t *testing.T) {
	ctrl := gomock.NewController(t)
	var keys []string
	var deps [][]string

	root := seedTree(t)
	d := stats.New(passthroughStore(ctrl, &keys, &deps), fs.NewWalker(), domain.DefaultConfig())

	histogram, err := d.ExtensionHistogram(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"rs": 2, "toml": 1}, histogram)
	require.Len(t, deps, 1)
	assert.Equal(t, []string{root}, deps[0])
}

func TestDerived_DiskUsage(t *testing.T) {
	t.Run("sums all files and formats bytes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		var keys []string
		var deps [][]string

		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "a.rs"), make([]byte, 2048), 0o644))

		d := stats.New(passthroughStore(ctrl, &keys, &deps), fs.NewWalker(), domain.DefaultConfig())

		usage, err := d.DiskUsage(context.Background(), root)
		require.NoError(t, err)

		assert.Equal(t, "2.0 KiB", usage)
		// Volatile result: no file dependencies, validity comes from the
		// time bucket folded into the key.
		assert.Nil(t, deps[0])
	})

	t.Run("key changes across time buckets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		var keys []string
		var deps [][]string

		root := t.TempDir()
		store := passthroughStore(ctrl, &keys, &deps)

		base := time.Unix(1_000_000, 0)
		d := stats.New(store, fs.NewWalker(), domain.DefaultConfig()).WithClock(func() time.Time { return base })

		_, err := d.DiskUsage(context.Background(), root)
		require.NoError(t, err)

		d = d.WithClock(func() time.Time { return base.Add(31 * time.Second) })
		_, err = d.DiskUsage(context.Background(), root)
		require.NoError(t, err)

		require.Len(t, keys, 2)
		assert.NotEqual(t, keys[0], keys[1])
	})

	t.Run("key is stable inside a bucket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		var keys []string
		var deps [][]string

		root := t.TempDir()
		base := time.Unix(1_000_020, 0) // 20s into a 30s bucket
		d := stats.New(passthroughStore(ctrl, &keys, &deps), fs.NewWalker(), domain.DefaultConfig()).
			WithClock(func() time.Time { return base })

		_, err := d.DiskUsage(context.Background(), root)
		require.NoError(t, err)

		d = d.WithClock(func() time.Time { return base.Add(5 * time.Second) })
		_, err = d.DiskUsage(context.Background(), root)
		require.NoError(t, err)

		require.Len(t, keys, 2)
		assert.Equal(t, keys[0], keys[1])
	})
}
