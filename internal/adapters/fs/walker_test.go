package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/latt/internal/adapters/fs"
)

func TestWalker_WalkFiles(t *testing.T) {
	mkfile := func(t *testing.T, root string, parts ...string) string {
		t.Helper()
		path := filepath.Join(append([]string{root}, parts...)...)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		return path
	}

	t.Run("yields files recursively", func(t *testing.T) {
		root := t.TempDir()
		a := mkfile(t, root, "a.rs")
		b := mkfile(t, root, "nested", "deep", "b.toml")

		var got []string
		for path := range fs.NewWalker().WalkFiles(root) {
			got = append(got, path)
		}

		assert.ElementsMatch(t, []string{a, b}, got)
	})

	t.Run("skips vcs and artifact directories", func(t *testing.T) {
		root := t.TempDir()
		keep := mkfile(t, root, "src", "keep.rs")
		mkfile(t, root, ".git", "config")
		mkfile(t, root, "node_modules", "pkg", "index.js")
		mkfile(t, root, "target", "debug", "out")

		var got []string
		for path := range fs.NewWalker().WalkFiles(root) {
			got = append(got, path)
		}

		assert.Equal(t, []string{keep}, got)
	})

	t.Run("early break stops the walk", func(t *testing.T) {
		root := t.TempDir()
		mkfile(t, root, "a.rs")
		mkfile(t, root, "b.rs")

		count := 0
		for range fs.NewWalker().WalkFiles(root) {
			count++
			break
		}

		assert.Equal(t, 1, count)
	})

	t.Run("missing root yields nothing", func(t *testing.T) {
		count := 0
		for range fs.NewWalker().WalkFiles(filepath.Join(t.TempDir(), "gone")) {
			count++
		}
		assert.Zero(t, count)
	})
}
