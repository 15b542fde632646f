package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/latt/internal/core/ports"
)

var _ ports.Walker = (*Walker)(nil)

// skipDirectories are directories never descended into.
var skipDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
	"target":       true,
}

// Walker provides recursive file enumeration.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all regular files under root. Unreadable subtrees are
// skipped rather than aborting the walk.
func (w *Walker) WalkFiles(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // Skip unreadable entries, keep walking
			}
			if d.IsDir() {
				if skipDirectories[d.Name()] {
					return fs.SkipDir
				}
				return nil
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}
