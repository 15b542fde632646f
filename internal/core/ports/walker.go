package ports

import "iter"

// Walker enumerates files under a directory tree.
//
//go:generate mockgen -source=walker.go -destination=mocks/mock_walker.go -package=mocks
type Walker interface {
	// WalkFiles yields all regular files under root, skipping VCS and
	// dependency directories. Unreadable subtrees are skipped silently.
	WalkFiles(root string) iter.Seq[string]
}
