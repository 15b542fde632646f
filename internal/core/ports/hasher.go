package ports

// Hasher computes the fingerprints used by the memoization store.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashBytes returns a deterministic, filename-safe digest of data,
	// truncated to a fixed display width.
	HashBytes(data []byte) string
	// HashDependencies fingerprints the (path, mtime) pairs of paths in
	// the given order. A missing path contributes a deletion marker so
	// that removing a dependency changes the aggregate hash. The result
	// is stable across calls with an identical dependency list.
	HashDependencies(paths []string) string
}
