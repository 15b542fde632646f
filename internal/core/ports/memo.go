package ports

import "context"

// ComputeFunc produces the payload for a memoized computation. It is assumed
// pure with respect to the declared dependencies.
type ComputeFunc func() ([]byte, error)

// MemoStore is a disk-backed, dependency-fingerprint-gated memoization store.
//
//go:generate mockgen -source=memo.go -destination=mocks/mock_memo.go -package=mocks
type MemoStore interface {
	// GetOrCompute returns the cached payload for key if the stored
	// dependency hash still matches the current state of deps, and
	// otherwise invokes compute and replaces the entry. An empty deps
	// slice means the entry is never invalidated by file changes.
	// Storage failures degrade to always computing; only compute errors
	// are returned.
	GetOrCompute(ctx context.Context, key string, deps []string, compute ComputeFunc) ([]byte, error)
}
