package ports

import "go.trai.ch/latt/internal/core/domain"

// LatticeReader is the query surface of the value lattice. Implementations
// return snapshots; callers never observe live lattice state.
//
//go:generate mockgen -source=lattice.go -destination=mocks/mock_lattice.go -package=mocks
type LatticeReader interface {
	// Stats returns a point-in-time summary of the lattice.
	Stats() domain.LatticeStats
	// TopValues returns up to limit entries ordered by descending usage
	// count, ties broken by ascending ID.
	TopValues(limit int) []domain.LatticeEntry
}
