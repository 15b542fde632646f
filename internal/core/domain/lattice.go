package domain

import "time"

// LatticeEntry holds the identity and usage metadata for one literal value.
// ID is assigned exactly once when the text is first observed, is strictly
// increasing in assignment order, and is never reused or mutated. Text is
// immutable after creation; UsageCount and Locations only ever grow.
type LatticeEntry struct {
	// Text is the literal token exactly as it appeared in source.
	Text string
	// ID is the monotonically assigned identity of the text.
	ID uint64
	// UsageCount is the number of occurrences indexed so far.
	UsageCount uint32
	// FirstSeen is when the text was first indexed.
	FirstSeen time.Time
	// LastUpdated is when the text was most recently indexed.
	LastUpdated time.Time
	// Locations is the set of file paths the text has been seen in.
	// Entries for removed files are never evicted, so the set may
	// contain stale paths.
	Locations map[string]struct{}
}

// Clone returns a deep copy of the entry. Snapshot queries hand out clones
// so callers never hold a reference into the live lattice.
func (e *LatticeEntry) Clone() LatticeEntry {
	locations := make(map[string]struct{}, len(e.Locations))
	for path := range e.Locations {
		locations[path] = struct{}{}
	}
	return LatticeEntry{
		Text:        e.Text,
		ID:          e.ID,
		UsageCount:  e.UsageCount,
		FirstSeen:   e.FirstSeen,
		LastUpdated: e.LastUpdated,
		Locations:   locations,
	}
}

// HighUsageThreshold is the usage count above which an entry counts as
// high-usage in LatticeStats.
const HighUsageThreshold = 10

// LatticeStats is a point-in-time summary of the lattice.
type LatticeStats struct {
	// TotalValues is the number of unique texts in the lattice.
	TotalValues int
	// NextID is the identity the next new text will receive.
	NextID uint64
	// HighUsageValues is the number of entries with UsageCount above
	// HighUsageThreshold.
	HighUsageValues int
}
