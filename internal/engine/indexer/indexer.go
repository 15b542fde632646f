// Package indexer implements the single-consumer value lattice indexer.
package indexer

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/latt/internal/core/domain"
	"go.trai.ch/latt/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LatticeReader = (*Indexer)(nil)

// Indexer owns the value lattice. It is the sole mutator: all writes happen
// either in the Run consumer loop or in synchronous Process calls made
// before that loop starts, so mutation is sequential by construction. The
// lattice is append-only and lives for the process lifetime.
type Indexer struct {
	logger ports.Logger
	tracer trace.Tracer
	now    func() time.Time

	mu      sync.RWMutex
	lattice map[string]*domain.LatticeEntry
	nextID  uint64
}

// New creates an empty Indexer.
func New(logger ports.Logger) *Indexer {
	return &Indexer{
		logger:  logger,
		tracer:  otel.Tracer("latt/indexer"),
		now:     time.Now,
		lattice: make(map[string]*domain.LatticeEntry),
		nextID:  1,
	}
}

// WithClock overrides the indexer's clock. Used by tests for deterministic
// timestamps.
func (ix *Indexer) WithClock(now func() time.Time) *Indexer {
	ix.now = now
	return ix
}

// Run consumes events until the channel is closed, processing each to
// completion before receiving the next. Whatever is queued when the channel
// closes is drained; a file mid-scan always finishes.
func (ix *Indexer) Run(ctx context.Context, events <-chan domain.FileChangeEvent) {
	for event := range events {
		ix.Process(ctx, event)
	}
}

// Process indexes one file change. Removed events touch nothing: entries are
// never deleted and location sets may go stale, which is an accepted
// limitation. Read failures skip the event without retry.
func (ix *Indexer) Process(ctx context.Context, event domain.FileChangeEvent) {
	if event.Kind == domain.ChangeRemoved {
		return
	}

	_, span := ix.tracer.Start(ctx, "index.file", trace.WithAttributes(
		attribute.String("path", event.Path),
		attribute.String("kind", event.Kind.String()),
		attribute.String("file_kind", event.FileKind.String()),
	))
	defer span.End()

	content, err := os.ReadFile(event.Path) //nolint:gosec // Path comes from the watched tree
	if err != nil {
		ix.logger.Warn(zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", event.Path).Error())
		span.RecordError(err)
		return
	}

	tokens := extractTokens(content)
	ix.index(tokens, event.Path)

	span.SetAttributes(attribute.Int("tokens", len(tokens)))
	ix.logger.Debug(fmt.Sprintf("indexed %s: %d tokens, %d unique values", event.Path, len(tokens), ix.Stats().TotalValues))
}

// index merges the extracted tokens into the lattice.
func (ix *Indexer) index(tokens []string, path string) {
	now := ix.now()

	ix.mu.Lock()
	defer ix.mu.Unlock()

	for _, text := range tokens {
		if entry, ok := ix.lattice[text]; ok {
			entry.UsageCount++
			entry.LastUpdated = now
			entry.Locations[path] = struct{}{}
			continue
		}

		ix.lattice[text] = &domain.LatticeEntry{
			Text:        text,
			ID:          ix.nextID,
			UsageCount:  1,
			FirstSeen:   now,
			LastUpdated: now,
			Locations:   map[string]struct{}{path: {}},
		}
		ix.nextID++
	}
}

// Stats returns a point-in-time summary of the lattice.
func (ix *Indexer) Stats() domain.LatticeStats {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	highUsage := 0
	for _, entry := range ix.lattice {
		if entry.UsageCount > domain.HighUsageThreshold {
			highUsage++
		}
	}

	return domain.LatticeStats{
		TotalValues:     len(ix.lattice),
		NextID:          ix.nextID,
		HighUsageValues: highUsage,
	}
}

// TopValues returns up to limit entries ordered by descending usage count,
// ties broken by ascending ID. Entries are deep copies, never live
// references into the lattice.
func (ix *Indexer) TopValues(limit int) []domain.LatticeEntry {
	ix.mu.RLock()
	entries := make([]domain.LatticeEntry, 0, len(ix.lattice))
	for _, entry := range ix.lattice {
		entries = append(entries, entry.Clone())
	}
	ix.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].UsageCount != entries[j].UsageCount {
			return entries[i].UsageCount > entries[j].UsageCount
		}
		return entries[i].ID < entries[j].ID
	})

	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries
}
