// Package cache implements the disk-backed memoization store.
package cache

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/latt/internal/core/domain"
	"go.trai.ch/latt/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.MemoStore = (*Store)(nil)

// Store memoizes computations under cache_dir using one payload file per key
// and a sidecar recording the dependency hash the payload was computed
// against. Entries are never mutated in place: a stale entry is fully
// replaced by a fresh payload-then-sidecar write, so a crash between the two
// writes is only ever observed as a miss.
//
// The directory may be shared by independent processes. There is no
// cross-process locking; two processes racing on the same key each compute
// and the later writer wins, which is safe because computations are pure
// with respect to their declared dependencies.
type Store struct {
	dir    string
	hasher ports.Hasher
	logger ports.Logger
	tracer trace.Tracer

	mu       sync.Mutex
	degraded bool
}

// NewStore creates a store backed by dir. If dir cannot be created the store
// starts degraded: every lookup computes and nothing is persisted.
func NewStore(dir string, hasher ports.Hasher, logger ports.Logger) *Store {
	s := &Store{
		dir:    dir,
		hasher: hasher,
		logger: logger,
		tracer: otel.Tracer("latt/cache"),
	}
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		s.degrade(err)
	}
	return s
}

// GetOrCompute returns the cached payload for key when the stored dependency
// hash matches the freshly recomputed one, and otherwise invokes compute and
// replaces the entry. Only compute errors propagate; storage errors degrade
// the store to a no-op.
func (s *Store) GetOrCompute(ctx context.Context, key string, deps []string, compute ports.ComputeFunc) ([]byte, error) {
	keyHash := s.hasher.HashBytes([]byte(key))
	depHash := s.hasher.HashDependencies(deps)

	payloadPath := filepath.Join(s.dir, keyHash)
	sidecarPath := payloadPath + domain.SidecarSuffix

	if !s.isDegraded() {
		if payload, ok := s.read(payloadPath, sidecarPath, depHash); ok {
			return payload, nil
		}
	}

	_, span := s.tracer.Start(ctx, "cache.compute", trace.WithAttributes(
		attribute.String("key", key),
		attribute.Int("deps", len(deps)),
	))
	defer span.End()

	payload, err := compute()
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, domain.ErrComputeFailed.Error())
	}

	if !s.isDegraded() {
		s.write(payloadPath, sidecarPath, payload, depHash)
	}

	return payload, nil
}

// read returns the stored payload if both files are readable and the sidecar
// matches depHash. Any failure is a miss.
func (s *Store) read(payloadPath, sidecarPath, depHash string) ([]byte, bool) {
	recorded, err := os.ReadFile(sidecarPath) //nolint:gosec // Path is derived from a hashed key
	if err != nil || strings.TrimSpace(string(recorded)) != depHash {
		return nil, false
	}

	payload, err := os.ReadFile(payloadPath) //nolint:gosec // Path is derived from a hashed key
	if err != nil {
		return nil, false
	}
	return payload, true
}

// write persists payload then sidecar, each via temp-file-and-rename. The
// payload is durable before the sidecar is updated.
func (s *Store) write(payloadPath, sidecarPath string, payload []byte, depHash string) {
	if err := s.writeAtomic(payloadPath, payload); err != nil {
		s.degrade(err)
		return
	}
	if err := s.writeAtomic(sidecarPath, []byte(depHash)); err != nil {
		s.degrade(err)
	}
}

func (s *Store) writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}

	_, werr := tmp.Write(data)
	serr := tmp.Sync()
	cerr := tmp.Close()
	if err := errors.Join(werr, serr, cerr); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Chmod(path, fs.FileMode(domain.FilePerm))
}

func (s *Store) isDegraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// degrade switches the store to compute-only mode. Logged once; caching is a
// performance optimization, not a correctness dependency.
func (s *Store) degrade(cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.degraded {
		return
	}
	s.degraded = true
	if s.logger != nil {
		s.logger.Error(zerr.With(zerr.Wrap(cause, domain.ErrCacheDegraded.Error()), "dir", s.dir))
	}
}
