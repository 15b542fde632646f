// Package fs provides file system adapters for walking and fingerprinting files.
package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/latt/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// keyHashWidth is the display width of HashBytes digests. 16 hex characters
// keep cache filenames short while leaving collisions negligible for the
// key population this store sees.
const keyHashWidth = 16

// missingMarker prefixes the contribution of a dependency path that does not
// exist, so that deleting a dependency changes the aggregate hash.
const missingMarker = "<missing>:"

// Hasher computes the fingerprints backing the memoization store.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashBytes returns the SHA-256 digest of data truncated to a fixed,
// filename-safe width.
func (h *Hasher) HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:keyHashWidth]
}

// HashDependencies fingerprints the (path, mtime) pairs of paths in the
// caller-supplied order. Order is significant: the same list always produces
// the same hash, a permuted list generally does not.
func (h *Hasher) HashDependencies(paths []string) string {
	digest := xxhash.New()

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			_, _ = digest.WriteString(missingMarker + path)
		} else {
			_, _ = digest.WriteString(fmt.Sprintf("%s:%d", path, info.ModTime().UnixNano()))
		}
		_, _ = digest.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", digest.Sum64())
}
