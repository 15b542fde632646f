package domain

import (
	"os"
	"path/filepath"
	"time"
)

// DefaultDebounceWindow is the default time window for coalescing raw file
// events into one logical event per path.
const DefaultDebounceWindow = 500 * time.Millisecond

// DefaultExtensions is the default set of recognized file extensions,
// without the leading dot.
func DefaultExtensions() map[string]struct{} {
	return map[string]struct{}{
		"rs":   {},
		"toml": {},
		"json": {},
		"md":   {},
	}
}

// Config holds the pipeline configuration consumed at construction.
type Config struct {
	// Roots are the project directories to watch recursively.
	Roots []string
	// Extensions is the set of recognized extensions (no leading dot).
	Extensions map[string]struct{}
	// DebounceWindow is the per-path coalescing window.
	DebounceWindow time.Duration
	// CacheDir is the directory backing the memoization store.
	CacheDir string
}

// DefaultConfig returns a Config with all defaults applied and no roots.
func DefaultConfig() Config {
	return Config{
		Extensions:     DefaultExtensions(),
		DebounceWindow: DefaultDebounceWindow,
		CacheDir:       DefaultCachePath(),
	}
}

// Recognized reports whether the path's extension is in the configured set.
func (c Config) Recognized(path string) bool {
	ext := filepath.Ext(path)
	if ext == "" {
		return false
	}
	_, ok := c.Extensions[ext[1:]]
	return ok
}

// DefaultCachePath returns the default cache directory under the process
// temp directory.
func DefaultCachePath() string {
	return filepath.Join(os.TempDir(), CacheDirName)
}
