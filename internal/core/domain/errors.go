package domain

import "go.trai.ch/zerr"

var (
	// ErrRootNotFound is returned when a watch root does not exist or is not a directory.
	ErrRootNotFound = zerr.New("watch root not found")

	// ErrWatchRegistration is returned when the OS notification subsystem rejects a root.
	ErrWatchRegistration = zerr.New("failed to register root with file watcher")

	// ErrWatcherStopped is returned when an operation is attempted on a stopped watcher.
	ErrWatcherStopped = zerr.New("watcher already stopped")

	// ErrCacheDegraded indicates the cache directory is unusable and the store
	// has fallen back to compute-only mode. It is logged, never returned to callers.
	ErrCacheDegraded = zerr.New("cache store degraded to compute-only mode")

	// ErrComputeFailed is returned when a memoized compute closure fails.
	ErrComputeFailed = zerr.New("memoized computation failed")

	// ErrConfigNotFound is returned when no latt.yaml can be found.
	ErrConfigNotFound = zerr.New("could not find latt.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrNoRootsConfigured is returned when the pipeline is started without roots.
	ErrNoRootsConfigured = zerr.New("no watch roots configured")

	// ErrFileReadFailed is returned when a changed file cannot be read for indexing.
	ErrFileReadFailed = zerr.New("failed to read file for indexing")
)
