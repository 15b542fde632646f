package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/latt/internal/core/domain"
	"go.trai.ch/latt/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// shouldSkipDirectories are directories that should not be watched.
var shouldSkipDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
	"target":       true,
}

const eventChannelBuffer = 1024

// Watcher implements recursive file system watching using fsnotify.
// Raw OS notifications are filtered to recognized extensions, debounced per
// path, and emitted onto a single outbound channel.
type Watcher struct {
	cfg       domain.Config
	logger    ports.Logger
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	events    chan domain.FileChangeEvent
	roots     []string

	sendMu sync.Mutex
	closed bool
}

// NewWatcher creates a new file system watcher. It fails if the OS
// notification subsystem cannot be initialized.
func NewWatcher(cfg domain.Config, logger ports.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatchRegistration.Error())
	}

	w := &Watcher{
		cfg:       cfg,
		logger:    logger,
		fsWatcher: fsWatcher,
		events:    make(chan domain.FileChangeEvent, eventChannelBuffer),
	}
	w.debouncer = NewDebouncer(cfg.DebounceWindow, w.emit)
	return w, nil
}

// AddRoot registers a directory for recursive monitoring. A failing root
// leaves previously registered roots watched.
func (w *Watcher) AddRoot(path string) error {
	if w.isStopped() {
		return domain.ErrWatcherStopped
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrRootNotFound, err.Error()), "root", path)
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return zerr.With(zerr.Wrap(domain.ErrRootNotFound, "not a watchable directory"), "root", abs)
	}

	for dir := range w.watchRecursively(abs) {
		if err := w.fsWatcher.Add(dir); err != nil {
			wrapped := zerr.With(zerr.Wrap(err, domain.ErrWatchRegistration.Error()), "root", abs)
			return zerr.With(wrapped, "dir", dir)
		}
	}

	w.roots = append(w.roots, abs)
	return nil
}

// Start begins processing raw notifications for all registered roots.
func (w *Watcher) Start(ctx context.Context) error {
	if w.isStopped() {
		return domain.ErrWatcherStopped
	}
	if len(w.roots) == 0 {
		return domain.ErrNoRootsConfigured
	}
	go w.processEvents(ctx)
	return nil
}

// Stop deregisters all roots, drops pending debounce timers and closes the
// outbound channel.
func (w *Watcher) Stop() error {
	err := w.fsWatcher.Close()
	w.debouncer.Stop()

	w.sendMu.Lock()
	if !w.closed {
		w.closed = true
		close(w.events)
	}
	w.sendMu.Unlock()

	return err
}

// Events returns the outbound event channel. It is closed by Stop.
func (w *Watcher) Events() <-chan domain.FileChangeEvent {
	return w.events
}

func (w *Watcher) isStopped() bool {
	w.sendMu.Lock()
	defer w.sendMu.Unlock()
	return w.closed
}

// watchRecursively walks the directory tree and yields all directories.
func (w *Watcher) watchRecursively(root string) func(yield func(string) bool) {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Continue walking even if a directory is unreadable.
				return nil //nolint:nilerr // Skip problematic directories
			}
			if d.IsDir() {
				if shouldSkipDirectories[d.Name()] {
					return fs.SkipDir
				}
				if !yield(path) {
					return filepath.SkipAll
				}
			}
			return nil
		})
	}
}

// processEvents filters raw fsnotify events and feeds the debouncer.
func (w *Watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleRawEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			// A watch error is fatal to nothing but the event it
			// dropped; log and keep processing.
			w.logger.Error(zerr.Wrap(err, "file system watch error"))
		}
	}
}

func (w *Watcher) handleRawEvent(event fsnotify.Event) {
	path := event.Name

	// A newly created directory must be watched before its extension is
	// considered.
	if event.Op&fsnotify.Create == fsnotify.Create {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if !shouldSkipDirectories[info.Name()] {
				for dir := range w.watchRecursively(path) {
					_ = w.fsWatcher.Add(dir)
				}
			}
			return
		}
	}

	kind, ok := convertOp(event.Op)
	if !ok {
		return
	}

	if !w.cfg.Recognized(path) {
		return
	}

	root, ok := w.rootFor(path)
	if !ok {
		return
	}

	w.debouncer.Observe(path, root, kind)
}

// emit places one debounced event on the outbound channel. Debounce timers
// fire on their own goroutines, so emission is serialized against Stop.
func (w *Watcher) emit(path, root string, kind domain.ChangeKind) {
	w.sendMu.Lock()
	defer w.sendMu.Unlock()

	if w.closed {
		return
	}

	w.events <- domain.FileChangeEvent{
		Path:        path,
		Kind:        kind,
		FileKind:    domain.KindForPath(path),
		ObservedAt:  time.Now(),
		ProjectRoot: root,
	}
}

// rootFor returns the registered root containing path, preferring the
// longest match when roots nest.
func (w *Watcher) rootFor(path string) (string, bool) {
	var best string
	for _, root := range w.roots {
		if path == root || strings.HasPrefix(path, root+string(filepath.Separator)) {
			if len(root) > len(best) {
				best = root
			}
		}
	}
	return best, best != ""
}

// convertOp maps an fsnotify operation to a logical change kind.
// Chmod-only events carry no content change and are dropped.
func convertOp(op fsnotify.Op) (domain.ChangeKind, bool) {
	switch {
	case op&fsnotify.Create == fsnotify.Create:
		return domain.ChangeCreated, true
	case op&fsnotify.Write == fsnotify.Write:
		return domain.ChangeModified, true
	case op&fsnotify.Remove == fsnotify.Remove:
		return domain.ChangeRemoved, true
	case op&fsnotify.Rename == fsnotify.Rename:
		return domain.ChangeRemoved, true
	default:
		return 0, false
	}
}
