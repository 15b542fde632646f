// Package watcher implements file system watching for the indexing pipeline.
package watcher

import (
	"sync"
	"time"

	"go.trai.ch/latt/internal/core/domain"
)

// Debouncer coalesces rapid raw events for one path into a single logical
// emission. Each path gets its own timer: a new raw event for a pending path
// updates the recorded kind and restarts that path's timer, and when the
// timer fires exactly one emission happens with the most recent kind.
// Emissions for different paths occur in the order their windows settle,
// which is deliberately not the raw arrival order.
type Debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	pending map[string]*pendingChange
	emit    func(path, root string, kind domain.ChangeKind)
	stopped bool
}

// pendingChange tracks the latest raw event for a path inside its window.
type pendingChange struct {
	kind  domain.ChangeKind
	root  string
	timer *time.Timer
}

// NewDebouncer creates a new debouncer with the given window and emit callback.
func NewDebouncer(window time.Duration, emit func(path, root string, kind domain.ChangeKind)) *Debouncer {
	return &Debouncer{
		window:  window,
		pending: make(map[string]*pendingChange),
		emit:    emit,
	}
}

// Observe records a raw event for path. The first observation of a path arms
// its timer; subsequent ones within the window only update the kind and
// restart the timer.
func (d *Debouncer) Observe(path, root string, kind domain.ChangeKind) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if p, ok := d.pending[path]; ok {
		p.kind = kind
		p.timer.Reset(d.window)
		return
	}

	p := &pendingChange{kind: kind, root: root}
	p.timer = time.AfterFunc(d.window, func() { d.fire(path) })
	d.pending[path] = p
}

// fire is called on a timer goroutine when a path's window settles.
func (d *Debouncer) fire(path string) {
	d.mu.Lock()
	p, ok := d.pending[path]
	if d.stopped || !ok {
		d.mu.Unlock()
		return
	}
	delete(d.pending, path)
	kind, root := p.kind, p.root
	d.mu.Unlock()

	d.emit(path, root, kind)
}

// Stop cancels all pending timers. Events whose window had not yet settled
// are dropped; there is no flush-on-shutdown guarantee.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.stopped = true

	for _, p := range d.pending {
		p.timer.Stop()
	}
	d.pending = make(map[string]*pendingChange)
}

// PendingCount reports the number of paths currently inside a window.
func (d *Debouncer) PendingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}
