package ports

import (
	"context"

	"go.trai.ch/latt/internal/core/domain"
)

// Watcher defines the interface for watching file system changes under one
// or more project roots.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// AddRoot registers a directory for recursive monitoring. It returns
	// an error if the path does not exist or the OS notification
	// subsystem rejects the registration; other roots are unaffected.
	AddRoot(path string) error
	// Start begins delivering debounced events for all registered roots.
	Start(ctx context.Context) error
	// Stop deregisters all roots, drops any pending debounce timers and
	// closes the event channel.
	Stop() error
	// Events returns the outbound event channel. It is closed by Stop.
	// Events for one path are never reordered; events for different
	// paths arrive in the order their debounce windows settled.
	Events() <-chan domain.FileChangeEvent
}
