// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/latt/internal/adapters/cache"
	_ "go.trai.ch/latt/internal/adapters/config"
	_ "go.trai.ch/latt/internal/adapters/fs"
	_ "go.trai.ch/latt/internal/adapters/logger"
	_ "go.trai.ch/latt/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/latt/internal/app"
	_ "go.trai.ch/latt/internal/engine/indexer"
	_ "go.trai.ch/latt/internal/engine/stats"
)
