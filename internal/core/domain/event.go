package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// ChangeKind represents the logical kind of a file change.
type ChangeKind uint8

const (
	// ChangeCreated indicates a file was created.
	ChangeCreated ChangeKind = iota
	// ChangeModified indicates a file's content was modified.
	ChangeModified
	// ChangeRemoved indicates a file was removed or renamed away.
	ChangeRemoved
)

// String returns the lowercase name of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeCreated:
		return "created"
	case ChangeModified:
		return "modified"
	case ChangeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// FileKind classifies a watched file by its extension. The classification is
// decided exactly once, at ingestion, so downstream code switches on a closed
// enum instead of re-inspecting path strings.
type FileKind uint8

const (
	// KindOther is any file outside the recognized source kinds.
	KindOther FileKind = iota
	// KindRust is a .rs source file.
	KindRust
	// KindTOML is a .toml manifest.
	KindTOML
	// KindJSON is a .json document.
	KindJSON
	// KindMarkdown is a .md document.
	KindMarkdown
)

// String returns the canonical extension (without dot) for the kind.
func (k FileKind) String() string {
	switch k {
	case KindRust:
		return "rs"
	case KindTOML:
		return "toml"
	case KindJSON:
		return "json"
	case KindMarkdown:
		return "md"
	default:
		return "other"
	}
}

// KindForPath returns the FileKind for a path based on its extension.
func KindForPath(path string) FileKind {
	switch strings.TrimPrefix(filepath.Ext(path), ".") {
	case "rs":
		return KindRust
	case "toml":
		return KindTOML
	case "json":
		return KindJSON
	case "md":
		return KindMarkdown
	default:
		return KindOther
	}
}

// FileChangeEvent is one debounced, filtered change to a watched file.
// It is immutable once created: produced by the watcher (or the initial
// scan), consumed exactly once by the indexer.
type FileChangeEvent struct {
	// Path is the absolute path of the changed file.
	Path string
	// Kind is the logical change kind, taken from the most recent raw
	// event observed inside the debounce window.
	Kind ChangeKind
	// FileKind is the closed-enum classification of the file.
	FileKind FileKind
	// ObservedAt is when the debounce window for this path settled.
	ObservedAt time.Time
	// ProjectRoot is the watched root the path belongs to.
	ProjectRoot string
}
