package domain

import (
	"context"
	"errors"
)

// ErrNotFound is returned by accessors when a path does not exist in the
// repository. It is the only accessor error the validation pipeline
// absorbs into issues; every other accessor failure is operational and
// propagates to the caller unchanged.
var ErrNotFound = errors.New("path not found in repository")

// Entry kinds produced by repository accessors.
const (
	EntryFile      = "file"
	EntryDirectory = "directory"
)

// RepositoryEntry describes one file or directory in a template
// repository. Read-only input to the validation pipeline.
type RepositoryEntry struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	Kind       string `json:"kind"`
	Size       int64  `json:"size,omitempty"`
	RevisionID string `json:"revision_id,omitempty"`
}

func (e RepositoryEntry) IsFile() bool { return e.Kind == EntryFile }
func (e RepositoryEntry) IsDir() bool  { return e.Kind == EntryDirectory }

// RepositoryAccessor is the black-box content source for a template
// repository. Implementations may hit the network and may fail
// transiently; callers must treat each call as independently blocking.
// Caching and retry live behind this interface, never in front of it.
//
// revision selects a snapshot (branch, tag, or commit hash); the empty
// string means the accessor's default. Listing or reading a path that
// does not exist returns ErrNotFound.
type RepositoryAccessor interface {
	ListEntries(ctx context.Context, path, revision string) ([]RepositoryEntry, error)
	ReadFile(ctx context.Context, path, revision string) ([]byte, error)
}

// HistoryStore persists validation outcomes per template.
type HistoryStore interface {
	Save(templatePath string, entry HistoryEntry) error
	Load(templatePath string) ([]HistoryEntry, error)
}
