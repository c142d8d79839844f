// Package repocache wraps a RepositoryAccessor with per-run
// memoization, so the pipeline's repeated listings and reads hit the
// underlying source once. Caching lives behind the accessor interface;
// the validation core stays cache-free.
package repocache

import (
	"context"
	"errors"
	"sync"

	"github.com/foliokit/templint/internal/domain"
)

type listResult struct {
	entries  []domain.RepositoryEntry
	notFound bool
}

type readResult struct {
	data     []byte
	notFound bool
}

// Accessor memoizes ListEntries and ReadFile results, including
// ErrNotFound outcomes. Operational failures are never cached, so a
// transient error does not poison the run. Safe for concurrent use.
type Accessor struct {
	next domain.RepositoryAccessor

	mu    sync.Mutex
	lists map[string]listResult
	reads map[string]readResult
}

func Wrap(next domain.RepositoryAccessor) *Accessor {
	return &Accessor{
		next:  next,
		lists: make(map[string]listResult),
		reads: make(map[string]readResult),
	}
}

func (a *Accessor) ListEntries(ctx context.Context, path, revision string) ([]domain.RepositoryEntry, error) {
	k := key(path, revision)

	a.mu.Lock()
	if r, ok := a.lists[k]; ok {
		a.mu.Unlock()
		return cached(r.entries, r.notFound)
	}
	a.mu.Unlock()

	entries, err := a.next.ListEntries(ctx, path, revision)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	a.mu.Lock()
	a.lists[k] = listResult{entries: entries, notFound: err != nil}
	a.mu.Unlock()
	return cached(entries, err != nil)
}

func (a *Accessor) ReadFile(ctx context.Context, path, revision string) ([]byte, error) {
	k := key(path, revision)

	a.mu.Lock()
	if r, ok := a.reads[k]; ok {
		a.mu.Unlock()
		return cached(r.data, r.notFound)
	}
	a.mu.Unlock()

	data, err := a.next.ReadFile(ctx, path, revision)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	a.mu.Lock()
	a.reads[k] = readResult{data: data, notFound: err != nil}
	a.mu.Unlock()
	return cached(data, err != nil)
}

func key(path, revision string) string { return path + "@" + revision }

func cached[T any](v T, notFound bool) (T, error) {
	if notFound {
		var zero T
		return zero, domain.ErrNotFound
	}
	return v, nil
}
