// Package repofs accesses a template repository through a local
// checkout on the filesystem. It is the default accessor for the CLI.
package repofs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/foliokit/templint/internal/domain"
)

// skipDirs are directories that never hold template content.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	".templint":    true,
}

// Accessor implements domain.RepositoryAccessor over a directory on
// disk. Paths are repository-relative with forward slashes.
type Accessor struct {
	root string
}

func New(root string) (*Accessor, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", root, domain.ErrNotFound)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}
	return &Accessor{root: abs}, nil
}

func (a *Accessor) ListEntries(_ context.Context, dir, revision string) ([]domain.RepositoryEntry, error) {
	if revision != "" {
		return nil, fmt.Errorf("filesystem accessor cannot resolve revision %q; point --rev at a git repository", revision)
	}

	entries, err := os.ReadDir(a.abs(dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var out []domain.RepositoryEntry
	for _, e := range entries {
		if e.IsDir() && skipDirs[e.Name()] {
			continue
		}
		entry := domain.RepositoryEntry{
			Name: e.Name(),
			Path: path.Join(dir, e.Name()),
			Kind: domain.EntryFile,
		}
		if e.IsDir() {
			entry.Kind = domain.EntryDirectory
		} else if info, err := e.Info(); err == nil {
			entry.Size = info.Size()
		}
		out = append(out, entry)
	}
	return out, nil
}

func (a *Accessor) ReadFile(_ context.Context, p, revision string) ([]byte, error) {
	if revision != "" {
		return nil, fmt.Errorf("filesystem accessor cannot resolve revision %q; point --rev at a git repository", revision)
	}

	data, err := os.ReadFile(a.abs(p))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reading %s: %w", p, err)
	}
	return data, nil
}

// abs maps a repository-relative path onto the checkout.
func (a *Accessor) abs(p string) string {
	return filepath.Join(a.root, filepath.FromSlash(p))
}
