// Package repogit accesses a template repository through git history,
// so a tagged or committed revision validates regardless of the state
// of the working tree.
package repogit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/foliokit/templint/internal/domain"
)

// Accessor implements domain.RepositoryAccessor over a local git
// repository's object store. The empty revision means HEAD.
type Accessor struct {
	repo *git.Repository
}

func Open(dir string) (*Accessor, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%s is not a git repository: %w", dir, err)
		}
		return nil, fmt.Errorf("opening git repository %s: %w", dir, err)
	}
	return &Accessor{repo: repo}, nil
}

// IsRepository reports whether dir is inside a git repository.
func IsRepository(dir string) bool {
	_, err := git.PlainOpen(dir)
	return err == nil
}

func (a *Accessor) ListEntries(_ context.Context, dir, revision string) ([]domain.RepositoryEntry, error) {
	tree, hash, err := a.treeAt(revision)
	if err != nil {
		return nil, err
	}

	if dir != "" && dir != "." {
		tree, err = tree.Tree(dir)
		if err != nil {
			if errors.Is(err, object.ErrDirectoryNotFound) || errors.Is(err, object.ErrEntryNotFound) {
				return nil, domain.ErrNotFound
			}
			return nil, fmt.Errorf("resolving tree %s: %w", dir, err)
		}
	}

	var out []domain.RepositoryEntry
	for _, e := range tree.Entries {
		entry := domain.RepositoryEntry{
			Name:       e.Name,
			Path:       path.Join(dir, e.Name),
			Kind:       domain.EntryFile,
			RevisionID: hash.String(),
		}
		if e.Mode == filemode.Dir {
			entry.Kind = domain.EntryDirectory
		} else if size, err := a.repo.Storer.EncodedObjectSize(e.Hash); err == nil {
			entry.Size = size
		}
		out = append(out, entry)
	}
	return out, nil
}

func (a *Accessor) ReadFile(_ context.Context, p, revision string) ([]byte, error) {
	tree, _, err := a.treeAt(revision)
	if err != nil {
		return nil, err
	}

	f, err := tree.File(p)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) || errors.Is(err, object.ErrEntryNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("resolving blob %s: %w", p, err)
	}

	r, err := f.Reader()
	if err != nil {
		return nil, fmt.Errorf("opening blob %s: %w", p, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading blob %s: %w", p, err)
	}
	return data, nil
}

// CommitHash resolves the revision to its full commit hash, for
// stamping reports and history entries.
func (a *Accessor) CommitHash(revision string) (string, error) {
	hash, err := a.resolve(revision)
	if err != nil {
		return "", err
	}
	return hash.String(), nil
}

func (a *Accessor) resolve(revision string) (plumbing.Hash, error) {
	if revision == "" {
		head, err := a.repo.Head()
		if err != nil {
			return plumbing.ZeroHash, fmt.Errorf("resolving HEAD: %w", err)
		}
		return head.Hash(), nil
	}

	hash, err := a.repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("resolving revision %q: %w", revision, err)
	}
	return *hash, nil
}

func (a *Accessor) treeAt(revision string) (*object.Tree, plumbing.Hash, error) {
	hash, err := a.resolve(revision)
	if err != nil {
		return nil, plumbing.ZeroHash, err
	}

	commit, err := a.repo.CommitObject(hash)
	if err != nil {
		return nil, plumbing.ZeroHash, fmt.Errorf("loading commit %s: %w", hash, err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, plumbing.ZeroHash, fmt.Errorf("loading tree of %s: %w", hash, err)
	}
	return tree, hash, nil
}
