package application

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/foliokit/templint/internal/domain"
	"github.com/foliokit/templint/internal/domain/manifest"
	"github.com/foliokit/templint/internal/domain/scoring"
	"github.com/foliokit/templint/internal/domain/wildcard"
)

// ValidateService orchestrates the validation pipeline:
// structure → (halt if no manifest) → config → content → compatibility → aggregate.
//
// Every run builds its own state; the service itself is stateless and
// safe for concurrent use.
type ValidateService struct {
	repo domain.RepositoryAccessor
}

func NewValidateService(repo domain.RepositoryAccessor) *ValidateService {
	return &ValidateService{repo: repo}
}

// ValidateTemplate runs the full pipeline against one repository
// snapshot. Validation findings live inside the returned report; a
// non-nil error means the repository could not be checked at all
// (accessor failure), never that the template is invalid.
func (s *ValidateService) ValidateTemplate(ctx context.Context, revision string) (*domain.CompatibilityReport, error) {
	run := &validationRun{svc: s, revision: revision, files: make(map[string]domain.RepositoryEntry)}

	// 1. Structure: root listing plus the known content directories.
	root, err := run.list(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("listing repository root: %w", err)
	}
	structure := scoring.AnalyzeStructure(root)

	for _, dir := range scoring.ContentDirs {
		if _, err := run.list(ctx, dir); err != nil {
			return nil, fmt.Errorf("listing %s: %w", dir, err)
		}
	}

	// 2. Fail fast: without a manifest nothing else is checkable.
	if !structure.HasRequiredFiles {
		return scoring.Aggregate(
			[]domain.SectionResult{structure.Section},
			false,
			scoring.Complexity(0, run.fileCount(), 0),
		), nil
	}

	// 3. Config: read and parse the manifest, then validate it. A parse
	// failure is a validation error; a read failure is operational.
	data, err := s.repo.ReadFile(ctx, structure.ManifestEntry.Path, revision)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", structure.ManifestEntry.Path, err)
	}
	doc, parseErr := manifest.Parse(data, manifest.DetectFormat(structure.ManifestEntry.Name))
	cfg := scoring.ValidateConfig(doc, parseErr)

	// 4. Content: resolve and fetch every declared content file.
	checks, err := run.contentChecks(ctx, cfg.Manifest)
	if err != nil {
		return nil, err
	}
	content := scoring.ValidateContent(checks, run.filePaths())

	// 5. Compatibility: platform hooks against everything observed.
	if cfg.Manifest != nil && cfg.Manifest.PreviewComponent != "" {
		if _, err := run.list(ctx, path.Dir(cfg.Manifest.PreviewComponent)); err != nil {
			return nil, fmt.Errorf("listing preview component directory: %w", err)
		}
	}
	compat := scoring.AnalyzeCompatibility(cfg.Manifest, run.fileEntries(), cfg.SchemaPaths)

	// 6. Aggregate.
	contentFileCount := 0
	if cfg.Manifest != nil {
		contentFileCount = len(cfg.Manifest.ContentFiles)
	}
	return scoring.Aggregate(
		[]domain.SectionResult{structure.Section, cfg.Section, content, compat},
		true,
		scoring.Complexity(contentFileCount, run.fileCount(), cfg.SchemaNodes),
	), nil
}

// validationRun tracks every repository entry one run observed, so the
// complexity census and the fuzzy path suggestions are deterministic
// for a fixed snapshot.
type validationRun struct {
	svc      *ValidateService
	revision string
	files    map[string]domain.RepositoryEntry
}

// list fetches a directory listing and records the file entries seen.
// A missing directory is an empty listing, not a failure.
func (r *validationRun) list(ctx context.Context, dir string) ([]domain.RepositoryEntry, error) {
	if dir == "." {
		dir = ""
	}
	entries, err := r.svc.repo.ListEntries(ctx, dir, r.revision)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	for _, e := range entries {
		if e.IsFile() {
			r.files[e.Path] = e
		}
	}
	return entries, nil
}

func (r *validationRun) fileCount() int { return len(r.files) }

func (r *validationRun) filePaths() []string {
	paths := make([]string, 0, len(r.files))
	for p := range r.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (r *validationRun) fileEntries() []domain.RepositoryEntry {
	entries := make([]domain.RepositoryEntry, 0, len(r.files))
	for _, p := range r.filePaths() {
		entries = append(entries, r.files[p])
	}
	return entries
}

// contentChecks resolves and fetches every declared content file. The
// accessor calls fan out concurrently; results merge back in manifest
// order so reports stay deterministic regardless of completion order.
func (r *validationRun) contentChecks(ctx context.Context, m *manifest.Manifest) ([]scoring.ContentCheck, error) {
	if m == nil {
		return nil, nil
	}

	// Wildcard prefixes are listed up front (and recorded in the file
	// census) before the per-file fan-out.
	checks := make([]scoring.ContentCheck, len(m.ContentFiles))
	for i, cf := range m.ContentFiles {
		checks[i].Spec = cf
		if !cf.HasPath {
			continue
		}
		if wildcard.Has(cf.Path) {
			checks[i].Wildcard = true
			dir, _ := wildcard.Split(cf.Path)
			entries, err := r.list(ctx, dir)
			if err != nil {
				return nil, fmt.Errorf("listing %s: %w", dir, err)
			}
			checks[i].Matches = wildcard.Resolve(cf.Path, entries)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range checks {
		c := &checks[i]
		if !c.Spec.HasPath {
			continue
		}
		g.Go(func() error {
			return r.fetchCheck(gctx, c)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return checks, nil
}

// fetchCheck reads the documents behind one content check. A missing
// file becomes Exists=false; every other read failure is operational.
func (r *validationRun) fetchCheck(ctx context.Context, c *scoring.ContentCheck) error {
	if c.Wildcard {
		for _, m := range c.Matches {
			data, err := r.svc.repo.ReadFile(ctx, m.Path, r.revision)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					continue // listed but gone; the listing already counted it
				}
				return fmt.Errorf("reading %s: %w", m.Path, err)
			}
			c.Documents = append(c.Documents, scoring.ContentDocument{Path: m.Path, Data: data})
		}
		return nil
	}

	data, err := r.svc.repo.ReadFile(ctx, c.Spec.Path, r.revision)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Exists = false
			return nil
		}
		return fmt.Errorf("reading %s: %w", c.Spec.Path, err)
	}
	c.Exists = true
	c.Documents = []scoring.ContentDocument{{Path: c.Spec.Path, Data: data}}
	return nil
}
