package scoring

import (
	"strings"

	"github.com/foliokit/templint/internal/domain"
	"github.com/foliokit/templint/internal/domain/manifest"
)

// ContentDirs are the directory names the platform treats as
// content-holding; the pipeline lists them in addition to the root.
var ContentDirs = []string{"content", "data", "pages"}

// conventionalDirs are directories well-organized templates usually
// carry. Their absence is a hint, never a deduction.
var conventionalDirs = []string{"components", "public", "assets", "styles", "src"}

var previewExts = []string{".png", ".jpg", ".jpeg", ".webp", ".gif", ".svg"}

// StructureResult pairs the structure section with the fail-fast flag
// and the manifest entry the later stages should read.
type StructureResult struct {
	Section          domain.SectionResult
	HasRequiredFiles bool
	ManifestEntry    *domain.RepositoryEntry
}

// AnalyzeStructure inspects the repository's root listing for required
// and recommended artifacts. A missing manifest file makes
// HasRequiredFiles false; the scorer halts the pipeline on that.
func AnalyzeStructure(root []domain.RepositoryEntry) StructureResult {
	sec := newSection(domain.SectionStructure, MaxStructure)
	res := StructureResult{HasRequiredFiles: true}

	if e := findManifest(root); e != nil {
		res.ManifestEntry = e
	} else {
		res.HasRequiredFiles = false
		sec.add(CatManifestMissing, domain.ValidationIssue{
			Severity:   domain.SeverityError,
			Message:    "no template manifest found (template.json, template.yaml or template.yml)",
			Suggestion: "Add a template.json at the repository root describing the template",
		})
	}

	if !hasPreviewImage(root) {
		sec.add(CatPreviewMissing, domain.ValidationIssue{
			Severity:   domain.SeverityWarning,
			Message:    "no preview image found",
			Suggestion: "Add a preview.png (or thumbnail.*) so users can see the template before adopting it",
		})
	}

	if !hasReadme(root) {
		sec.add(CatReadmeMissing, domain.ValidationIssue{
			Severity:   domain.SeverityWarning,
			Message:    "no README found",
			Suggestion: "Add a README.md describing the template and how to customize it",
		})
	}

	if !hasConventionalDir(root) {
		sec.add(CatNoStandardDirs, domain.ValidationIssue{
			Severity:   domain.SeveritySuggestion,
			Message:    "no conventional directories found (components/, public/, assets/, styles/, src/)",
			Suggestion: "Group template sources into conventional directories to ease review",
		})
	}

	res.Section = sec.result()
	return res
}

func findManifest(root []domain.RepositoryEntry) *domain.RepositoryEntry {
	for _, name := range manifest.FileNames {
		for i, e := range root {
			if e.IsFile() && e.Name == name {
				return &root[i]
			}
		}
	}
	return nil
}

func hasPreviewImage(root []domain.RepositoryEntry) bool {
	for _, e := range root {
		if !e.IsFile() {
			continue
		}
		lower := strings.ToLower(e.Name)
		for _, ext := range previewExts {
			if lower == "preview"+ext || lower == "thumbnail"+ext {
				return true
			}
		}
	}
	return false
}

func hasReadme(root []domain.RepositoryEntry) bool {
	for _, e := range root {
		if !e.IsFile() {
			continue
		}
		lower := strings.ToLower(e.Name)
		if lower == "readme.md" || lower == "readme" {
			return true
		}
	}
	return false
}

func hasConventionalDir(root []domain.RepositoryEntry) bool {
	for _, e := range root {
		if !e.IsDir() {
			continue
		}
		for _, d := range conventionalDirs {
			if e.Name == d {
				return true
			}
		}
	}
	return false
}
