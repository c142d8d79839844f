package scoring

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"

	"github.com/foliokit/templint/internal/domain"
	"github.com/foliokit/templint/internal/domain/manifest"
)

// ContentDocument is one fetched content file snapshot.
type ContentDocument struct {
	Path string
	Data []byte
}

// ContentCheck carries everything the content validator needs for one
// declared content file: wildcard resolution results and the fetched
// documents. The accessor calls happen upstream so this stage stays
// pure and deterministic.
type ContentCheck struct {
	Spec     manifest.ContentFile
	Wildcard bool
	// Matches holds the wildcard resolution in original listing order.
	Matches []domain.RepositoryEntry
	// Exists reports whether a non-wildcard path was found.
	Exists bool
	// Documents holds the fetched file contents to shape-check, one per
	// resolved path (or a single one for non-wildcard specs).
	Documents []ContentDocument
}

// ValidateContent confirms each declared content file exists and, where
// the declared type implies a document shape, that the document parses.
// knownPaths is every file path observed during the run; it feeds the
// "did you mean" suggestions for missing files.
func ValidateContent(checks []ContentCheck, knownPaths []string) domain.SectionResult {
	sec := newSection(domain.SectionContent, MaxContent)

	for _, c := range checks {
		if !c.Spec.HasPath {
			continue // already an error in the config section
		}

		if c.Wildcard {
			if len(c.Matches) == 0 {
				// Wildcard specs are presumed valid by design; an empty
				// resolution is a hint, not a defect.
				sec.add(CatWildcardNoMatch, domain.ValidationIssue{
					Severity:   domain.SeverityWarning,
					Message:    fmt.Sprintf("content pattern %q matches no files", c.Spec.Path),
					Suggestion: "Add at least one matching file, or adjust the pattern",
					Path:       c.Spec.Path,
				})
				continue
			}
		} else if !c.Exists {
			sec.add(CatFileMissing, domain.ValidationIssue{
				Severity:   domain.SeverityWarning,
				Message:    fmt.Sprintf("declared content file %q does not exist", c.Spec.Path),
				Suggestion: missingFileSuggestion(c.Spec.Path, knownPaths),
				Path:       c.Spec.Path,
			})
			continue
		}

		for _, doc := range c.Documents {
			checkDocumentShape(c.Spec.DocumentType, doc, sec)
		}
	}

	return sec.result()
}

// checkDocumentShape runs the per-type shape check: json must parse,
// markdown must be non-empty with well-formed frontmatter, yaml is
// accepted without deep checking.
func checkDocumentShape(docType string, doc ContentDocument, sec *section) {
	switch docType {
	case manifest.DocJSON:
		var v any
		if err := json.Unmarshal(doc.Data, &v); err != nil {
			sec.add(CatJSONUnparsable, domain.ValidationIssue{
				Severity:   domain.SeverityError,
				Message:    fmt.Sprintf("content file %q is not valid JSON", doc.Path),
				Suggestion: "Fix the JSON syntax; validate the file with a JSON linter",
				Path:       doc.Path,
			})
		}
	case manifest.DocMarkdown:
		body := strings.TrimSpace(string(doc.Data))
		if body == "" {
			sec.add(CatMarkdownEmpty, domain.ValidationIssue{
				Severity:   domain.SeverityWarning,
				Message:    fmt.Sprintf("content file %q is empty", doc.Path),
				Suggestion: "Add starter content so users see a filled-in example",
				Path:       doc.Path,
			})
			return
		}
		if fm, ok := frontmatter(string(doc.Data)); ok {
			var v any
			if err := yaml.Unmarshal([]byte(fm), &v); err != nil {
				sec.add(CatFrontmatterMalformed, domain.ValidationIssue{
					Severity:   domain.SeverityWarning,
					Message:    fmt.Sprintf("content file %q has malformed frontmatter", doc.Path),
					Suggestion: "Fix the YAML between the --- markers",
					Path:       doc.Path,
				})
			}
		}
	}
}

// frontmatter extracts the YAML block between leading --- markers.
func frontmatter(content string) (string, bool) {
	if !strings.HasPrefix(content, "---\n") && !strings.HasPrefix(content, "---\r\n") {
		return "", false
	}
	rest := content[strings.Index(content, "\n")+1:]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// missingFileSuggestion proposes the closest existing path when a
// declared file is absent, or the generic fix when nothing is close.
func missingFileSuggestion(declared string, knownPaths []string) string {
	matches := fuzzy.Find(declared, knownPaths)
	if len(matches) > 0 {
		return fmt.Sprintf("Create the file, or did you mean %q?", matches[0].Str)
	}
	return "Create the file, or fix the declared path"
}
