package scoring

import (
	"fmt"
	"path"

	"github.com/foliokit/templint/internal/domain"
	"github.com/foliokit/templint/internal/domain/manifest"
)

// uiExts are file extensions that evidence a renderable UI component.
var uiExts = map[string]bool{
	".jsx": true, ".tsx": true, ".vue": true, ".svelte": true, ".astro": true,
}

// maxEditableFieldIssues caps how many unknown editableFields entries
// are reported; past that the author has a systematic problem and more
// repetition adds nothing.
const maxEditableFieldIssues = 3

// AnalyzeCompatibility checks the manifest's optional platform hooks
// against the repository: the declared preview component, the
// editableFields references, and best-effort UI evidence. m may be nil
// when the manifest never parsed; the stage then has nothing to check.
func AnalyzeCompatibility(m *manifest.Manifest, observed []domain.RepositoryEntry, schemaPaths map[string]bool) domain.SectionResult {
	sec := newSection(domain.SectionCompatibility, MaxCompatibility)

	if m == nil {
		return sec.result()
	}

	if m.PreviewComponent != "" && !entryExists(observed, m.PreviewComponent) {
		sec.add(CatPreviewComponentMissing, domain.ValidationIssue{
			Severity:   domain.SeverityWarning,
			Message:    fmt.Sprintf("declared previewComponent %q does not exist", m.PreviewComponent),
			Suggestion: "Create the component file, or fix the declared path",
			Path:       "previewComponent",
		})
	}

	reported := 0
	for _, field := range m.EditableFields {
		if schemaPaths[field] {
			continue
		}
		if reported >= maxEditableFieldIssues {
			break
		}
		reported++
		sec.add(CatEditableFieldUnknown, domain.ValidationIssue{
			Severity:   domain.SeverityWarning,
			Message:    fmt.Sprintf("editableFields entry %q matches no declared schema field", field),
			Suggestion: "Reference a field path declared in a content file schema",
			Path:       "editableFields",
		})
	}

	if !hasUIEvidence(observed) {
		sec.add(CatNoUIEvidence, domain.ValidationIssue{
			Severity:   domain.SeveritySuggestion,
			Message:    "no UI component files found (.jsx, .tsx, .vue, .svelte, .astro)",
			Suggestion: "Ship at least one renderable component so the platform can preview the template",
		})
	}

	return sec.result()
}

func entryExists(observed []domain.RepositoryEntry, p string) bool {
	for _, e := range observed {
		if e.IsFile() && e.Path == p {
			return true
		}
	}
	return false
}

func hasUIEvidence(observed []domain.RepositoryEntry) bool {
	for _, e := range observed {
		if e.IsFile() && uiExts[path.Ext(e.Name)] {
			return true
		}
	}
	return false
}
