package feedback

import (
	"strings"

	"github.com/foliokit/templint/internal/domain"
)

// Feedback categories an issue can be filed under.
const (
	CategoryStructure     = "structure"
	CategoryConfiguration = "configuration"
	CategoryContent       = "content"
	CategoryNaming        = "naming"
	CategoryCompatibility = "compatibility"
	CategoryDocumentation = "documentation"
	CategoryGeneral       = "general"
)

// categoryKeywords maps message keywords to a category. First match
// wins, so the more specific rows come first.
var categoryKeywords = []struct {
	keywords []string
	category string
}{
	{[]string{"readme", "documentation", "label"}, CategoryDocumentation},
	{[]string{"name", "identifier"}, CategoryNaming},
	{[]string{"previewcomponent", "editablefields", "ui component", "preview image"}, CategoryCompatibility},
	{[]string{"manifest", "templatetype", "version", "schema", "contentfiles", "assets"}, CategoryConfiguration},
	{[]string{"content file", "content pattern", "frontmatter", "json", "markdown", "empty"}, CategoryContent},
	{[]string{"directory", "directories", "found", "repository"}, CategoryStructure},
}

// Categorize files an issue under a feedback category by keyword-matching
// its message. Unmatched issues are general; that is fine, it only means
// less enrichment.
func Categorize(iss domain.ValidationIssue) string {
	msg := strings.ToLower(iss.Message)
	for _, row := range categoryKeywords {
		for _, kw := range row.keywords {
			if strings.Contains(msg, kw) {
				return row.category
			}
		}
	}
	return CategoryGeneral
}
