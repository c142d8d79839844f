// Package manifest parses template manifest documents. Parsing is
// two-phase: decode shapes the raw document into typed values (malformed
// nodes become issues, never panics), and the scoring layer is the
// single source of truth for required-field and constraint checks.
package manifest

import (
	"path"

	"github.com/foliokit/templint/internal/domain/schema"
)

// Manifest file names the platform recognizes, in lookup order.
// template.json is canonical; the YAML spellings are accepted when no
// JSON manifest exists.
var FileNames = []string{"template.json", "template.yaml", "template.yml"}

// Template types the platform supports.
const (
	TypeJSON     = "json"
	TypeMarkdown = "markdown"
	TypeHybrid   = "hybrid"
)

var TemplateTypes = []string{TypeJSON, TypeMarkdown, TypeHybrid}

func IsTemplateType(t string) bool {
	for _, v := range TemplateTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Content document types the platform supports.
const (
	DocJSON     = "json"
	DocMarkdown = "markdown"
	DocYAML     = "yaml"
)

var DocumentTypes = []string{DocJSON, DocMarkdown, DocYAML}

func IsDocumentType(t string) bool {
	for _, v := range DocumentTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ContentFile declares one user-editable document of the template. Path
// may contain a single wildcard segment in its file name.
type ContentFile struct {
	Path         string        `json:"path"`
	DocumentType string        `json:"documentType"`
	Schema       *schema.Field `json:"schema,omitempty"`

	// Presence flags from the parse phase; requiredness is judged by the
	// config validator, not here.
	HasPath   bool `json:"-"`
	HasSchema bool `json:"-"`
}

// InferDocumentType guesses the document type from the path extension
// when the manifest does not declare one.
func InferDocumentType(p string) string {
	switch path.Ext(p) {
	case ".json":
		return DocJSON
	case ".md", ".markdown":
		return DocMarkdown
	case ".yaml", ".yml":
		return DocYAML
	default:
		return ""
	}
}

// Assets configures which static files template users may upload.
type Assets struct {
	AllowedTypes []string `json:"allowedTypes,omitempty"`
	MaxSize      string   `json:"maxSize,omitempty"`
	Paths        []string `json:"paths,omitempty"`
}

// Manifest is the shaped, not yet validated template manifest.
// Immutable once parsed.
type Manifest struct {
	Version          string        `json:"version,omitempty"`
	Name             string        `json:"name,omitempty"`
	Description      string        `json:"description,omitempty"`
	TemplateType     string        `json:"templateType,omitempty"`
	ContentFiles     []ContentFile `json:"contentFiles,omitempty"`
	Assets           *Assets       `json:"assets,omitempty"`
	EditableFields   []string      `json:"editableFields,omitempty"`
	PreviewComponent string        `json:"previewComponent,omitempty"`
}
