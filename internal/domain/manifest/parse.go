package manifest

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/foliokit/templint/internal/domain"
)

// Format of a manifest document on disk.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DetectFormat picks the document format from the manifest file name.
func DetectFormat(filename string) Format {
	if strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml") {
		return FormatYAML
	}
	return FormatJSON
}

// Document is the outcome of the parse phase: the shaped manifest, which
// top-level keys were present, and any shaping issues (wrong-typed
// values the decoder tolerated).
type Document struct {
	Manifest Manifest
	Present  map[string]bool
	Issues   []domain.ValidationIssue
}

func (d *Document) Has(key string) bool { return d.Present[key] }

// Parse decodes a manifest document. A document that cannot be parsed at
// all yields an error; the caller reports it as a validation error, not
// an operational failure, because the document is author-controlled.
func Parse(data []byte, format Format) (*Document, error) {
	raw, err := topLevel(data, format)
	if err != nil {
		return nil, err
	}

	doc := &Document{Present: make(map[string]bool, len(raw))}
	for key := range raw {
		doc.Present[key] = true
	}

	doc.shapeString(raw, "version", &doc.Manifest.Version)
	doc.shapeString(raw, "name", &doc.Manifest.Name)
	doc.shapeString(raw, "description", &doc.Manifest.Description)
	doc.shapeString(raw, "templateType", &doc.Manifest.TemplateType)
	doc.shapeString(raw, "previewComponent", &doc.Manifest.PreviewComponent)
	doc.shapeContentFiles(raw)
	doc.shapeAssets(raw)
	doc.shapeEditableFields(raw)

	return doc, nil
}

// topLevel decodes the document into its top-level key/value form. YAML
// documents are bridged through a generic decode and re-encoded as JSON
// so a single shaping path exists.
func topLevel(data []byte, format Format) (map[string]json.RawMessage, error) {
	if format == FormatYAML {
		var generic any
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return nil, fmt.Errorf("parsing yaml manifest: %w", err)
		}
		bridged, err := json.Marshal(generic)
		if err != nil {
			return nil, fmt.Errorf("bridging yaml manifest: %w", err)
		}
		data = bridged
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return raw, nil
}

func (d *Document) shapeString(raw map[string]json.RawMessage, key string, dst *string) {
	v, ok := raw[key]
	if !ok {
		return
	}
	if err := json.Unmarshal(v, dst); err != nil {
		d.warn(key, fmt.Sprintf("%s must be a string", key),
			fmt.Sprintf("Change %s to a quoted string value", key))
	}
}

func (d *Document) shapeContentFiles(raw map[string]json.RawMessage) {
	v, ok := raw["contentFiles"]
	if !ok {
		return
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(v, &entries); err != nil {
		d.warn("contentFiles", "contentFiles must be an array",
			"Declare contentFiles as a list of {path, documentType, schema} entries")
		return
	}

	for i, entry := range entries {
		d.Manifest.ContentFiles = append(d.Manifest.ContentFiles, d.shapeContentFile(entry, i))
	}
}

func (d *Document) shapeContentFile(entry json.RawMessage, idx int) ContentFile {
	base := fmt.Sprintf("contentFiles[%d]", idx)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(entry, &fields); err != nil {
		d.warn(base, "content file entry must be an object",
			"Declare each content file as {path, documentType, schema}")
		return ContentFile{}
	}

	var cf ContentFile
	if v, ok := fields["path"]; ok {
		cf.HasPath = true
		if err := json.Unmarshal(v, &cf.Path); err != nil {
			d.warn(base+".path", "path must be a string", "Use a repository-relative file path")
			cf.HasPath = false
		}
	}
	if v, ok := fields["documentType"]; ok {
		if err := json.Unmarshal(v, &cf.DocumentType); err != nil {
			d.warn(base+".documentType", "documentType must be a string",
				"Use one of: "+strings.Join(DocumentTypes, ", "))
		}
	}
	if cf.DocumentType == "" && cf.Path != "" {
		cf.DocumentType = InferDocumentType(cf.Path)
	}
	if v, ok := fields["schema"]; ok {
		cf.HasSchema = true
		field, issues := decodeField("", v, base+".schema")
		cf.Schema = field
		d.Issues = append(d.Issues, issues...)
	}

	return cf
}

func (d *Document) shapeAssets(raw map[string]json.RawMessage) {
	v, ok := raw["assets"]
	if !ok {
		return
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(v, &fields); err != nil {
		d.warn("assets", "assets must be an object",
			"Declare assets as {allowedTypes, maxSize, paths}")
		return
	}

	assets := &Assets{}
	if av, ok := fields["allowedTypes"]; ok {
		if err := json.Unmarshal(av, &assets.AllowedTypes); err != nil {
			d.warn("assets.allowedTypes", "assets.allowedTypes must be an array of strings",
				`Use a list like ["png", "jpg"]`)
		}
	}
	if av, ok := fields["maxSize"]; ok {
		if err := json.Unmarshal(av, &assets.MaxSize); err != nil {
			d.warn("assets.maxSize", "assets.maxSize must be a string",
				`Use a size string like "2MB"`)
		}
	}
	if av, ok := fields["paths"]; ok {
		if err := json.Unmarshal(av, &assets.Paths); err != nil {
			d.warn("assets.paths", "assets.paths must be an array of strings",
				`Use a list like ["assets/"]`)
		}
	}
	d.Manifest.Assets = assets
}

func (d *Document) shapeEditableFields(raw map[string]json.RawMessage) {
	v, ok := raw["editableFields"]
	if !ok {
		return
	}
	if err := json.Unmarshal(v, &d.Manifest.EditableFields); err != nil {
		d.warn("editableFields", "editableFields must be an array of field paths",
			`Use a list like ["title", "profile.name"]`)
	}
}

func (d *Document) warn(path, msg, suggestion string) {
	d.Issues = append(d.Issues, domain.ValidationIssue{
		Severity:   domain.SeverityWarning,
		Message:    msg,
		Suggestion: suggestion,
		Path:       path,
	})
}
