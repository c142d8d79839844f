package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/foliokit/templint/internal/domain"
	"github.com/foliokit/templint/internal/domain/manifest"
	"github.com/foliokit/templint/internal/domain/schema"
)

// semverRe accepts semantic-version-like strings: 1.0, 1.2.3, v2.0.0-rc1.
var semverRe = regexp.MustCompile(`^v?\d+\.\d+(\.\d+)?([-+][0-9A-Za-z.-]+)?$`)

// ConfigResult pairs the config section with what later stages need from
// the manifest: the shaped manifest itself, the total schema node count
// (complexity), and the per-file field paths (editableFields lookup).
type ConfigResult struct {
	Section     domain.SectionResult
	Manifest    *manifest.Manifest
	SchemaNodes int
	// SchemaPaths holds every declared field path relative to its schema
	// root, e.g. "title" or "profile.links[]".
	SchemaPaths map[string]bool
}

// ValidateConfig validates the parsed manifest document. parseErr is the
// outcome of the parse phase: a non-nil value means the document was
// malformed, which is a validation error (the document is
// author-controlled input) and short-circuits the remaining checks.
func ValidateConfig(doc *manifest.Document, parseErr error) ConfigResult {
	sec := newSection(domain.SectionConfig, MaxConfig)
	res := ConfigResult{SchemaPaths: make(map[string]bool)}

	if parseErr != nil {
		sec.add(CatManifestUnparsable, domain.ValidationIssue{
			Severity:   domain.SeverityError,
			Message:    fmt.Sprintf("manifest is not parsable: %v", parseErr),
			Suggestion: "Fix the document syntax; validate it with a JSON or YAML linter",
		})
		res.Section = sec.result()
		return res
	}

	m := doc.Manifest
	res.Manifest = &m

	checkRequiredFields(doc, sec)
	checkTemplateType(doc, sec)
	checkVersion(doc, sec)
	checkContentFiles(doc, sec, &res)
	checkAssets(doc, sec)

	// Shaping issues from the parse phase fold in at schema-issue rates.
	for _, iss := range doc.Issues {
		if iss.Severity == domain.SeverityError {
			sec.add(CatSchemaError, iss)
		} else {
			sec.add(CatSchemaWarning, iss)
		}
	}

	res.Section = sec.result()
	return res
}

func checkRequiredFields(doc *manifest.Document, sec *section) {
	for _, field := range []string{"version", "templateType", "contentFiles"} {
		if doc.Has(field) {
			continue
		}
		sec.add(CatRequiredFieldAbsent, domain.ValidationIssue{
			Severity:   domain.SeverityError,
			Message:    fmt.Sprintf("manifest is missing required field %q", field),
			Suggestion: fmt.Sprintf("Add a %q entry to the manifest", field),
			Path:       field,
		})
	}
}

func checkTemplateType(doc *manifest.Document, sec *section) {
	if !doc.Has("templateType") {
		return
	}
	tt := doc.Manifest.TemplateType
	if manifest.IsTemplateType(tt) {
		return
	}
	sec.add(CatBadTemplateType, domain.ValidationIssue{
		Severity:   domain.SeverityError,
		Message:    fmt.Sprintf("unsupported templateType %q", tt),
		Suggestion: "Use one of: " + strings.Join(manifest.TemplateTypes, ", "),
		Path:       "templateType",
	})
}

func checkVersion(doc *manifest.Document, sec *section) {
	if !doc.Has("version") {
		return
	}
	v := doc.Manifest.Version
	if semverRe.MatchString(v) {
		return
	}
	sec.add(CatBadVersion, domain.ValidationIssue{
		Severity:   domain.SeverityWarning,
		Message:    fmt.Sprintf("version %q is not a semantic version", v),
		Suggestion: `Use a semantic version like "1.0.0"`,
		Path:       "version",
	})
}

func checkContentFiles(doc *manifest.Document, sec *section, res *ConfigResult) {
	if !doc.Has("contentFiles") {
		return
	}

	files := doc.Manifest.ContentFiles
	if len(files) == 0 {
		sec.add(CatNoContentFiles, domain.ValidationIssue{
			Severity:   domain.SeverityError,
			Message:    "contentFiles must declare at least one content file",
			Suggestion: "Declare the documents users can edit, each with a path and a schema",
			Path:       "contentFiles",
		})
		return
	}

	for i, cf := range files {
		base := fmt.Sprintf("contentFiles[%d]", i)

		if !cf.HasPath {
			sec.add(CatEntryMissingPath, domain.ValidationIssue{
				Severity:   domain.SeverityError,
				Message:    "content file entry has no path",
				Suggestion: "Add a repository-relative path for the content file",
				Path:       base,
			})
		}
		if !cf.HasSchema {
			sec.add(CatEntryMissingSchema, domain.ValidationIssue{
				Severity:   domain.SeverityError,
				Message:    "content file entry has no schema",
				Suggestion: "Declare the file's editable fields as a schema",
				Path:       base,
			})
		}
		if cf.DocumentType != "" && !manifest.IsDocumentType(cf.DocumentType) {
			sec.add(CatBadDocumentType, domain.ValidationIssue{
				Severity:   domain.SeverityWarning,
				Message:    fmt.Sprintf("unsupported documentType %q", cf.DocumentType),
				Suggestion: "Use one of: " + strings.Join(manifest.DocumentTypes, ", "),
				Path:       base + ".documentType",
			})
		}

		if cf.Schema != nil {
			walkSchema(cf.Schema, base+".schema", sec, res)
		}
	}
}

// walkSchema delegates to the schema walker and folds its findings into
// the config section, errors costing more than warnings.
func walkSchema(root *schema.Field, base string, sec *section, res *ConfigResult) {
	walked := schema.Walk(root, base)
	res.SchemaNodes += walked.Nodes

	for _, p := range walked.Paths {
		rel := strings.TrimPrefix(p, base)
		rel = strings.TrimPrefix(rel, ".")
		if rel != "" {
			res.SchemaPaths[rel] = true
		}
	}

	for _, iss := range walked.Issues {
		switch iss.Severity {
		case domain.SeverityError:
			sec.add(CatSchemaError, iss)
		case domain.SeverityWarning:
			sec.add(CatSchemaWarning, iss)
		default:
			// Suggestions are free.
			sec.add("", iss)
		}
	}
}

func checkAssets(doc *manifest.Document, sec *section) {
	// Wrong-typed asset fields surface as shaping issues from the parse
	// phase; here only the declared paths are sanity-checked.
	if doc.Manifest.Assets == nil {
		return
	}
	for _, p := range doc.Manifest.Assets.Paths {
		if strings.HasPrefix(p, "/") || strings.Contains(p, "..") {
			sec.add(CatAssetTypeMismatch, domain.ValidationIssue{
				Severity:   domain.SeverityWarning,
				Message:    fmt.Sprintf("asset path %q must be repository-relative", p),
				Suggestion: `Use a relative path like "assets/"`,
				Path:       "assets.paths",
			})
		}
	}
}
