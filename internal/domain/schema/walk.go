package schema

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/foliokit/templint/internal/domain"
)

// identRe matches identifier-like field names the portfolio renderer can
// bind to without escaping.
var identRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// WalkResult is the flattened outcome of validating one schema tree.
type WalkResult struct {
	Issues []domain.ValidationIssue
	// Nodes counts every field visited, including nested ones. Feeds the
	// complexity heuristic.
	Nodes int
	// Paths lists the dot/bracket-qualified path of every visited field,
	// in visit order. Used to resolve editableFields references.
	Paths []string
}

// Walk validates a schema declaration rooted at field, qualifying every
// issue with its dot/bracket path under basePath. Malformed nodes become
// issues, never panics or errors: the schema is author-controlled input.
func Walk(field *Field, basePath string) WalkResult {
	var res WalkResult
	walkNode(field, basePath, &res)
	return res
}

func walkNode(f *Field, path string, res *WalkResult) {
	if f == nil {
		res.Issues = append(res.Issues, domain.ValidationIssue{
			Severity:   domain.SeverityError,
			Message:    "schema field is not defined",
			Suggestion: "Declare the field as an object with at least a \"type\" property",
			Path:       path,
		})
		return
	}

	res.Nodes++
	res.Paths = append(res.Paths, path)

	checkKind(f, path, res)
	checkName(f, path, res)
	checkConstraints(f, path, res)
	checkLabel(f, path, res)

	switch f.Kind {
	case KindObject:
		if len(f.Children) == 0 {
			res.Issues = append(res.Issues, domain.ValidationIssue{
				Severity:   domain.SeverityWarning,
				Message:    "object field declares no child fields",
				Suggestion: "Add a \"fields\" map describing the object's properties",
				Path:       path,
			})
			return
		}
		// Maps have no declaration order; sort for deterministic reports.
		names := make([]string, 0, len(f.Children))
		for name := range f.Children {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			walkNode(f.Children[name], path+"."+name, res)
		}
	case KindArray:
		if f.Item == nil {
			res.Issues = append(res.Issues, domain.ValidationIssue{
				Severity:   domain.SeverityWarning,
				Message:    "array field declares no item schema",
				Suggestion: "Add an \"items\" definition describing the element type",
				Path:       path,
			})
			return
		}
		walkNode(f.Item, path+"[]", res)
	}
}

func checkKind(f *Field, path string, res *WalkResult) {
	if f.Kind == "" {
		res.Issues = append(res.Issues, domain.ValidationIssue{
			Severity:   domain.SeverityError,
			Message:    "field declares no type",
			Suggestion: fmt.Sprintf("Set \"type\" to one of: %s", kindList()),
			Path:       path,
		})
		return
	}
	if !IsSupported(f.Kind) {
		res.Issues = append(res.Issues, domain.ValidationIssue{
			Severity:   domain.SeverityError,
			Message:    fmt.Sprintf("unsupported field type %q", f.Kind),
			Suggestion: fmt.Sprintf("Use one of the supported types: %s", kindList()),
			Path:       path,
		})
	}
}

func checkName(f *Field, path string, res *WalkResult) {
	if f.Name == "" || identRe.MatchString(f.Name) {
		return
	}
	res.Issues = append(res.Issues, domain.ValidationIssue{
		Severity:   domain.SeverityWarning,
		Message:    fmt.Sprintf("field name %q is not identifier-like", f.Name),
		Suggestion: "Use letters, digits and underscores, starting with a letter or underscore",
		Path:       path,
	})
}

func checkConstraints(f *Field, path string, res *WalkResult) {
	c := f.Constraints

	warn := func(msg, suggestion string) {
		res.Issues = append(res.Issues, domain.ValidationIssue{
			Severity:   domain.SeverityWarning,
			Message:    msg,
			Suggestion: suggestion,
			Path:       path,
		})
	}

	if c.MinLength != nil && *c.MinLength < 0 {
		warn(fmt.Sprintf("minLength must be >= 0, got %d", *c.MinLength), "Use a non-negative minLength")
	}
	if c.MaxLength != nil && *c.MaxLength < 0 {
		warn(fmt.Sprintf("maxLength must be >= 0, got %d", *c.MaxLength), "Use a non-negative maxLength")
	}
	if c.MinLength != nil && c.MaxLength != nil && *c.MinLength > *c.MaxLength {
		warn(fmt.Sprintf("minLength %d exceeds maxLength %d", *c.MinLength, *c.MaxLength),
			"Make minLength less than or equal to maxLength")
	}
	if c.Min != nil && c.Max != nil && *c.Min > *c.Max {
		warn(fmt.Sprintf("min %v exceeds max %v", *c.Min, *c.Max),
			"Make min less than or equal to max")
	}
	if c.MinItems != nil && *c.MinItems < 0 {
		warn(fmt.Sprintf("minItems must be >= 0, got %d", *c.MinItems), "Use a non-negative minItems")
	}
	if c.MaxItems != nil && *c.MaxItems < 0 {
		warn(fmt.Sprintf("maxItems must be >= 0, got %d", *c.MaxItems), "Use a non-negative maxItems")
	}
	if c.MinItems != nil && c.MaxItems != nil && *c.MinItems > *c.MaxItems {
		warn(fmt.Sprintf("minItems %d exceeds maxItems %d", *c.MinItems, *c.MaxItems),
			"Make minItems less than or equal to maxItems")
	}
	if c.Pattern != "" {
		if _, err := regexp.Compile(c.Pattern); err != nil {
			warn(fmt.Sprintf("pattern %q is not a valid regular expression", c.Pattern),
				"Fix the regular expression syntax")
		}
	}
	if f.Kind == KindSelect && len(c.Options) == 0 {
		warn("select field declares no options", "Add an \"options\" list of selectable values")
	}
}

// checkLabel suggests a human label derived from the field name so the
// form editor does not fall back to the raw identifier.
func checkLabel(f *Field, path string, res *WalkResult) {
	if f.Label != "" || f.Name == "" {
		return
	}
	res.Issues = append(res.Issues, domain.ValidationIssue{
		Severity:   domain.SeveritySuggestion,
		Message:    fmt.Sprintf("field %q has no label", f.Name),
		Suggestion: fmt.Sprintf("Add a label, e.g. %q", labelFromName(f.Name)),
		Path:       path,
	})
}

// labelFromName derives a title-cased label from a camelCase or
// snake_case field name: "jobTitle" -> "Job Title".
func labelFromName(name string) string {
	name = strings.ReplaceAll(name, "_", " ")
	var words []string
	for _, part := range strings.Fields(name) {
		words = append(words, camelcase.Split(part)...)
	}
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func kindList() string {
	parts := make([]string, len(SupportedKinds))
	for i, k := range SupportedKinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}
