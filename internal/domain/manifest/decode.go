package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/foliokit/templint/internal/domain"
	"github.com/foliokit/templint/internal/domain/schema"
)

// decodeField shapes one schema node into a schema.Field tree. Structural
// problems (non-object nodes, wrong-typed attributes) become issues and
// decoding continues with what could be salvaged; semantic validation is
// the walker's job.
func decodeField(name string, raw json.RawMessage, path string) (*schema.Field, []domain.ValidationIssue) {
	var node map[string]json.RawMessage
	if err := json.Unmarshal(raw, &node); err != nil {
		return nil, []domain.ValidationIssue{{
			Severity:   domain.SeverityError,
			Message:    "schema node must be an object",
			Suggestion: `Declare the field as an object with at least a "type" property`,
			Path:       path,
		}}
	}

	f := &schema.Field{Name: name}
	var issues []domain.ValidationIssue

	warn := func(attr, msg, suggestion string) {
		issues = append(issues, domain.ValidationIssue{
			Severity:   domain.SeverityWarning,
			Message:    msg,
			Suggestion: suggestion,
			Path:       path + "." + attr,
		})
	}

	if v, ok := node["type"]; ok {
		var kind string
		if err := json.Unmarshal(v, &kind); err != nil {
			warn("type", "field type must be a string", "Quote the type name")
		} else {
			f.Kind = schema.Kind(kind)
		}
	}
	if v, ok := node["label"]; ok {
		if err := json.Unmarshal(v, &f.Label); err != nil {
			warn("label", "label must be a string", "Quote the label")
		}
	}
	if v, ok := node["required"]; ok {
		if err := json.Unmarshal(v, &f.Required); err != nil {
			warn("required", "required must be a boolean", "Use true or false")
		}
	}

	issues = append(issues, decodeConstraints(node, &f.Constraints, path)...)

	if v, ok := node["fields"]; ok {
		children, childIssues := decodeChildren(v, path)
		f.Children = children
		issues = append(issues, childIssues...)
	}
	if v, ok := node["items"]; ok {
		item, itemIssues := decodeField("", v, path+"[]")
		f.Item = item
		issues = append(issues, itemIssues...)
	}

	return f, issues
}

func decodeChildren(raw json.RawMessage, path string) (map[string]*schema.Field, []domain.ValidationIssue) {
	var nodes map[string]json.RawMessage
	if err := json.Unmarshal(raw, &nodes); err != nil {
		return nil, []domain.ValidationIssue{{
			Severity:   domain.SeverityWarning,
			Message:    "fields must be an object mapping names to field definitions",
			Suggestion: `Use a map like {"title": {"type": "string"}}`,
			Path:       path + ".fields",
		}}
	}

	children := make(map[string]*schema.Field, len(nodes))
	var issues []domain.ValidationIssue
	for name, node := range nodes {
		child, childIssues := decodeField(name, node, path+"."+name)
		children[name] = child
		issues = append(issues, childIssues...)
	}
	return children, issues
}

func decodeConstraints(node map[string]json.RawMessage, c *schema.Constraints, path string) []domain.ValidationIssue {
	var issues []domain.ValidationIssue

	warn := func(attr, want string) {
		issues = append(issues, domain.ValidationIssue{
			Severity:   domain.SeverityWarning,
			Message:    fmt.Sprintf("%s must be %s", attr, want),
			Suggestion: fmt.Sprintf("Change %s to %s", attr, want),
			Path:       path + "." + attr,
		})
	}

	intAttr := func(attr string, dst **int) {
		v, ok := node[attr]
		if !ok {
			return
		}
		var n int
		if err := json.Unmarshal(v, &n); err != nil {
			warn(attr, "an integer")
			return
		}
		*dst = &n
	}
	floatAttr := func(attr string, dst **float64) {
		v, ok := node[attr]
		if !ok {
			return
		}
		var n float64
		if err := json.Unmarshal(v, &n); err != nil {
			warn(attr, "a number")
			return
		}
		*dst = &n
	}

	intAttr("minLength", &c.MinLength)
	intAttr("maxLength", &c.MaxLength)
	floatAttr("min", &c.Min)
	floatAttr("max", &c.Max)
	intAttr("minItems", &c.MinItems)
	intAttr("maxItems", &c.MaxItems)

	if v, ok := node["pattern"]; ok {
		if err := json.Unmarshal(v, &c.Pattern); err != nil {
			warn("pattern", "a string")
		}
	}
	if v, ok := node["options"]; ok {
		if err := json.Unmarshal(v, &c.Options); err != nil {
			warn("options", "an array of strings")
		}
	}
	if v, ok := node["fileSize"]; ok {
		if err := json.Unmarshal(v, &c.FileSize); err != nil {
			warn("fileSize", "a string")
		}
	}
	if v, ok := node["fileTypes"]; ok {
		if err := json.Unmarshal(v, &c.FileTypes); err != nil {
			warn("fileTypes", "an array of strings")
		}
	}

	return issues
}
