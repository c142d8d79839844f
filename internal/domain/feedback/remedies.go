package feedback

import (
	"strings"

	"github.com/foliokit/templint/internal/domain"
)

// remedy is a known step-by-step fix with an illustrative document.
type remedy struct {
	Steps   []string
	Example string
}

const exampleManifest = `{
  "version": "1.0.0",
  "name": "My Template",
  "templateType": "json",
  "contentFiles": [
    {
      "path": "data.json",
      "documentType": "json",
      "schema": {
        "type": "object",
        "fields": {
          "title": {"type": "string", "label": "Title", "required": true}
        }
      }
    }
  ]
}`

const exampleSchema = `{
  "type": "object",
  "fields": {
    "title": {"type": "string", "label": "Title", "required": true, "minLength": 1},
    "links": {
      "type": "array",
      "label": "Links",
      "items": {"type": "url", "label": "Link"}
    }
  }
}`

const exampleContent = `{
  "title": "Hello, world"
}`

const exampleFrontmatter = `---
title: My first post
date: 2024-01-15
---

Post body goes here.`

// remedies keyed by a substring of the issue message. Keys are matched
// against the lowercased message, so they must be lowercase themselves.
var remedies = []struct {
	match string
	fix   remedy
}{
	{
		match: "no template manifest",
		fix: remedy{
			Steps: []string{
				"Create a template.json file at the repository root",
				"Declare version, templateType and at least one content file",
				"Re-run validation",
			},
			Example: exampleManifest,
		},
	},
	{
		match: "missing required field",
		fix: remedy{
			Steps: []string{
				"Open the template manifest",
				"Add the missing field with a supported value",
				"Re-run validation",
			},
			Example: exampleManifest,
		},
	},
	{
		match: "unsupported templatetype",
		fix: remedy{
			Steps: []string{
				"Open the template manifest",
				`Set templateType to "json", "markdown" or "hybrid"`,
			},
			Example: exampleManifest,
		},
	},
	{
		match: "unsupported field type",
		fix: remedy{
			Steps: []string{
				"Find the field in the content file schema",
				"Replace its type with one of the twelve supported field types",
			},
			Example: exampleSchema,
		},
	},
	{
		match: "no schema",
		fix: remedy{
			Steps: []string{
				"Add a schema object to the content file entry",
				"Describe each editable field with a type and a label",
			},
			Example: exampleSchema,
		},
	},
	{
		match: "not valid json",
		fix: remedy{
			Steps: []string{
				"Open the content file",
				"Fix the JSON syntax (trailing commas and unquoted keys are the usual culprits)",
			},
			Example: exampleContent,
		},
	},
	{
		match: "malformed frontmatter",
		fix: remedy{
			Steps: []string{
				"Open the markdown file",
				"Fix the YAML between the leading --- markers",
			},
			Example: exampleFrontmatter,
		},
	},
	{
		match: "no preview image",
		fix: remedy{
			Steps: []string{
				"Take a screenshot of the rendered template",
				"Save it as preview.png at the repository root",
			},
		},
	},
	{
		match: "no readme",
		fix: remedy{
			Steps: []string{
				"Add a README.md describing the template",
				"Mention which files users edit and what each field controls",
			},
		},
	},
}

// remedyFor looks up a known remediation for the issue.
func remedyFor(iss domain.ValidationIssue) (remedy, bool) {
	msg := strings.ToLower(iss.Message)
	for _, r := range remedies {
		if strings.Contains(msg, r.match) {
			return r.fix, true
		}
	}
	return remedy{}, false
}
