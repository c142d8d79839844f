package mcp

import (
	"context"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerResources registers all templint MCP resources on the given
// server. Both are static reference documents, so assistants can author
// a manifest without trial-and-error.
func registerResources(s *server.MCPServer) {
	// 1. templint://manifest-reference - manifest format documentation
	s.AddResource(
		mcplib.NewResource(
			"templint://manifest-reference",
			"Manifest Reference",
			mcplib.WithResourceDescription("Reference documentation for the template manifest format"),
			mcplib.WithMIMEType("text/markdown"),
		),
		staticResource("templint://manifest-reference", "text/markdown", manifestReference),
	)

	// 2. templint://example-manifest - a complete passing manifest
	s.AddResource(
		mcplib.NewResource(
			"templint://example-manifest",
			"Example Manifest",
			mcplib.WithResourceDescription("A complete template.json that passes validation"),
			mcplib.WithMIMEType("application/json"),
		),
		staticResource("templint://example-manifest", "application/json", exampleManifest),
	)
}

func staticResource(uri, mimeType, text string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      uri,
				MIMEType: mimeType,
				Text:     text,
			},
		}, nil
	}
}

const manifestReference = `# Template Manifest Reference

A FolioKit template declares itself through a manifest at the
repository root: ` + "`template.json`" + ` (canonical), ` + "`template.yaml`" + ` or
` + "`template.yml`" + `.

## Required fields

- **version** — semantic version of the template, e.g. ` + "`\"1.0.0\"`" + `.
- **templateType** — one of ` + "`json`" + `, ` + "`markdown`" + `, ` + "`hybrid`" + `.
- **contentFiles** — non-empty list of the documents users edit. Each
  entry needs:
  - **path** — repository-relative path. A single ` + "`*`" + ` wildcard is
    allowed in the file name segment, e.g. ` + "`content/*.md`" + `.
  - **schema** — the editable fields of the document (see below).
  - **documentType** — ` + "`json`" + `, ` + "`markdown`" + ` or ` + "`yaml`" + `; inferred from
    the file extension when omitted.

## Optional fields

- **name**, **description** — display metadata.
- **previewComponent** — path to the component that renders the
  template preview.
- **editableFields** — field paths (relative to a schema root, e.g.
  ` + "`title`" + ` or ` + "`profile.links[]`" + `) highlighted in the platform editor.
- **assets** — ` + "`allowedTypes`" + `, ` + "`maxSize`" + `, and relative ` + "`paths`" + ` for
  static assets.

## Field schemas

Every schema node has a ` + "`type`" + ` (one of: string, text, markdown,
number, boolean, select, array, object, image, date, url, email), an
optional human ` + "`label`" + `, and an optional ` + "`required`" + ` flag.

Constraints by type: ` + "`minLength`" + `/` + "`maxLength`" + `/` + "`pattern`" + ` (string-like),
` + "`min`" + `/` + "`max`" + ` (number), ` + "`options`" + ` (select), ` + "`minItems`" + `/` + "`maxItems`" + `
and ` + "`items`" + ` (array), ` + "`fields`" + ` (object children), ` + "`fileSize`" + `/
` + "`fileTypes`" + ` (image).

## Scoring

Four sections: structure (30), configuration (25), content (25),
compatibility (20). A template passes at 70 points with zero errors.
Grades: A ≥ 90, B ≥ 80, C ≥ 70, D ≥ 60, else F.
`

const exampleManifest = `{
  "version": "1.0.0",
  "name": "Minimal Portfolio",
  "description": "A single-page portfolio with editable profile data",
  "templateType": "hybrid",
  "contentFiles": [
    {
      "path": "data.json",
      "documentType": "json",
      "schema": {
        "type": "object",
        "label": "Profile",
        "fields": {
          "title": {"type": "string", "label": "Title", "required": true, "minLength": 1},
          "tagline": {"type": "text", "label": "Tagline"},
          "links": {
            "type": "array",
            "label": "Links",
            "items": {"type": "url", "label": "Link"}
          }
        }
      }
    },
    {
      "path": "content/*.md",
      "documentType": "markdown",
      "schema": {
        "type": "object",
        "label": "Page",
        "fields": {
          "title": {"type": "string", "label": "Title", "required": true},
          "date": {"type": "date", "label": "Date"}
        }
      }
    }
  ],
  "editableFields": ["title", "tagline", "links[]"],
  "previewComponent": "components/Preview.tsx",
  "assets": {
    "allowedTypes": ["png", "jpg", "svg"],
    "maxSize": "2MB",
    "paths": ["assets/"]
  }
}`
