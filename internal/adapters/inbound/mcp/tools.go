package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/foliokit/templint/internal/adapters/outbound/repocache"
	"github.com/foliokit/templint/internal/adapters/outbound/repofs"
	"github.com/foliokit/templint/internal/adapters/outbound/repogit"
	"github.com/foliokit/templint/internal/adapters/outbound/tui"
	"github.com/foliokit/templint/internal/application"
	"github.com/foliokit/templint/internal/domain"
	"github.com/foliokit/templint/internal/domain/manifest"
	"github.com/foliokit/templint/internal/domain/scoring"
)

// registerTools registers all templint MCP tools on the given server.
func registerTools(s *server.MCPServer, templatePath string) {
	// 1. template_validate
	s.AddTool(
		mcplib.NewTool("template_validate",
			mcplib.WithDescription("Validate the repository as a FolioKit template and return the full compatibility report as JSON"),
			mcplib.WithString("rev", mcplib.Description("Git revision to validate (branch, tag, or hash); defaults to the working tree")),
		),
		handleValidate(templatePath),
	)

	// 2. template_feedback
	s.AddTool(
		mcplib.NewTool("template_feedback",
			mcplib.WithDescription("Validate the repository and return actionable feedback: categorized fixes, quick wins, and an ordered plan"),
			mcplib.WithString("rev", mcplib.Description("Git revision to analyze (branch, tag, or hash); defaults to the working tree")),
			mcplib.WithString("format", mcplib.Description("Output format: md or json (default: json)")),
		),
		handleFeedback(templatePath),
	)

	// 3. template_manifest
	s.AddTool(
		mcplib.NewTool("template_manifest",
			mcplib.WithDescription("Parse the repository's template manifest and return the shaped result with any shaping issues"),
		),
		handleManifest(templatePath),
	)
}

// newAccessor builds the accessor for one tool call: git when a
// revision is requested, the working tree otherwise, memoized either
// way.
func newAccessor(templatePath, rev string) (domain.RepositoryAccessor, error) {
	if rev != "" {
		acc, err := repogit.Open(templatePath)
		if err != nil {
			return nil, fmt.Errorf("rev requires a git repository: %w", err)
		}
		return repocache.Wrap(acc), nil
	}
	acc, err := repofs.New(templatePath)
	if err != nil {
		return nil, err
	}
	return repocache.Wrap(acc), nil
}

func handleValidate(templatePath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		rev, _ := request.GetArguments()["rev"].(string)

		accessor, err := newAccessor(templatePath, rev)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewValidateService(accessor)
		report, err := svc.ValidateTemplate(ctx, rev)
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}

		// Only revision validations get a commit stamp; the working tree
		// may hold changes no commit contains.
		if rev != "" {
			if acc, err := repogit.Open(templatePath); err == nil {
				if hash, err := acc.CommitHash(rev); err == nil {
					report.CommitHash = hash
				}
			}
		}

		return jsonResult(report)
	}
}

func handleFeedback(templatePath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		rev, _ := args["rev"].(string)

		accessor, err := newAccessor(templatePath, rev)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewFeedbackService(application.NewValidateService(accessor))
		fb, _, err := svc.GenerateFeedback(ctx, rev)
		if err != nil {
			return errorResult(fmt.Sprintf("feedback failed: %v", err)), nil
		}

		if format, _ := args["format"].(string); format == "md" {
			return textResult(tui.FeedbackMarkdown(fb)), nil
		}
		return jsonResult(fb)
	}
}

func handleManifest(templatePath string) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		accessor, err := newAccessor(templatePath, "")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		root, err := accessor.ListEntries(ctx, "", "")
		if err != nil {
			return errorResult(fmt.Sprintf("listing repository: %v", err)), nil
		}

		structure := scoring.AnalyzeStructure(root)
		if structure.ManifestEntry == nil {
			return errorResult("no template manifest found (template.json, template.yaml or template.yml)"), nil
		}

		data, err := accessor.ReadFile(ctx, structure.ManifestEntry.Path, "")
		if err != nil {
			return errorResult(fmt.Sprintf("reading manifest: %v", err)), nil
		}

		doc, parseErr := manifest.Parse(data, manifest.DetectFormat(structure.ManifestEntry.Name))
		if parseErr != nil {
			return errorResult(fmt.Sprintf("manifest is not parsable: %v", parseErr)), nil
		}

		result := struct {
			Path     string                   `json:"path"`
			Manifest manifest.Manifest        `json:"manifest"`
			Issues   []domain.ValidationIssue `json:"issues,omitempty"`
		}{
			Path:     structure.ManifestEntry.Path,
			Manifest: doc.Manifest,
			Issues:   doc.Issues,
		}
		return jsonResult(result)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
