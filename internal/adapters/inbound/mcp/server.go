package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewTemplintMCPServer creates a new MCP server with all templint tools
// and resources registered. The templatePath is the root directory of
// the template repository to analyze.
func NewTemplintMCPServer(templatePath string) *server.MCPServer {
	s := server.NewMCPServer(
		"templint",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, templatePath)
	registerResources(s)

	return s
}
