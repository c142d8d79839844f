package cli

import (
	mcpadapter "github.com/foliokit/templint/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the templint MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var templatePath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the templint MCP server (stdio)",
		Long:  "Start the templint MCP server using stdio transport, so AI assistants can validate templates and fetch feedback directly.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if templatePath == "" {
				templatePath = "."
			}
			s := mcpadapter.NewTemplintMCPServer(templatePath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&templatePath, "path", "", "Template path (defaults to current working directory)")

	return cmd
}
