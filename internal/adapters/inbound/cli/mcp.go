package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/archlint/archlint/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the archlint MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var rootDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start archlint MCP server (stdio)",
		Long:  "Start the archlint MCP server using stdio transport, so AI coding assistants can lint the repository and inspect the rule set.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if rootDir == "" {
				rootDir = "."
			}
			s := mcpadapter.NewArchlintMCPServer(rootDir)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&rootDir, "path", "", "Repository path (defaults to current working directory)")

	return cmd
}
