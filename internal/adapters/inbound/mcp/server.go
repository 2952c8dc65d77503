package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewArchlintMCPServer creates an MCP server with the archlint tools
// registered. rootDir is the repository the tools operate on.
func NewArchlintMCPServer(rootDir string) *server.MCPServer {
	s := server.NewMCPServer(
		"archlint",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, rootDir)

	return s
}
