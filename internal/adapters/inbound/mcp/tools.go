package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/archlint/archlint/internal/adapters/outbound/config"
	"github.com/archlint/archlint/internal/adapters/outbound/gitinfo"
	"github.com/archlint/archlint/internal/adapters/outbound/parser"
	"github.com/archlint/archlint/internal/adapters/outbound/scanner"
	"github.com/archlint/archlint/internal/application"
	"github.com/archlint/archlint/internal/domain"
)

// registerTools registers the archlint MCP tools on the given server.
func registerTools(s *server.MCPServer, rootDir string) {
	s.AddTool(
		mcplib.NewTool("archlint_lint",
			mcplib.WithDescription("Run all configured architectural rules over the repository and return the full report as JSON"),
		),
		handleLint(rootDir),
	)

	s.AddTool(
		mcplib.NewTool("archlint_list_rules",
			mcplib.WithDescription("Return the ids of all shipped rules"),
		),
		handleListRules(),
	)
}

// newLintService wires the standard set of outbound adapters.
func newLintService() *application.LintService {
	return application.NewLintService(
		scanner.New(),
		parser.New(),
		config.New(),
		gitinfo.New(),
	)
}

func handleLint(rootDir string) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc := newLintService()
		result, err := svc.LintRepository(ctx, rootDir)
		if err != nil {
			return errorResult(fmt.Sprintf("lint failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleListRules() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(domain.ValidRuleIDs)
	}
}

func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcplib.NewToolResultText(string(data)), nil
}

func errorResult(msg string) *mcplib.CallToolResult {
	return mcplib.NewToolResultError(msg)
}
