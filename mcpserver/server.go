// Package mcpserver exposes the tool catalog over the Model Context
// Protocol on stdio, so MCP hosts can drive the same executor the Telegram
// bot uses.
package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"kalibot/catalog"
)

// Server wraps an MCP stdio server registered with every catalog tool.
type Server struct {
	mcp     *server.MCPServer
	catalog *catalog.Registry
	exec    ToolRunner
}

// ToolRunner runs one tool invocation and returns its text output.
type ToolRunner func(ctx context.Context, tool string, params map[string]any) (string, error)

// New builds a server exposing every entry in the catalog. The availability
// check happens per call, not at registration: tools installed after startup
// work without a restart once the registry is rescanned.
func New(name, version string, reg *catalog.Registry, run ToolRunner) *Server {
	s := &Server{
		mcp:     server.NewMCPServer(name, version),
		catalog: reg,
		exec:    run,
	}

	for _, entry := range reg.Entries() {
		tool := entry.Tool
		s.mcp.AddTool(tool, s.handler(tool.Name))
	}
	return s
}

func (s *Server) handler(toolName string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if !s.catalog.Installed(toolName) {
			return mcp.NewToolResultError(fmt.Sprintf(
				"%s is not installed; run: %s",
				toolName, s.catalog.InstallCommand(toolName),
			)), nil
		}

		output, err := s.exec(ctx, toolName, request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(output), nil
	}
}

// ServeStdio blocks serving MCP over stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}
