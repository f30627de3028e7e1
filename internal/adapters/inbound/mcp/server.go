package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewWashlineMCPServer creates a new MCP server with all Washline tools
// registered. The dataDir is the shop's data directory holding the config
// and order files.
func NewWashlineMCPServer(dataDir string) *server.MCPServer {
	s := server.NewMCPServer(
		"washline",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, dataDir)

	return s
}
