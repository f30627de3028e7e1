package cli

import (
	mcpadapter "github.com/washline/washline/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the Washline MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start Washline MCP server (stdio)",
		Long:  "Start the Washline MCP server using stdio transport. This lets AI assistants add, track, and finish laundry orders.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewWashlineMCPServer(dataDir)
			return server.ServeStdio(s)
		},
	}

	addDataFlag(cmd, &dataDir)
	return cmd
}
