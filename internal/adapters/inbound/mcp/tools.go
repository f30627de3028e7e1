package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/washline/washline/internal/adapters/outbound/config"
	"github.com/washline/washline/internal/adapters/outbound/ledger"
	"github.com/washline/washline/internal/adapters/outbound/store"
	"github.com/washline/washline/internal/application"
	"github.com/washline/washline/internal/domain"
)

// registerTools registers all Washline MCP tools on the given server.
func registerTools(s *server.MCPServer, dataDir string) {
	// 1. washline_list_orders
	s.AddTool(
		mcplib.NewTool("washline_list_orders",
			mcplib.WithDescription("Returns all open laundry orders as JSON, in insertion order"),
		),
		handleListOrders(dataDir),
	)

	// 2. washline_add_order
	s.AddTool(
		mcplib.NewTool("washline_add_order",
			mcplib.WithDescription("Register a new laundry order; it enters the queue as \"For Washing\""),
			mcplib.WithString("name",
				mcplib.Required(),
				mcplib.Description("Customer name"),
			),
			mcplib.WithString("contact",
				mcplib.Description("Customer contact number"),
			),
			mcplib.WithNumber("weight_kg",
				mcplib.Required(),
				mcplib.Description("Load weight in kilograms, must be positive"),
			),
			mcplib.WithString("service",
				mcplib.Required(),
				mcplib.Description("Service category: wash, dry, fold, or combo"),
			),
		),
		handleAddOrder(dataDir),
	)

	// 3. washline_update_status
	s.AddTool(
		mcplib.NewTool("washline_update_status",
			mcplib.WithDescription("Move an order to a new lifecycle status"),
			mcplib.WithNumber("id",
				mcplib.Required(),
				mcplib.Description("Order ID"),
			),
			mcplib.WithString("status",
				mcplib.Required(),
				mcplib.Description("New status: For Washing, Drying, Ready for Pickup, or Finished"),
			),
		),
		handleUpdateStatus(dataDir),
	)

	// 4. washline_finish_order
	s.AddTool(
		mcplib.NewTool("washline_finish_order",
			mcplib.WithDescription("Finish an order: charge the fee, record it in the sales ledger, and remove it from the queue"),
			mcplib.WithNumber("id",
				mcplib.Required(),
				mcplib.Description("Order ID"),
			),
		),
		handleFinishOrder(dataDir),
	)

	// 5. washline_find_orders
	s.AddTool(
		mcplib.NewTool("washline_find_orders",
			mcplib.WithDescription("Find open orders by customer name (case-insensitive) or contact (exact)"),
			mcplib.WithString("query",
				mcplib.Required(),
				mcplib.Description("Customer name or contact to search for"),
			),
		),
		handleFindOrders(dataDir),
	)

	// 6. washline_generate_summary
	s.AddTool(
		mcplib.NewTool("washline_generate_summary",
			mcplib.WithDescription("Write a timestamped sales summary of the open orders and return its path"),
		),
		handleGenerateSummary(dataDir),
	)
}

// newService wires the standard adapters for dataDir and restores the queue.
func newService(dataDir string) (*application.OrderService, domain.Config, error) {
	cfg, err := config.New().Load(dataDir)
	if err != nil {
		return nil, domain.Config{}, err
	}
	if cfg.DataDir == "." {
		cfg.DataDir = dataDir
	}
	st := store.New(cfg.OrdersPath(), cfg.FallbackOrdersPath())
	svc, _ := application.NewOrderService(st, ledger.New(cfg), cfg)
	return svc, cfg, nil
}

func handleListOrders(dataDir string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc, _, err := newService(dataDir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading queue failed: %v", err)), nil
		}
		return jsonResult(svc.List())
	}
}

func handleAddOrder(dataDir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		weight, err := request.RequireFloat("weight_kg")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		service, err := request.RequireString("service")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		contact := request.GetString("contact", "")

		svc, _, err := newService(dataDir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading queue failed: %v", err)), nil
		}
		o, err := svc.Add(name, contact, weight, service)
		if err != nil {
			return errorResult(fmt.Sprintf("add failed: %v", err)), nil
		}
		return jsonResult(o)
	}
}

func handleUpdateStatus(dataDir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := request.RequireInt("id")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		status, err := request.RequireString("status")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc, _, err := newService(dataDir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading queue failed: %v", err)), nil
		}
		o, err := svc.UpdateStatus(id, status)
		if err != nil {
			return errorResult(fmt.Sprintf("status update failed: %v", err)), nil
		}
		return jsonResult(o)
	}
}

func handleFinishOrder(dataDir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := request.RequireInt("id")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc, _, err := newService(dataDir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading queue failed: %v", err)), nil
		}
		o, fee, err := svc.Finish(id)
		if err != nil {
			return errorResult(fmt.Sprintf("finish failed: %v", err)), nil
		}
		return jsonResult(map[string]any{"order": o, "fee": fee})
	}
}

func handleFindOrders(dataDir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc, _, err := newService(dataDir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading queue failed: %v", err)), nil
		}
		return jsonResult(svc.Find(query))
	}
}

func handleGenerateSummary(dataDir string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := config.New().Load(dataDir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config failed: %v", err)), nil
		}
		if cfg.DataDir == "." {
			cfg.DataDir = dataDir
		}
		st := store.New(cfg.OrdersPath(), cfg.FallbackOrdersPath())
		reports := application.NewReportService(st, ledger.New(cfg), cfg)

		path, _, err := reports.GenerateSummary()
		if err != nil {
			return errorResult(fmt.Sprintf("summary failed: %v", err)), nil
		}
		return textResult(path), nil
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
