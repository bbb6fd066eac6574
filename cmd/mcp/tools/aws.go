package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/elC0mpa/aws-cost-report/cmd/mcp/response"
	"github.com/elC0mpa/aws-cost-report/service/orchestrator"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ReportFactory builds an orchestrator for a single tool call.
type ReportFactory func(ctx context.Context) (orchestrator.OrchestratorService, error)

// RegisterAWSTools registers all AWS tools with the MCP server
func RegisterAWSTools(s *server.MCPServer, factory ReportFactory) {
	// Cost summary
	s.AddTool(
		mcp.NewTool("aws_get_cost_summary",
			mcp.WithDescription("Get the month-to-date AWS cost, last 24h cost, 30-day forecast and the per-service breakdown"),
		),
		makeCostSummaryHandler(factory),
	)

	// Rendered report
	s.AddTool(
		mcp.NewTool("aws_get_cost_report_html",
			mcp.WithDescription("Render the daily AWS cost report as a self-contained HTML document without sending it"),
		),
		makeCostReportHTMLHandler(factory),
	)

	// Send report
	s.AddTool(
		mcp.NewTool("aws_send_cost_report",
			mcp.WithDescription("Build the daily AWS cost report and email it to the configured RECIPIENT_EMAIL through SES"),
		),
		makeSendCostReportHandler(factory),
	)
}

func makeCostSummaryHandler(factory ReportFactory) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		orchestratorService, err := factory(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		r, err := orchestratorService.Prepare(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get costs: %v", err)), nil
		}

		resp := response.ConvertReport(r)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeCostReportHTMLHandler(factory ReportFactory) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		orchestratorService, err := factory(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		r, err := orchestratorService.Prepare(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to build report: %v", err)), nil
		}

		return mcp.NewToolResultText(r.HTML), nil
	}
}

func makeSendCostReportHandler(factory ReportFactory) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		orchestratorService, err := factory(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		result := orchestratorService.Run(ctx)
		data, _ := json.MarshalIndent(result, "", "  ")
		if !result.Succeeded() {
			return mcp.NewToolResultError(string(data)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}
