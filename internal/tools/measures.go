package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/sonarqube-mcp/internal/output"
)

// --- get-metrics ---

// MetricsTool handles the get-metrics MCP tool.
type MetricsTool struct {
	client SonarQube
	format output.Format
}

// NewMetricsTool creates a MetricsTool.
func NewMetricsTool(client SonarQube, format output.Format) *MetricsTool {
	return &MetricsTool{client: client, format: format}
}

type metricsArgs struct {
	ProjectKey string   `json:"projectKey" validate:"required"`
	MetricKeys []string `json:"metricKeys" validate:"min=1"`
}

// Definition returns the MCP tool definition for registration.
func (t *MetricsTool) Definition() mcp.Tool {
	return mcp.NewTool("get-metrics",
		mcp.WithDescription(
			"Get measures of a SonarQube project. "+
				"Common metric keys: ncloc, bugs, vulnerabilities, code_smells, coverage, "+
				"duplicated_lines_density, sqale_rating, reliability_rating, security_rating.",
		),
		projectKeyOption(),
		mcp.WithArray("metricKeys",
			mcp.Required(),
			mcp.Description("Metric keys to retrieve (e.g., ['coverage', 'bugs'])"),
			mcp.WithStringItems(),
			mcp.MinItems(1),
		),
	)
}

// Handle processes the get-metrics tool call.
func (t *MetricsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args metricsArgs
	if err := bindArgs(req, &args); err != nil {
		return errorResult(err)
	}

	data, err := t.client.GetMetrics(ctx, args.ProjectKey, args.MetricKeys)
	if err != nil {
		return errorResult(err)
	}
	return result(data, t.format)
}

// --- get-quality-gate-status ---

// QualityGateTool handles the get-quality-gate-status MCP tool.
type QualityGateTool struct {
	client SonarQube
	format output.Format
}

// NewQualityGateTool creates a QualityGateTool.
func NewQualityGateTool(client SonarQube, format output.Format) *QualityGateTool {
	return &QualityGateTool{client: client, format: format}
}

// Definition returns the MCP tool definition for registration.
func (t *QualityGateTool) Definition() mcp.Tool {
	return mcp.NewTool("get-quality-gate-status",
		mcp.WithDescription("Get the Quality Gate status of a SonarQube project"),
		projectKeyOption(),
	)
}

// Handle processes the get-quality-gate-status tool call.
func (t *QualityGateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args projectKeyArgs
	if err := bindArgs(req, &args); err != nil {
		return errorResult(err)
	}

	data, err := t.client.GetQualityGateStatus(ctx, args.ProjectKey)
	if err != nil {
		return errorResult(err)
	}
	return result(data, t.format)
}
