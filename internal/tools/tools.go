// Package tools implements the MCP tool handlers that expose the
// SonarQube Web API.
//
// Each tool is a struct that receives its dependencies via its
// constructor and offers:
//   - Definition() returning the mcp.Tool schema
//   - Handle() processing a CallToolRequest
//
// Handle binds the arguments into a typed struct, validates it, calls
// exactly one SonarQube method and wraps the outcome. Per-call failures
// are returned as error results, never as Go errors, so a failing
// upstream call cannot break the session.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/sonarqube-mcp/internal/output"
	"github.com/HendryAvila/sonarqube-mcp/internal/sonarqube"
)

// SonarQube is the client surface the tools depend on.
// *sonarqube.Client satisfies it.
type SonarQube interface {
	ListProjects(ctx context.Context, opts sonarqube.ListProjectsOptions) (*sonarqube.ProjectsResponse, error)
	GetProject(ctx context.Context, projectKey string) (*sonarqube.Project, error)
	ListBranches(ctx context.Context, projectKey string) (sonarqube.RawJSON, error)
	ListAnalyses(ctx context.Context, projectKey string, page, pageSize int) (sonarqube.RawJSON, error)
	SearchIssues(ctx context.Context, projectKey string, opts sonarqube.IssueSearchOptions) (*sonarqube.IssuesResponse, error)
	GetMetrics(ctx context.Context, projectKey string, metricKeys []string) (*sonarqube.MetricsResponse, error)
	GetQualityGateStatus(ctx context.Context, projectKey string) (*sonarqube.QualityGate, error)
	SearchHotspots(ctx context.Context, projectKey string, opts sonarqube.HotspotSearchOptions) (sonarqube.RawJSON, error)
	GetHotspot(ctx context.Context, hotspotKey string) (sonarqube.RawJSON, error)
	GetDuplications(ctx context.Context, fileKey string) (sonarqube.RawJSON, error)
	GetSource(ctx context.Context, fileKey string, from, to int) (sonarqube.RawJSON, error)
	GetRule(ctx context.Context, ruleKey string) (sonarqube.RawJSON, error)
}

var _ SonarQube = (*sonarqube.Client)(nil)

// Tool is what the server registers.
type Tool interface {
	Definition() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// All returns every tool in registration order.
func All(client SonarQube, format output.Format) []Tool {
	return []Tool{
		NewProjectsTool(client, format),
		NewProjectDetailsTool(client, format),
		NewIssuesTool(client, format),
		NewMetricsTool(client, format),
		NewQualityGateTool(client, format),
		NewAnalysesTool(client, format),
		NewHotspotsTool(client, format),
		NewHotspotDetailsTool(client, format),
		NewDuplicationsTool(client, format),
		NewSourceCodeTool(client, format),
		NewRuleDetailsTool(client, format),
		NewBranchesTool(client, format),
	}
}

// Enumerations accepted by the issue and hotspot filters. The validate
// tags on the argument structs must list the same values.
var (
	Severities    = []string{"BLOCKER", "CRITICAL", "MAJOR", "MINOR", "INFO"}
	IssueTypes    = []string{"BUG", "VULNERABILITY", "CODE_SMELL", "SECURITY_HOTSPOT"}
	LegacyStatus  = []string{"OPEN", "CONFIRMED", "REOPENED", "RESOLVED", "CLOSED", "TO_REVIEW", "IN_REVIEW", "REVIEWED"}
	IssueStatuses = []string{"OPEN", "CONFIRMED", "FALSE_POSITIVE", "ACCEPTED", "FIXED"}

	HotspotStatuses    = []string{"TO_REVIEW", "REVIEWED"}
	HotspotResolutions = []string{"FIXED", "SAFE", "ACKNOWLEDGED"}
)
