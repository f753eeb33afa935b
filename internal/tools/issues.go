package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/sonarqube-mcp/internal/output"
	"github.com/HendryAvila/sonarqube-mcp/internal/sonarqube"
)

// IssuesTool handles the get-issues MCP tool.
type IssuesTool struct {
	client SonarQube
	format output.Format
}

// NewIssuesTool creates an IssuesTool.
func NewIssuesTool(client SonarQube, format output.Format) *IssuesTool {
	return &IssuesTool{client: client, format: format}
}

type issuesArgs struct {
	pagination
	ProjectKey    string   `json:"projectKey" validate:"required"`
	Severities    []string `json:"severities,omitempty" validate:"dive,oneof=BLOCKER CRITICAL MAJOR MINOR INFO"`
	Types         []string `json:"types,omitempty" validate:"dive,oneof=BUG VULNERABILITY CODE_SMELL SECURITY_HOTSPOT"`
	Statuses      []string `json:"statuses,omitempty" validate:"dive,oneof=OPEN CONFIRMED REOPENED RESOLVED CLOSED TO_REVIEW IN_REVIEW REVIEWED"`
	IssueStatuses []string `json:"issueStatuses,omitempty" validate:"dive,oneof=OPEN CONFIRMED FALSE_POSITIVE ACCEPTED FIXED"`
	Branch        string   `json:"branch,omitempty"`
	CreatedAfter  string   `json:"createdAfter,omitempty"`
	CreatedBefore string   `json:"createdBefore,omitempty"`
	Assignees     []string `json:"assignees,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

// Definition returns the MCP tool definition for registration.
func (t *IssuesTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(
			"Get issues of a SonarQube project with optional filters. " +
				"Supports filtering by severity, type, status, branch, creation date, assignee and tag.",
		),
		projectKeyOption(),
		mcp.WithArray("severities",
			mcp.Description("Filter by severities"),
			mcp.WithStringEnumItems(Severities),
		),
		mcp.WithArray("types",
			mcp.Description("Filter by issue types"),
			mcp.WithStringEnumItems(IssueTypes),
		),
		mcp.WithArray("statuses",
			mcp.Description("Filter by legacy statuses"),
			mcp.WithStringEnumItems(LegacyStatus),
		),
		mcp.WithArray("issueStatuses",
			mcp.Description("Filter by issue statuses (newer SonarQube versions)"),
			mcp.WithStringEnumItems(IssueStatuses),
		),
		mcp.WithString("branch",
			mcp.Description("Branch name to analyze"),
		),
		mcp.WithString("createdAfter",
			mcp.Description("Only issues created after this date (YYYY-MM-DD)"),
		),
		mcp.WithString("createdBefore",
			mcp.Description("Only issues created before this date (YYYY-MM-DD)"),
		),
		mcp.WithArray("assignees",
			mcp.Description("Filter by assignee logins"),
			mcp.WithStringItems(),
		),
		mcp.WithArray("tags",
			mcp.Description("Filter by tags"),
			mcp.WithStringItems(),
		),
	}
	opts = append(opts, paginationOptions()...)
	return mcp.NewTool("get-issues", opts...)
}

// Handle processes the get-issues tool call.
func (t *IssuesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := issuesArgs{pagination: defaultPagination()}
	if err := bindArgs(req, &args); err != nil {
		return errorResult(err)
	}

	data, err := t.client.SearchIssues(ctx, args.ProjectKey, sonarqube.IssueSearchOptions{
		Severities:    args.Severities,
		Types:         args.Types,
		Statuses:      args.Statuses,
		IssueStatuses: args.IssueStatuses,
		Branch:        args.Branch,
		CreatedAfter:  args.CreatedAfter,
		CreatedBefore: args.CreatedBefore,
		Assignees:     args.Assignees,
		Tags:          args.Tags,
		Page:          args.Page,
		PageSize:      args.PageSize,
	})
	if err != nil {
		return errorResult(err)
	}
	return result(data, t.format)
}
