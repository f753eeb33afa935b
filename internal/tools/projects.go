package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/sonarqube-mcp/internal/output"
	"github.com/HendryAvila/sonarqube-mcp/internal/sonarqube"
)

// --- get-projects ---

// ProjectsTool handles the get-projects MCP tool.
type ProjectsTool struct {
	client SonarQube
	format output.Format
}

// NewProjectsTool creates a ProjectsTool.
func NewProjectsTool(client SonarQube, format output.Format) *ProjectsTool {
	return &ProjectsTool{client: client, format: format}
}

type projectsArgs struct {
	pagination
	Query string `json:"query,omitempty"`
}

// Definition returns the MCP tool definition for registration.
func (t *ProjectsTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(
			"List all available projects in SonarQube. " +
				"Use 'query' parameter to search by Git repository name " +
				"(e.g., 'my-repo' will find 'org_my-repo').",
		),
	}
	opts = append(opts, paginationOptions()...)
	opts = append(opts, mcp.WithString("query",
		mcp.Description(
			"Search projects by name. Use Git repository name (e.g., 'my-repo') to find projectKey automatically. "+
				"SonarQube usually uses format 'organization_repo-name'.",
		),
	))
	return mcp.NewTool("get-projects", opts...)
}

// Handle processes the get-projects tool call.
func (t *ProjectsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := projectsArgs{pagination: defaultPagination()}
	if err := bindArgs(req, &args); err != nil {
		return errorResult(err)
	}

	data, err := t.client.ListProjects(ctx, sonarqube.ListProjectsOptions{
		Query:    args.Query,
		Page:     args.Page,
		PageSize: args.PageSize,
	})
	if err != nil {
		return errorResult(err)
	}
	return result(data, t.format)
}

// --- get-project-details ---

// ProjectDetailsTool handles the get-project-details MCP tool.
type ProjectDetailsTool struct {
	client SonarQube
	format output.Format
}

// NewProjectDetailsTool creates a ProjectDetailsTool.
func NewProjectDetailsTool(client SonarQube, format output.Format) *ProjectDetailsTool {
	return &ProjectDetailsTool{client: client, format: format}
}

type projectKeyArgs struct {
	ProjectKey string `json:"projectKey" validate:"required"`
}

// Definition returns the MCP tool definition for registration.
func (t *ProjectDetailsTool) Definition() mcp.Tool {
	return mcp.NewTool("get-project-details",
		mcp.WithDescription("Get details of a specific SonarQube project"),
		projectKeyOption(),
	)
}

// Handle processes the get-project-details tool call.
func (t *ProjectDetailsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args projectKeyArgs
	if err := bindArgs(req, &args); err != nil {
		return errorResult(err)
	}

	data, err := t.client.GetProject(ctx, args.ProjectKey)
	if err != nil {
		return errorResult(err)
	}
	return result(data, t.format)
}

// --- get-project-branches ---

// BranchesTool handles the get-project-branches MCP tool.
type BranchesTool struct {
	client SonarQube
	format output.Format
}

// NewBranchesTool creates a BranchesTool.
func NewBranchesTool(client SonarQube, format output.Format) *BranchesTool {
	return &BranchesTool{client: client, format: format}
}

// Definition returns the MCP tool definition for registration.
func (t *BranchesTool) Definition() mcp.Tool {
	return mcp.NewTool("get-project-branches",
		mcp.WithDescription(
			"List all analyzed branches of a project, "+
				"with information about the last analysis of each one.",
		),
		projectKeyOption(),
	)
}

// Handle processes the get-project-branches tool call.
func (t *BranchesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args projectKeyArgs
	if err := bindArgs(req, &args); err != nil {
		return errorResult(err)
	}

	data, err := t.client.ListBranches(ctx, args.ProjectKey)
	if err != nil {
		return errorResult(err)
	}
	return result(data, t.format)
}

// --- get-project-analyses ---

// AnalysesTool handles the get-project-analyses MCP tool.
type AnalysesTool struct {
	client SonarQube
	format output.Format
}

// NewAnalysesTool creates an AnalysesTool.
func NewAnalysesTool(client SonarQube, format output.Format) *AnalysesTool {
	return &AnalysesTool{client: client, format: format}
}

type analysesArgs struct {
	pagination
	ProjectKey string `json:"projectKey" validate:"required"`
}

// Definition returns the MCP tool definition for registration.
func (t *AnalysesTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Get project analysis history in SonarQube"),
		projectKeyOption(),
	}
	opts = append(opts, paginationOptions()...)
	return mcp.NewTool("get-project-analyses", opts...)
}

// Handle processes the get-project-analyses tool call.
func (t *AnalysesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := analysesArgs{pagination: defaultPagination()}
	if err := bindArgs(req, &args); err != nil {
		return errorResult(err)
	}

	data, err := t.client.ListAnalyses(ctx, args.ProjectKey, args.Page, args.PageSize)
	if err != nil {
		return errorResult(err)
	}
	return result(data, t.format)
}
