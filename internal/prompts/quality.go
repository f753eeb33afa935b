package prompts

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
)

// --- analyze-project-quality ---

// AnalyzeQualityPrompt handles the analyze-project-quality MCP prompt.
// It walks the AI through a full health check of one project.
type AnalyzeQualityPrompt struct {
	tmpl *promptTemplate
}

// NewAnalyzeQualityPrompt creates an AnalyzeQualityPrompt.
func NewAnalyzeQualityPrompt() *AnalyzeQualityPrompt {
	return &AnalyzeQualityPrompt{tmpl: mustLoad("analyze-project-quality")}
}

// Definition returns the MCP prompt definition for registration.
func (p *AnalyzeQualityPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("analyze-project-quality",
		mcp.WithPromptDescription(p.tmpl.Description),
		mcp.WithArgument("projectKey",
			mcp.ArgumentDescription(
				"Project key to analyze. If you don't know it, use the Git repository name "+
					"(e.g., 'my-repo') and it will be searched automatically.",
			),
			mcp.RequiredArgument(),
		),
	)
}

// Handle processes the analyze-project-quality prompt request.
func (p *AnalyzeQualityPrompt) Handle(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	projectKey, err := projectKeyArg(req)
	if err != nil {
		return nil, err
	}
	return p.tmpl.render(projectKey, struct{ ProjectKey string }{projectKey})
}

// --- generate-quality-report ---

// QualityReportPrompt handles the generate-quality-report MCP prompt.
type QualityReportPrompt struct {
	tmpl *promptTemplate
}

// NewQualityReportPrompt creates a QualityReportPrompt.
func NewQualityReportPrompt() *QualityReportPrompt {
	return &QualityReportPrompt{tmpl: mustLoad("generate-quality-report")}
}

// Definition returns the MCP prompt definition for registration.
func (p *QualityReportPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("generate-quality-report",
		mcp.WithPromptDescription(p.tmpl.Description),
		mcp.WithArgument("projectKey",
			mcp.ArgumentDescription("Project key"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("includeIssues",
			mcp.ArgumentDescription("Include the issues list in the report: 'true' or 'false'. Default: true"),
		),
	)
}

// Handle processes the generate-quality-report prompt request.
func (p *QualityReportPrompt) Handle(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	projectKey, err := projectKeyArg(req)
	if err != nil {
		return nil, err
	}

	includeIssues := true
	if v, ok := optionalArg(req, "includeIssues"); ok {
		includeIssues, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("argument 'includeIssues' must be true or false, got %q", v)
		}
	}

	return p.tmpl.render(projectKey, struct {
		ProjectKey    string
		IncludeIssues bool
	}{projectKey, includeIssues})
}

// --- prioritize-issues ---

// DefaultMaxIssues is used when prioritize-issues gets no maxIssues.
const DefaultMaxIssues = 20

// PrioritizeIssuesPrompt handles the prioritize-issues MCP prompt.
type PrioritizeIssuesPrompt struct {
	tmpl *promptTemplate
}

// NewPrioritizeIssuesPrompt creates a PrioritizeIssuesPrompt.
func NewPrioritizeIssuesPrompt() *PrioritizeIssuesPrompt {
	return &PrioritizeIssuesPrompt{tmpl: mustLoad("prioritize-issues")}
}

// Definition returns the MCP prompt definition for registration.
func (p *PrioritizeIssuesPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("prioritize-issues",
		mcp.WithPromptDescription(p.tmpl.Description),
		mcp.WithArgument("projectKey",
			mcp.ArgumentDescription("Project key"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("maxIssues",
			mcp.ArgumentDescription(fmt.Sprintf("Maximum number of issues to prioritize. Default: %d", DefaultMaxIssues)),
		),
	)
}

// Handle processes the prioritize-issues prompt request.
func (p *PrioritizeIssuesPrompt) Handle(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	projectKey, err := projectKeyArg(req)
	if err != nil {
		return nil, err
	}

	maxIssues := DefaultMaxIssues
	if v, ok := optionalArg(req, "maxIssues"); ok {
		maxIssues, err = strconv.Atoi(v)
		if err != nil || maxIssues < 1 {
			return nil, fmt.Errorf("argument 'maxIssues' must be a positive integer, got %q", v)
		}
	}

	return p.tmpl.render(projectKey, struct {
		ProjectKey string
		MaxIssues  int
	}{projectKey, maxIssues})
}
