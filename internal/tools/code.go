package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/sonarqube-mcp/internal/output"
)

type fileKeyArgs struct {
	FileKey string `json:"fileKey" validate:"required"`
}

func fileKeyOption() mcp.ToolOption {
	return mcp.WithString("fileKey",
		mcp.Required(),
		mcp.Description("File key, usually 'projectKey:path/to/file' (e.g., 'my-project:src/index.ts')"),
	)
}

// --- get-source-code ---

// SourceCodeTool handles the get-source-code MCP tool.
type SourceCodeTool struct {
	client SonarQube
	format output.Format
}

// NewSourceCodeTool creates a SourceCodeTool.
func NewSourceCodeTool(client SonarQube, format output.Format) *SourceCodeTool {
	return &SourceCodeTool{client: client, format: format}
}

type sourceCodeArgs struct {
	FileKey string `json:"fileKey" validate:"required"`
	From    int    `json:"from,omitempty" validate:"omitempty,min=1"`
	To      int    `json:"to,omitempty" validate:"omitempty,min=1,gtefield=From"`
}

// Definition returns the MCP tool definition for registration.
func (t *SourceCodeTool) Definition() mcp.Tool {
	return mcp.NewTool("get-source-code",
		mcp.WithDescription(
			"Get the source code of a file with its line-by-line annotations. "+
				"Use 'from' and 'to' to restrict the line range.",
		),
		fileKeyOption(),
		mcp.WithNumber("from",
			mcp.Description("First line to return (1-based)"),
			mcp.Min(1),
		),
		mcp.WithNumber("to",
			mcp.Description("Last line to return (inclusive)"),
			mcp.Min(1),
		),
	)
}

// Handle processes the get-source-code tool call.
func (t *SourceCodeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args sourceCodeArgs
	if err := bindArgs(req, &args); err != nil {
		return errorResult(err)
	}

	data, err := t.client.GetSource(ctx, args.FileKey, args.From, args.To)
	if err != nil {
		return errorResult(err)
	}
	return result(data, t.format)
}

// --- get-duplications ---

// DuplicationsTool handles the get-duplications MCP tool.
type DuplicationsTool struct {
	client SonarQube
	format output.Format
}

// NewDuplicationsTool creates a DuplicationsTool.
func NewDuplicationsTool(client SonarQube, format output.Format) *DuplicationsTool {
	return &DuplicationsTool{client: client, format: format}
}

// Definition returns the MCP tool definition for registration.
func (t *DuplicationsTool) Definition() mcp.Tool {
	return mcp.NewTool("get-duplications",
		mcp.WithDescription("Get duplicated code blocks of a file and where they are duplicated"),
		fileKeyOption(),
	)
}

// Handle processes the get-duplications tool call.
func (t *DuplicationsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args fileKeyArgs
	if err := bindArgs(req, &args); err != nil {
		return errorResult(err)
	}

	data, err := t.client.GetDuplications(ctx, args.FileKey)
	if err != nil {
		return errorResult(err)
	}
	return result(data, t.format)
}

// --- get-rule-details ---

// RuleDetailsTool handles the get-rule-details MCP tool.
type RuleDetailsTool struct {
	client SonarQube
	format output.Format
}

// NewRuleDetailsTool creates a RuleDetailsTool.
func NewRuleDetailsTool(client SonarQube, format output.Format) *RuleDetailsTool {
	return &RuleDetailsTool{client: client, format: format}
}

type ruleDetailsArgs struct {
	RuleKey string `json:"ruleKey" validate:"required,contains=:"`
}

// Definition returns the MCP tool definition for registration.
func (t *RuleDetailsTool) Definition() mcp.Tool {
	return mcp.NewTool("get-rule-details",
		mcp.WithDescription(
			"Get the description of a rule, including why it matters and how to fix it.",
		),
		mcp.WithString("ruleKey",
			mcp.Required(),
			mcp.Description("Rule key in 'repository:rule' form (e.g., 'typescript:S1234')"),
		),
	)
}

// Handle processes the get-rule-details tool call.
func (t *RuleDetailsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args ruleDetailsArgs
	if err := bindArgs(req, &args); err != nil {
		return errorResult(err)
	}

	data, err := t.client.GetRule(ctx, args.RuleKey)
	if err != nil {
		return errorResult(err)
	}
	return result(data, t.format)
}
