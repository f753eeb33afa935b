package tools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/sonarqube-mcp/internal/output"
	"github.com/HendryAvila/sonarqube-mcp/internal/sonarqube"
	"github.com/HendryAvila/sonarqube-mcp/internal/validate"
)

var argValidator = validate.New("json")

// pagination is embedded by every argument struct that pages.
type pagination struct {
	Page     int `json:"page" validate:"min=1"`
	PageSize int `json:"pageSize" validate:"min=1,max=500"`
}

func defaultPagination() pagination {
	return pagination{Page: sonarqube.DefaultPage, PageSize: sonarqube.DefaultPageSize}
}

// paginationOptions declares the page and pageSize parameters.
func paginationOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("page",
			mcp.Description("Page number"),
			mcp.Min(1),
			mcp.DefaultNumber(sonarqube.DefaultPage),
		),
		mcp.WithNumber("pageSize",
			mcp.Description("Items per page"),
			mcp.Min(1),
			mcp.Max(sonarqube.MaxPageSize),
			mcp.DefaultNumber(sonarqube.DefaultPageSize),
		),
	}
}

// projectKeyOption declares the required projectKey parameter.
func projectKeyOption() mcp.ToolOption {
	return mcp.WithString("projectKey",
		mcp.Required(),
		mcp.Description("Project key (e.g., 'my-project-key')"),
	)
}

// bindArgs decodes the request arguments into dst and validates it.
// dst should be pre-filled with defaults; absent arguments keep them.
func bindArgs(req mcp.CallToolRequest, dst any) error {
	if err := req.BindArguments(dst); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if err := argValidator.Struct(dst); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// result renders a payload as a text result.
func result(data any, format output.Format) (*mcp.CallToolResult, error) {
	text, err := output.Encode(data, format)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(text), nil
}

// errorResult wraps any failure as an error-flagged result whose text
// reads "Error: <message>".
func errorResult(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError("Error: " + err.Error()), nil
}
