package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/sonarqube-mcp/internal/output"
	"github.com/HendryAvila/sonarqube-mcp/internal/sonarqube"
)

// --- get-hotspots ---

// HotspotsTool handles the get-hotspots MCP tool.
type HotspotsTool struct {
	client SonarQube
	format output.Format
}

// NewHotspotsTool creates a HotspotsTool.
func NewHotspotsTool(client SonarQube, format output.Format) *HotspotsTool {
	return &HotspotsTool{client: client, format: format}
}

type hotspotsArgs struct {
	pagination
	ProjectKey      string   `json:"projectKey" validate:"required"`
	Branch          string   `json:"branch,omitempty"`
	Status          string   `json:"status,omitempty" validate:"omitempty,oneof=TO_REVIEW REVIEWED"`
	Resolution      string   `json:"resolution,omitempty" validate:"omitempty,oneof=FIXED SAFE ACKNOWLEDGED"`
	InNewCodePeriod bool     `json:"inNewCodePeriod,omitempty"`
	OnlyMine        bool     `json:"onlyMine,omitempty"`
	Files           []string `json:"files,omitempty"`
}

// Definition returns the MCP tool definition for registration.
func (t *HotspotsTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(
			"Search Security Hotspots of a SonarQube project. " +
				"Hotspots are security-sensitive code that needs manual review.",
		),
		projectKeyOption(),
		mcp.WithString("branch",
			mcp.Description("Branch name"),
		),
		mcp.WithString("status",
			mcp.Description("Review status of the hotspot"),
			mcp.Enum(HotspotStatuses...),
		),
		mcp.WithString("resolution",
			mcp.Description("Resolution of a reviewed hotspot"),
			mcp.Enum(HotspotResolutions...),
		),
		mcp.WithBoolean("inNewCodePeriod",
			mcp.Description("Only hotspots in the new code period"),
		),
		mcp.WithBoolean("onlyMine",
			mcp.Description("Only hotspots assigned to the token owner"),
		),
		mcp.WithArray("files",
			mcp.Description("Restrict to these file paths"),
			mcp.WithStringItems(),
		),
	}
	opts = append(opts, paginationOptions()...)
	return mcp.NewTool("get-hotspots", opts...)
}

// Handle processes the get-hotspots tool call.
func (t *HotspotsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := hotspotsArgs{pagination: defaultPagination()}
	if err := bindArgs(req, &args); err != nil {
		return errorResult(err)
	}

	data, err := t.client.SearchHotspots(ctx, args.ProjectKey, sonarqube.HotspotSearchOptions{
		Branch:          args.Branch,
		Status:          args.Status,
		Resolution:      args.Resolution,
		InNewCodePeriod: args.InNewCodePeriod,
		OnlyMine:        args.OnlyMine,
		Files:           args.Files,
		Page:            args.Page,
		PageSize:        args.PageSize,
	})
	if err != nil {
		return errorResult(err)
	}
	return result(data, t.format)
}

// --- get-hotspot-details ---

// HotspotDetailsTool handles the get-hotspot-details MCP tool.
type HotspotDetailsTool struct {
	client SonarQube
	format output.Format
}

// NewHotspotDetailsTool creates a HotspotDetailsTool.
func NewHotspotDetailsTool(client SonarQube, format output.Format) *HotspotDetailsTool {
	return &HotspotDetailsTool{client: client, format: format}
}

type hotspotDetailsArgs struct {
	HotspotKey string `json:"hotspotKey" validate:"required"`
}

// Definition returns the MCP tool definition for registration.
func (t *HotspotDetailsTool) Definition() mcp.Tool {
	return mcp.NewTool("get-hotspot-details",
		mcp.WithDescription("Get full details of a Security Hotspot, including the rule and the flagged code"),
		mcp.WithString("hotspotKey",
			mcp.Required(),
			mcp.Description("Key of the hotspot"),
		),
	)
}

// Handle processes the get-hotspot-details tool call.
func (t *HotspotDetailsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args hotspotDetailsArgs
	if err := bindArgs(req, &args); err != nil {
		return errorResult(err)
	}

	data, err := t.client.GetHotspot(ctx, args.HotspotKey)
	if err != nil {
		return errorResult(err)
	}
	return result(data, t.format)
}
