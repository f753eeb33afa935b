// Package resources implements MCP resource handlers.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (sonarqube://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// InfoURI addresses the server info resource.
const InfoURI = "sonarqube://server/info"

// ServerInfo describes the running server. It never carries the token.
type ServerInfo struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	BaseURL      string   `json:"baseUrl"`
	ReadOnly     bool     `json:"readOnly"`
	OutputFormat string   `json:"outputFormat"`
	Tools        []string `json:"tools"`
	Prompts      []string `json:"prompts"`
}

// Handler serves the server info resource.
type Handler struct {
	info ServerInfo
}

// NewHandler creates a resource Handler for a fixed ServerInfo.
func NewHandler(info ServerInfo) *Handler {
	return &Handler{info: info}
}

// InfoResource returns the MCP resource definition for server info.
func (h *Handler) InfoResource() mcp.Resource {
	return mcp.NewResource(
		InfoURI,
		"SonarQube MCP Server Info",
		mcp.WithResourceDescription("Connected SonarQube instance, server version and the available tools and prompts"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleInfo returns the server info as JSON.
func (h *Handler) HandleInfo(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(h.info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling server info: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
