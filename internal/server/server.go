// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it builds the SonarQube client and injects
// it into the tools, then registers tools, prompts and resources.
// No business logic lives here, only wiring.
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/HendryAvila/sonarqube-mcp/internal/config"
	"github.com/HendryAvila/sonarqube-mcp/internal/output"
	"github.com/HendryAvila/sonarqube-mcp/internal/prompts"
	"github.com/HendryAvila/sonarqube-mcp/internal/resources"
	"github.com/HendryAvila/sonarqube-mcp/internal/sonarqube"
	"github.com/HendryAvila/sonarqube-mcp/internal/tools"
)

// Name is the server name announced during the MCP handshake.
const Name = "sonarqube-mcp"

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered. A nil logger discards output.
func New(cfg *config.Config, logger hclog.Logger) (*server.MCPServer, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	format, err := output.ParseFormat(cfg.OutputFormat)
	if err != nil {
		return nil, err
	}

	client, err := sonarqube.NewClient(cfg.SonarQube(), logger.Named("sonarqube"))
	if err != nil {
		return nil, err
	}

	s := server.NewMCPServer(
		Name,
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
		server.WithToolHandlerMiddleware(logToolCalls(logger.Named("tools"))),
	)

	// --- Tools ---

	toolList := tools.All(client, format)
	toolNames := make([]string, 0, len(toolList))
	for _, t := range toolList {
		def := t.Definition()
		s.AddTool(def, t.Handle)
		toolNames = append(toolNames, def.Name)
	}

	// --- Prompts ---

	promptList := prompts.All()
	promptNames := make([]string, 0, len(promptList))
	for _, p := range promptList {
		def := p.Definition()
		s.AddPrompt(def, p.Handle)
		promptNames = append(promptNames, def.Name)
	}

	// --- Resources ---

	resourceHandler := resources.NewHandler(resources.ServerInfo{
		Name:         Name,
		Version:      Version,
		BaseURL:      client.BaseURL(),
		ReadOnly:     true,
		OutputFormat: string(format),
		Tools:        toolNames,
		Prompts:      promptNames,
	})
	s.AddResource(resourceHandler.InfoResource(), resourceHandler.HandleInfo)

	logger.Info("server ready",
		"url", client.BaseURL(),
		"version", Version,
		"output_format", format,
		"tools", len(toolNames),
		"prompts", len(promptNames),
	)
	logger.Debug("registered", "tools", toolNames, "prompts", promptNames)

	return s, nil
}

// logToolCalls records every tool call with its duration and outcome.
// Arguments are not logged.
func logToolCalls(logger hclog.Logger) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := time.Now()
			result, err := next(ctx, req)

			fields := []interface{}{"tool", req.Params.Name, "duration", time.Since(start)}
			switch {
			case err != nil:
				logger.Error("tool call failed", append(fields, "error", err)...)
			case result != nil && result.IsError:
				logger.Warn("tool call returned an error", append(fields, "message", resultText(result))...)
			default:
				logger.Debug("tool call", fields...)
			}
			return result, err
		}
	}
}

func resultText(result *mcp.CallToolResult) string {
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

// serverInstructions returns the instructions sent to the host on
// initialization.
func serverInstructions() string {
	return fmt.Sprintf(`You have access to SonarQube through %s, a read-only MCP server.

## FINDING THE PROJECT KEY

Every project-scoped tool needs a projectKey. When the user names a Git
repository instead of a key, call get-projects with query=<repository name>
first. SonarQube keys usually look like "organization_repo-name".

## TOOLS

- Projects: get-projects, get-project-details, get-project-branches, get-project-analyses
- Quality: get-metrics, get-quality-gate-status
- Issues: get-issues (filter by severity, type, status, branch, dates, assignee, tag)
- Security: get-hotspots, get-hotspot-details
- Code: get-source-code, get-duplications, get-rule-details

Results are paginated (page starts at 1, pageSize at most %d).
Nothing is modified on the SonarQube side.`, Name, sonarqube.MaxPageSize)
}
