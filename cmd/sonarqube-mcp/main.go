// sonarqube-mcp: SonarQube / SonarCloud MCP Server
//
// A read-only MCP server that exposes the SonarQube Web API to AI coding
// tools (Claude Code, Cursor, VS Code Copilot, ...) over stdio.
//
// Usage:
//
//	sonarqube-mcp          # Start MCP server (stdio transport)
//	sonarqube-mcp serve    # Same as above
//	sonarqube-mcp version  # Print the version
//
// Configuration comes from SONARQUBE_* environment variables, an optional
// YAML file (--config) and flags. SONARQUBE_TOKEN is mandatory.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
