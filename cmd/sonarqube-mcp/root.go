package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/HendryAvila/sonarqube-mcp/internal/config"
	"github.com/HendryAvila/sonarqube-mcp/internal/logging"
	"github.com/HendryAvila/sonarqube-mcp/internal/output"
	sqserver "github.com/HendryAvila/sonarqube-mcp/internal/server"
)

// newRootCmd builds the command tree. Running the root command without a
// subcommand serves, so existing MCP host configs need no arguments.
func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "sonarqube-mcp",
		Short: "SonarQube MCP server (stdio transport)",
		Long: `sonarqube-mcp exposes SonarQube / SonarCloud projects, issues, metrics,
quality gates, security hotspots and source code to MCP clients.

Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "sonarqube": {
        "command": "sonarqube-mcp",
        "env": {
          "SONARQUBE_URL": "https://sonarcloud.io",
          "SONARQUBE_TOKEN": "<your token>"
        }
      }
    }
  }`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), configPath, cmd.Flags())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to a YAML config file")
	flags.String("url", "", "SonarQube URL (default https://sonarcloud.io)")
	flags.String("log-level", "info", "log level: "+strings.Join(logging.Levels, ", "))
	flags.String("output-format", string(output.FormatJSON), "tool output format: "+strings.Join(output.Formats(), ", "))
	flags.Duration("timeout", 0, "per-request timeout, e.g. 30s (0 disables)")

	root.AddCommand(newServeCmd(&configPath), newVersionCmd())
	return root
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), *configPath, cmd.Flags())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n", sqserver.Name, sqserver.Version)
		},
	}
}

// serve loads the configuration, builds the server and blocks until stdin
// closes or the process is interrupted. Logs go to stderr.
func serve(ctx context.Context, configPath string, flags *pflag.FlagSet) error {
	cfg, err := config.Load(configPath, flags)
	if err != nil {
		return err
	}

	logger := logging.New(sqserver.Name, cfg.LogLevel, os.Stderr)
	if cfg.URLDefaulted {
		logger.Warn("SONARQUBE_URL not set, using default", "url", cfg.URL)
	}

	s, err := sqserver.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(logger.Named("stdio").StandardLogger(&hclog.StandardLoggerOptions{
		InferLevels: true,
	}))

	logger.Info("listening on stdio")
	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		return fmt.Errorf("serving stdio: %w", err)
	}
	logger.Info("shutting down")
	return nil
}
