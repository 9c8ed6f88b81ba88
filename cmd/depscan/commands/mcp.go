package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/depscan/depscan/internal/config"
	"github.com/depscan/depscan/internal/mcp"
	"github.com/depscan/depscan/pkg/graph"
)

// NewMCPCommand creates the MCP server command.
func NewMCPCommand() *cobra.Command {
	var (
		configPath string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for AI agent integration",
		Long: `Start a Model Context Protocol (MCP) server on stdio transport.

The MCP server exposes depscan capabilities as tools that AI agents can
discover and invoke:
  - depscan_analyze: Extract imports/exports from one source snippet
  - depscan_graph:   Build the dependency graph from entry files`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}

			// stdout carries the protocol; logs go to stderr as JSON.
			logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			srv := mcp.NewServer(mcp.ServerDeps{
				Logger: logger,
				GraphOptions: graph.Options{
					SkipUnknownDialects: cfg.Analyzer.SkipUnknown,
					MaxFileSize:         cfg.Analyzer.MaxFileSize,
				},
			})

			return srv.Run(cobraCmd.Context())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging to stderr")

	return cmd
}
