// Package main provides the entry point for the depscan CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/depscan/depscan/cmd/depscan/commands"
	"github.com/depscan/depscan/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "depscan",
		Short: "depscan - JavaScript/TypeScript module dependency graphs",
		Long: `depscan parses JavaScript and TypeScript sources, extracts their static
import/export declarations, and follows imports to build a project-wide
module dependency graph.

Commands:
  analyze   Build the dependency graph and print it to stdout`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewAnalyzeCommand())
	rootCmd.AddCommand(commands.NewStatsCommand())
	rootCmd.AddCommand(commands.NewRenderCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewMCPCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintln(os.Stdout, version.String())
		},
	}
}
