// Package commands implements the depscan CLI subcommands.
package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/depscan/depscan/internal/config"
	"github.com/depscan/depscan/pkg/analyzer"
	"github.com/depscan/depscan/pkg/graph"
	"github.com/depscan/depscan/pkg/modfacts"
)

// jsonIndent is the indentation used for pretty JSON output.
const jsonIndent = "  "

// ErrNoEntries is returned when neither arguments nor configuration name
// any entry file.
var ErrNoEntries = errors.New("no entry files (pass paths as arguments or set entries in config)")

// NewAnalyzeCommand creates the analyze subcommand.
func NewAnalyzeCommand() *cobra.Command {
	var (
		configPath string
		format     string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [entry files...]",
		Short: "Build the module dependency graph and print it to stdout",
		Long: `Parse the given entry files, follow their static imports, and print
the resulting dependency graph.

Import sources are treated as literal paths relative to the working
directory; sources that do not name an existing file (bare package
names, unresolved aliases) produce a notice on stderr and are skipped.

Examples:
  depscan analyze src/index.ts
  depscan analyze --format yaml src/a.ts src/b.ts`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			if format != "" {
				cfg.Output.Format = format

				if validateErr := cfg.Validate(); validateErr != nil {
					return validateErr
				}
			}

			project, err := buildProject(cobraCmd.Context(), cfg, args, newLogger(verbose))
			if err != nil {
				return err
			}

			return writeProject(os.Stdout, project, cfg.Output)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: json or yaml (overrides config)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	return cmd
}

// buildProject resolves entries, builds the graph, and returns the project.
// Explicit arguments take precedence over configured entries.
func buildProject(
	ctx context.Context,
	cfg *config.Config,
	args []string,
	logger *slog.Logger,
) (*modfacts.Project, error) {
	entries := args
	if len(entries) == 0 {
		entries = cfg.Entries
	}

	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	builder := graph.NewBuilder(nil, analyzer.New(), logger, graph.Options{
		SkipUnknownDialects: cfg.Analyzer.SkipUnknown,
		MaxFileSize:         cfg.Analyzer.MaxFileSize,
	})

	return builder.Build(ctx, entries)
}

// writeProject serializes the project in the configured format.
func writeProject(w io.Writer, project *modfacts.Project, out config.OutputConfig) error {
	switch out.Format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)

		encodeErr := enc.Encode(project)
		if encodeErr != nil {
			return fmt.Errorf("encode yaml: %w", encodeErr)
		}

		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		if out.Pretty {
			enc.SetIndent("", jsonIndent)
		}

		encodeErr := enc.Encode(project)
		if encodeErr != nil {
			return fmt.Errorf("encode json: %w", encodeErr)
		}

		return nil
	}
}

// newLogger builds the stderr logger used by the traversal. Notices are
// informational; verbose lowers the level to include them.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
