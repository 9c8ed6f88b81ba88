package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"github.com/depscan/depscan/internal/config"
	"github.com/depscan/depscan/pkg/modfacts"
)

const (
	renderOutputFlag  = "output"
	renderOutputShort = "o"
	renderOutputUsage = "output HTML file"
	renderChartTitle  = "Module dependency graph"
	renderChartWidth  = "100%"
	renderChartHeight = "800px"
	renderNodeSize    = 20
	renderRepulsion   = 800
	renderFilePerm    = 0o644
)

// ErrNoOutputFile is returned when the --output flag is not set.
var ErrNoOutputFile = errors.New("output file is required (use --output)")

// NewRenderCommand creates the render subcommand.
func NewRenderCommand() *cobra.Command {
	var (
		configPath string
		outputFile string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "render [entry files...]",
		Short:         "Render the dependency graph as an interactive HTML chart",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			if outputFile == "" {
				return ErrNoOutputFile
			}

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			project, err := buildProject(cobraCmd.Context(), cfg, args, newLogger(verbose))
			if err != nil {
				return err
			}

			return renderGraphChart(project, outputFile)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	cmd.Flags().StringVarP(&outputFile, renderOutputFlag, renderOutputShort, "", renderOutputUsage)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	return cmd
}

// renderGraphChart writes a force-layout graph of the project to path.
// Only edges between files present in the project are drawn; unresolved
// import sources have no node to link to.
func renderGraphChart(project *modfacts.Project, path string) error {
	chart := charts.NewGraph()
	chart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: renderChartTitle}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  renderChartWidth,
			Height: renderChartHeight,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	nodes := make([]opts.GraphNode, 0, project.Len())
	for _, file := range project.Files {
		nodes = append(nodes, opts.GraphNode{
			Name:       file.Path,
			SymbolSize: renderNodeSize,
		})
	}

	var links []opts.GraphLink

	for _, file := range project.Files {
		for _, source := range file.ImportSources() {
			if !project.Contains(source) {
				continue
			}

			links = append(links, opts.GraphLink{Source: file.Path, Target: source})
		}
	}

	chart.AddSeries("modules", nodes, links,
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout:             "force",
			Roam:               opts.Bool(true),
			Force:              &opts.GraphForce{Repulsion: renderRepulsion},
			EdgeSymbol:         []string{"none", "arrow"},
			FocusNodeAdjacency: opts.Bool(true),
		}),
	)

	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, renderFilePerm)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer out.Close()

	renderErr := chart.Render(out)
	if renderErr != nil {
		return fmt.Errorf("render chart: %w", renderErr)
	}

	return nil
}
