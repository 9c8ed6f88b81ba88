package commands

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/depscan/depscan/internal/config"
	"github.com/depscan/depscan/pkg/modfacts"
)

// NewStatsCommand creates the stats subcommand.
func NewStatsCommand() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "stats [entry files...]",
		Short: "Summarize the dependency graph as a table",
		Long: `Build the dependency graph and print a per-file summary table:
import count, export count, and the default export name.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			project, err := buildProject(cobraCmd.Context(), cfg, args, newLogger(verbose))
			if err != nil {
				return err
			}

			renderStatsTable(project)

			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	return cmd
}

func renderStatsTable(project *modfacts.Project) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(os.Stdout)
	tbl.SetStyle(table.StyleLight)

	tbl.AppendHeader(table.Row{"File", "Imports", "Exports", "Default"})

	var totalImports, totalExports int64

	for _, file := range project.Files {
		defaultName := ""
		if file.DefaultExport != nil {
			defaultName = *file.DefaultExport
		}

		tbl.AppendRow(table.Row{
			file.Path,
			len(file.Imports),
			len(file.Exports),
			defaultName,
		})

		totalImports += int64(len(file.Imports))
		totalExports += int64(len(file.Exports))
	}

	tbl.AppendFooter(table.Row{
		fmt.Sprintf("%s files", humanize.Comma(int64(project.Len()))),
		humanize.Comma(totalImports),
		humanize.Comma(totalExports),
		"",
	})

	tbl.Render()
}
