package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/depscan/depscan/pkg/modfacts"
)

// exitCodeValidationFailure is the exit code for validation failures.
const exitCodeValidationFailure = 2

// stdinPath selects stdin as the validation input.
const stdinPath = "-"

// NewValidateCommand creates the validate subcommand.
func NewValidateCommand() *cobra.Command {
	var colorize, nocolor bool

	cmd := &cobra.Command{
		Use:   "validate <file.json|->",
		Short: "Validate a graph document against the depscan JSON schema",
		Long: `Validate a previously produced dependency graph document against the
canonical schema.

Examples:
  depscan validate graph.json
  depscan analyze src/index.ts | depscan validate -`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if nocolor {
				color.NoColor = true //nolint:reassign // intentional override of library global
			} else if colorize {
				color.NoColor = false //nolint:reassign // intentional override of library global
			}

			return runValidate(args[0])
		},
	}

	cmd.Flags().BoolVar(&colorize, "color", false, "force colored output")
	cmd.Flags().BoolVar(&nocolor, "no-color", false, "disable colored output")

	return cmd
}

func runValidate(inputPath string) error {
	document, label, err := loadDocument(inputPath)
	if err != nil {
		return err
	}

	violations, err := modfacts.ValidateDocument(document)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Schema validation error: %v\n", err)
		os.Exit(exitCodeValidationFailure)
	}

	if len(violations) == 0 {
		color.New(color.FgGreen).Fprintf(os.Stdout, "document is valid (%s)\n", label)

		return nil
	}

	color.New(color.FgRed).Fprintf(os.Stdout, "document is invalid (%s):\n", label)

	for _, violation := range violations {
		fmt.Fprintf(os.Stdout, "  - %s\n", violation)
	}

	os.Exit(exitCodeValidationFailure)

	return nil
}

func loadDocument(inputPath string) (document []byte, label string, err error) {
	if inputPath == stdinPath {
		data, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			return nil, "", fmt.Errorf("read stdin: %w", readErr)
		}

		return data, "stdin", nil
	}

	data, readErr := os.ReadFile(inputPath)
	if readErr != nil {
		return nil, "", fmt.Errorf("read %s: %w", inputPath, readErr)
	}

	return data, inputPath, nil
}
