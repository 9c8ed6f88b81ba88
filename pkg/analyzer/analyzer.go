// Package analyzer extracts import/export facts from a single
// JavaScript/TypeScript source file by visiting its tree-sitter syntax
// tree once, in document order.
package analyzer

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/depscan/depscan/pkg/modfacts"
)

// maxDiagnostics caps how many parse diagnostics are collected per file.
const maxDiagnostics = 32

// errNoRootNode indicates the parse produced no usable tree.
var errNoRootNode = errors.New("no root node")

// Diagnostic is one non-fatal issue reported while parsing a file.
// Diagnostics are surfaced to the caller; analysis proceeds on the
// best-effort tree.
type Diagnostic struct {
	Path    string
	Message string
	Line    uint32
	Col     uint32
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", d.Path, d.Line+1, d.Col+1, d.Message)
}

// Analyzer turns one file's source text into a modfacts.FileFact.
type Analyzer struct{}

// New creates an Analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// Analyze determines the file's dialect, parses the source, and extracts
// the file's import/export facts. Parse errors in the tree are returned as
// diagnostics, not errors; the returned error is non-nil only for
// undeterminable dialects, fatally malformed input, or duplicate default
// exports.
func (a *Analyzer) Analyze(ctx context.Context, path string, source []byte) (modfacts.FileFact, []Diagnostic, error) {
	dialect, err := DetectDialect(path, source)
	if err != nil {
		return modfacts.FileFact{}, nil, err
	}

	parser := sitter.NewParser()
	parser.SetLanguage(languageFor(dialect))

	tree, parseErr := parser.ParseString(ctx, nil, source)
	if parseErr != nil {
		return modfacts.FileFact{}, nil, fmt.Errorf("parse %s: %w", path, parseErr)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.IsNull() {
		return modfacts.FileFact{}, nil, fmt.Errorf("parse %s: %w", path, errNoRootNode)
	}

	diags := collectDiagnostics(path, root, source)

	visitor := newFactVisitor(path, source)

	visitErr := visitor.walk(root)
	if visitErr != nil {
		return modfacts.FileFact{}, diags, fmt.Errorf("analyze %s: %w", path, visitErr)
	}

	return visitor.builder.Fact(), diags, nil
}

// collectDiagnostics walks the tree for ERROR and MISSING nodes produced
// by error recovery and reports each as a Diagnostic.
func collectDiagnostics(path string, root sitter.Node, source []byte) []Diagnostic {
	if !root.HasError() {
		return nil
	}

	var diags []Diagnostic

	var walk func(n sitter.Node)
	walk = func(n sitter.Node) {
		if len(diags) >= maxDiagnostics {
			return
		}

		if n.IsError() {
			diags = append(diags, Diagnostic{
				Path:    path,
				Message: fmt.Sprintf("syntax error near %q", truncate(n.Content(source))),
				Line:    uint32(n.StartPoint().Row),
				Col:     uint32(n.StartPoint().Column),
			})

			return
		}

		if n.IsMissing() {
			diags = append(diags, Diagnostic{
				Path:    path,
				Message: fmt.Sprintf("missing %s", n.Type()),
				Line:    uint32(n.StartPoint().Row),
				Col:     uint32(n.StartPoint().Column),
			})

			return
		}

		if !n.HasError() {
			return
		}

		count := n.ChildCount()
		for idx := range count {
			walk(n.Child(idx))
		}
	}

	walk(root)

	return diags
}

// truncateLen is the maximum excerpt length included in a diagnostic.
const truncateLen = 40

func truncate(s string) string {
	if len(s) > truncateLen {
		return s[:truncateLen] + "..."
	}

	return s
}
