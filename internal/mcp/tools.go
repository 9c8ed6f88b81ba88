package mcp

import (
	"context"
	"errors"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/depscan/depscan/pkg/analyzer"
	"github.com/depscan/depscan/pkg/graph"
)

// Tool names exposed by the server.
const (
	toolNameAnalyze = "depscan_analyze"
	toolNameGraph   = "depscan_graph"
)

// Sentinel errors for tool input validation.
var (
	// ErrEmptyCode indicates the code input was empty.
	ErrEmptyCode = errors.New("code must not be empty")
	// ErrEmptyFilename indicates the filename input was empty.
	ErrEmptyFilename = errors.New("filename must not be empty")
	// ErrNoEntries indicates no entry paths were provided.
	ErrNoEntries = errors.New("entries must not be empty")
)

// AnalyzeInput is the input for the depscan_analyze tool.
type AnalyzeInput struct {
	Code     string `json:"code" jsonschema:"JavaScript or TypeScript source text to analyze"`
	Filename string `json:"filename" jsonschema:"filename used to determine the syntax dialect, e.g. app.tsx"`
}

// GraphInput is the input for the depscan_graph tool.
type GraphInput struct {
	Entries []string `json:"entries" jsonschema:"entry file paths, resolved relative to the server's working directory"`
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.server, &mcpsdk.Tool{
		Name:        toolNameAnalyze,
		Description: "Extract the static imports, exports, and default export of one JavaScript/TypeScript source snippet.",
	}, s.handleAnalyze)
	s.toolNames = append(s.toolNames, toolNameAnalyze)

	mcpsdk.AddTool(s.server, &mcpsdk.Tool{
		Name:        toolNameGraph,
		Description: "Build the module dependency graph reachable from the given entry files.",
	}, s.handleGraph)
	s.toolNames = append(s.toolNames, toolNameGraph)
}

// handleAnalyze processes depscan_analyze tool calls.
func (s *Server) handleAnalyze(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	input AnalyzeInput,
) (*mcpsdk.CallToolResult, any, error) {
	if input.Code == "" {
		return errorResult(ErrEmptyCode)
	}

	if input.Filename == "" {
		return errorResult(ErrEmptyFilename)
	}

	fact, diags, err := analyzer.New().Analyze(ctx, input.Filename, []byte(input.Code))
	if err != nil {
		return errorResult(fmt.Errorf("analyze: %w", err))
	}

	for _, diag := range diags {
		s.deps.Logger.Warn("parse issue", "diagnostic", diag.String())
	}

	return jsonResult(fact)
}

// handleGraph processes depscan_graph tool calls.
func (s *Server) handleGraph(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	input GraphInput,
) (*mcpsdk.CallToolResult, any, error) {
	if len(input.Entries) == 0 {
		return errorResult(ErrNoEntries)
	}

	builder := graph.NewBuilder(nil, analyzer.New(), s.deps.Logger, s.deps.GraphOptions)

	project, err := builder.Build(ctx, input.Entries)
	if err != nil {
		return errorResult(fmt.Errorf("build graph: %w", err))
	}

	return jsonResult(project)
}
