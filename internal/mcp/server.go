// Package mcp exposes depscan's analysis over the Model Context Protocol,
// serving tools on a stdio transport.
package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/depscan/depscan/pkg/graph"
	"github.com/depscan/depscan/pkg/version"
)

// serverName identifies this MCP server implementation to clients.
const serverName = "depscan"

// ServerDeps carries the collaborators the tool handlers need.
type ServerDeps struct {
	// Logger receives traversal notices. Nil falls back to slog.Default.
	Logger *slog.Logger
	// GraphOptions tune the depscan_graph traversal.
	GraphOptions graph.Options
}

// Server wraps an MCP server with depscan's tools registered.
type Server struct {
	server    *mcpsdk.Server
	deps      ServerDeps
	toolNames []string
}

// NewServer creates a Server with all depscan tools registered.
func NewServer(deps ServerDeps) *Server {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	impl := &mcpsdk.Implementation{
		Name:    serverName,
		Version: version.Version,
	}

	srv := &Server{
		server: mcpsdk.NewServer(impl, nil),
		deps:   deps,
	}

	srv.registerTools()

	return srv
}

// ListToolNames returns the registered tool names.
func (s *Server) ListToolNames() []string {
	names := make([]string, len(s.toolNames))
	copy(names, s.toolNames)

	return names
}

// Run serves MCP requests over stdio until the context is canceled or the
// client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcpsdk.StdioTransport{})
}

// jsonResult renders payload as indented JSON text content and returns it
// as the structured result as well.
func jsonResult(payload any) (*mcpsdk.CallToolResult, any, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, nil, err
	}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}},
	}, payload, nil
}

// errorResult reports a tool-level failure to the client without failing
// the protocol call.
func errorResult(err error) (*mcpsdk.CallToolResult, any, error) {
	return &mcpsdk.CallToolResult{
		IsError: true,
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: err.Error()}},
	}, nil, nil
}
