// Package mcp implements the Model Context Protocol server, exposing clean,
// validate and the guides to LLM clients over stdio.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/textidx/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Serve starts the MCP server over stdio and blocks until the client goes
// away.
func Serve() error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := newServer()

	slog.Info("textidx MCP server ready", "version", version.Short(), "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

func newServer() *server.MCPServer {
	s := server.NewMCPServer(
		"textidx",
		version.Short(),
		server.WithToolCapabilities(true),
	)
	registerTools(s, &handlers{})
	return s
}

// handlers holds the MCP tool handlers. Config is reloaded per call so
// edits made with "textidx config" apply without a restart.
type handlers struct{}

// registerTools exposes textidx operations as MCP tools.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("textidx_clean",
			mcp.WithDescription("Copy only the valid lines of a documents file (<digits>\\t<text>) to an output file. Invalid lines are dropped silently."),
			mcp.WithString("input", mcp.Required(), mcp.Description("Documents file to read")),
			mcp.WithString("output", mcp.Required(), mcp.Description("File to write; created or truncated")),
		),
		h.clean,
	)

	s.AddTool(
		mcp.NewTool("textidx_validate",
			mcp.WithDescription("Report empty lines and lines with too few tab-separated fields. Use min_fields 3 for words files and 2 for documents files."),
			mcp.WithString("path", mcp.Required(), mcp.Description("File to check")),
			mcp.WithNumber("min_fields", mcp.Description("Minimum fields per line (default: configured docs_fields)")),
		),
		h.validate,
	)

	s.AddTool(
		mcp.NewTool("textidx_guide",
			mcp.WithDescription("Read the textidx guide or one of its topics"),
			mcp.WithString("topic", mcp.Description("Topic name (formats, clean, validate) or empty for the main guide")),
		),
		h.getGuide,
	)

	s.AddTool(
		mcp.NewTool("textidx_config_get",
			mcp.WithDescription("Get a configuration value"),
			mcp.WithString("key", mcp.Description("Config key (limits.max_line_length, validate.words_fields, validate.docs_fields) or empty for all")),
		),
		h.configGet,
	)
}
