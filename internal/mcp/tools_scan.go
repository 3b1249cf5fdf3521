// tools_scan.go implements the clean and validate MCP tools.

package mcp

import (
	"context"

	"github.com/jpl-au/textidx/internal/config"
	"github.com/jpl-au/textidx/internal/log"
	"github.com/jpl-au/textidx/internal/scan"
	"github.com/mark3labs/mcp-go/mcp"
)

// clean handles textidx_clean tool calls.
func (h *handlers) clean(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in, err := req.RequireString("input")
	if err != nil {
		return mcp.NewToolResultError("input is required"), nil //nolint:nilerr
	}
	out, err := req.RequireString("output")
	if err != nil {
		return mcp.NewToolResultError("output is required"), nil //nolint:nilerr
	}

	cfg, err := config.Load()
	if err == nil {
		err = scan.CleanFile(in, out, scan.Options{MaxLineLength: cfg.MaxLineLength()})
	}

	log.Event("mcp:clean", "clean").Author("mcp").Input(in).Output(out).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]string{"output": out})
}

// validate handles textidx_validate tool calls.
func (h *handlers) validate(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}

	cfg, err := config.Load()
	if err != nil {
		log.Event("mcp:validate", "validate").Author("mcp").Input(path).Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	minFields, err := getInt(req, "min_fields", cfg.DocsFields())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	anomalies := []scan.Anomaly{}
	err = scan.CheckFile(path, minFields, scan.Collect(&anomalies), scan.Options{MaxLineLength: cfg.MaxLineLength()})

	log.Event("mcp:validate", "validate").Author("mcp").Input(path).
		Detail("min_fields", minFields).
		Detail("anomalies", len(anomalies)).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"path":       path,
		"min_fields": minFields,
		"anomalies":  anomalies,
	})
}
