// tools_util.go provides helpers for extracting MCP tool parameters.
//
// A missing optional parameter falls back to its default; a present but
// unusable one fails the call.

package mcp

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
)

// getString returns the named string parameter, or def if absent.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// getInt returns the named number parameter as an int, or def if absent.
// JSON numbers arrive as float64; a value that is not a whole number
// within int32 range is an error rather than being truncated.
func getInt(req mcp.CallToolRequest, name string, def int) (int, error) {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def, nil
	}
	raw, ok := args[name]
	if !ok || raw == nil {
		return def, nil
	}
	v, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%s must be a whole number, got %v", name, v)
	}
	return int(v), nil
}

// jsonResult serialises v as indented JSON in an MCP text result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
