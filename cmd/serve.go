// serve.go implements the "textidx serve" command.
//
// Unlike other commands that run and exit, serve blocks handling MCP
// requests over stdio until the client disconnects.

package cmd

import (
	"github.com/jpl-au/textidx/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long:  `Start an MCP (Model Context Protocol) server over stdio exposing clean, validate and the guides as tools.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return mcp.Serve()
		},
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
}
