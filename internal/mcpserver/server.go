// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes snailtools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/snailworks/snailtools"
)

const serverInstructions = `snailtools MCP server — converts identifier casing and formats 3D points.

Configuration: All defaults are configurable via SNAILTOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- SNAILTOOLS_POINT_TWO_D (default: true) — format_point defaults to a 2D dict (x and y only)
- SNAILTOOLS_POINT_FORMAT (default: none) — default document format for format_point (none, json, yaml)`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "snailtools", Version: snailtools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_case",
		Description: "Convert a name or text between casing conventions. Conversions: camel_to_snail, free_to_snail, snail_to_camel, snail_to_pascal, snail_to_kebab, snail_to_free. camel_to_snail expands acronym runs per letter (HTTPServer becomes h_t_t_p_server). free_to_snail trims surrounding whitespace before converting.",
	}, handleConvertCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_name",
		Description: "Check whether a name already conforms to a casing style (snail or camel). When the name does not conform, a conforming suggestion is included if one of the library conversions produces one.",
	}, handleCheckName)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "format_point",
		Description: "Format a 3D point. Returns the two-decimal display string and a dict of integer-rounded coordinates (round half away from zero). Use two_d=false to include z in the dict. Use format (json or yaml) to also get the dict rendered as a document. Defaults are configurable via SNAILTOOLS_POINT_TWO_D and SNAILTOOLS_POINT_FORMAT env vars.",
	}, handleFormatPoint)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
