// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the jsonstream engine as a single synchronous tool over
// stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/streampath/jsonstream"
)

const serverInstructions = `jsonstream MCP server — filters a JSON document by a JSONPath pattern set and returns the ordered (path, value) pairs that matched.

This tool runs the streaming engine to completion over an in-memory document and returns its captured results; it does not expose a live stream over MCP's synchronous tool-call model.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or ctx is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "jsonstream", Version: jsonstream.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "filter_json",
		Description: "Filter a JSON document by one or more restricted JSONPath patterns ($.field, $.items[*], $.config.*) and return the ordered list of matching (path, value) pairs.",
	}, handleFilterJSON)
}

// pathPattern strips absolute filesystem paths from error messages so a
// malformed-document error never leaks server-side directory structure.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
