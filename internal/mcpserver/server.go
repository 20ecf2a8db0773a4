// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes realmtools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	realmtools "github.com/erraggy/realmtools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `realmtools MCP server — clones and inspects Keycloak realm exports.

Configuration: All defaults are configurable via REALMTOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- REALMTOOLS_MAX_INLINE_SIZE (default: 4194304) — max inline content size in bytes
- REALMTOOLS_MAX_REWRITES (default: 200) — max rewrite records returned per clone call

Note: results are never cached. Cloning rewrites the parsed document in place, so every call re-parses its input.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "realmtools", Version: realmtools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "clone",
		Description: "Clone a Keycloak realm export under a new name. Every UUID-shaped identifier is replaced with a fresh one while reference relationships are preserved, the realm name is rewritten wherever it leaks (display names, default-role names, client URLs), and masked client secrets are removed. Use output to write the cloned document to a file, or include_document=true to return it inline.",
	}, handleClone)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "Parse a Keycloak realm export and return a structural summary: realm name, root identifier, Keycloak version, and counts of clients, roles, groups, users, identity providers, authentication flows, and components.",
	}, handleInspect)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
