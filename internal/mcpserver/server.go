// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes wsdltools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/wsdltools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `wsdltools MCP server — parses WSDL service descriptions, resolves schema types, inspects operations, and generates Go types.

Configuration: All defaults are configurable via WSDLTOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- WSDLTOOLS_CACHE_FILE_TTL (default: 15m) — cache TTL for local WSDL files
- WSDLTOOLS_CACHE_URL_TTL (default: 5m) — cache TTL for URL-fetched documents
- WSDLTOOLS_CACHE_ENABLED (default: true) — disable document caching entirely
- WSDLTOOLS_LIST_LIMIT (default: 100) — default result limit for listing tools
- WSDLTOOLS_MAX_INLINE_SIZE (default: 10MB) — maximum inline document size
- WSDLTOOLS_ALLOW_PRIVATE_IPS (default: false) — allow URL inputs that resolve to private addresses

Caching: Parsed documents are cached per session. File entries use path+mtime as key (auto-invalidated on change). URL entries are cached with a shorter TTL. A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		docCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "wsdltools", Version: wsdltools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse a WSDL document. Returns a structural summary: service name, endpoint, target namespace, operation and type counts, declared namespaces, and any warnings from external schema resolution. Use full=true to also get a YAML listing of every type and its fields.",
	}, handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "operations",
		Description: "List the operations a WSDL document declares, with their SOAP actions and declared input and output types. Pass name to get one operation with its input and output types resolved to full field definitions.",
	}, handleOperations)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "type_definition",
		Description: "Resolve a schema type by name and return its normalized definition: fields in declared order with type, required, array, and nillable flags. Names may be namespace-qualified (ns1:Address) or bare; bare names also match declarations carrying a Type suffix.",
	}, handleTypeDefinition)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_types",
		Description: "List every type a WSDL document declares, grouped by namespace. Use user_defined_only=true to skip types from standards-body namespaces. Use offset/limit to paginate through large schemas. Default limit is configurable via WSDLTOOLS_LIST_LIMIT.",
	}, handleListTypes)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate Go type definitions from a WSDL document. Starts from the input and output types of every operation and follows user-defined type references. Requires output_dir. Returns a manifest of generated files.",
	}, handleGenerate)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ListLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ListLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
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
