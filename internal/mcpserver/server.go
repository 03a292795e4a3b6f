// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the apidoc to OpenAPI compiler as MCP tools over stdio.
package mcpserver

import (
	"cmp"
	"context"
	"fmt"
	"path"
	"regexp"
	"slices"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	apidocswagger "github.com/ALE-Rainbow/apidoc-swagger"
)

const serverInstructions = `apidoc-swagger MCP server: compiles apidoc annotation records (api_data.json) into an OpenAPI 3.0.3 document and lists the annotated endpoints.

Configuration: All defaults are configurable via APIDOC_SWAGGER_* environment variables set in your MCP client config.

Key settings:
- APIDOC_SWAGGER_FORMAT (default: json) - default output format for convert (json or yaml)
- APIDOC_SWAGGER_STRICT (default: false) - fail conversions on warnings
- APIDOC_SWAGGER_INCLUDE_INFO (default: true) - report informational issues
- APIDOC_SWAGGER_CACHE_ENABLED (default: true) - disable records caching entirely
- APIDOC_SWAGGER_CACHE_FILE_TTL (default: 15m) - cache TTL for records files
- APIDOC_SWAGGER_LIST_LIMIT (default: 100) - default result limit for list_records

Caching: Parsed records are cached per session. File entries use path+mtime as key (auto-invalidated on change). A background sweeper removes expired entries.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		recordsCache = newRecordsCache(cfg.CacheMaxSize, cfg.CacheSweepInterval)
		defer recordsCache.Close()
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "apidoc-swagger", Version: apidocswagger.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Compile apidoc annotation records (the api_data.json written by apidoc) into an OpenAPI 3.0.3 document. Optionally takes the api_project.json metadata and an override document deep-merged on top (tags, x-tagGroups, x-servers). Returns conversion issues with severities and the document inline, or writes swagger.json/swagger.yaml into output. Use offset/limit to paginate through issues. Defaults are configurable via APIDOC_SWAGGER_FORMAT and APIDOC_SWAGGER_STRICT env vars.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_records",
		Description: "List the annotated endpoints in an apidoc records document. Filter by group, method, or url pattern (supports * glob per segment). Returns summaries (method, url, name, group, title). Use group_by (group or method) to get distribution counts instead of individual items. Default limit is configurable via APIDOC_SWAGGER_LIST_LIMIT (default 100).",
	}, handleListRecords)
}

// paginate returns items[offset:offset+limit], clamped to the slice. A
// non-positive limit means cfg.ListLimit; no page is larger than cfg.MaxLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if offset < 0 || offset >= len(items) {
		return nil
	}
	if limit <= 0 {
		limit = cfg.ListLimit
	}
	limit = min(limit, cfg.MaxLimit, len(items)-offset)
	return items[offset : offset+limit]
}

// makeSlice keeps empty results nil so omitempty drops them from the output.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// pathPattern matches absolute paths under the usual filesystem roots.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

// sanitizeError replaces absolute paths in err with "<path>" before the
// message reaches an MCP client.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllLiteralString(err.Error(), "<path>")
}

func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// groupCount is one entry of a group_by result.
type groupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// groupAndSort counts items per key, largest group first and ties by key.
func groupAndSort[T any](items []T, keyFn func(T) []string) []groupCount {
	counts := make(map[string]int)
	for _, item := range items {
		for _, key := range keyFn(item) {
			counts[key]++
		}
	}
	groups := make([]groupCount, 0, len(counts))
	for key, count := range counts {
		groups = append(groups, groupCount{Key: key, Count: count})
	}
	slices.SortFunc(groups, func(a, b groupCount) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.Key, b.Key))
	})
	return groups
}

// validateGroupBy checks that group_by is one of the allowed values.
func validateGroupBy(groupBy string, allowed []string) error {
	if groupBy == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(groupBy, a) {
			return nil
		}
	}
	return fmt.Errorf("invalid group_by value %q; valid values: %s", groupBy, strings.Join(allowed, ", "))
}

// validateGlobPattern checks whether a glob pattern is syntactically valid.
// Call this once before a filter loop so matchGlob never meets an invalid
// pattern at match time.
func validateGlobPattern(pattern string) error {
	if pattern == "" || !strings.ContainsAny(pattern, "*?[") {
		return nil
	}
	if _, err := path.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	return nil
}

// matchGlob reports whether name matches pattern. A pattern without glob
// characters must match exactly.
func matchGlob(pattern, name string) bool {
	if !strings.ContainsAny(pattern, "*?[") {
		return pattern == name
	}
	ok, _ := path.Match(pattern, name)
	return ok
}
