package things_tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/things-mcp/internal/server"
	"github.com/teemow/things-mcp/internal/things"
)

// RegisterThingsTools registers all Things-related tools with the MCP server
func RegisterThingsTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// Register task tools (some operations require !readOnly)
	if err := registerTaskTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register task tools: %w", err)
	}

	// Register project and overview tools (some operations require !readOnly)
	if err := registerProjectTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register project tools: %w", err)
	}

	return nil
}

// getThingsClient retrieves the shared Things client from the server context
func getThingsClient(sc *server.ServerContext) (*things.Client, error) {
	client, err := sc.ThingsClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create Things client: %w", err)
	}
	return client, nil
}

// scriptFailure converts a client error into a tool error result and
// bumps the timeout counter when the script ran out of time.
func scriptFailure(ctx context.Context, sc *server.ServerContext, operation, format string, err error) *mcp.CallToolResult {
	if errors.Is(err, things.ErrTimeout) {
		if metrics := sc.Metrics(); metrics != nil {
			metrics.RecordScriptTimeout(ctx, operation)
		}
	}
	return mcp.NewToolResultError(fmt.Sprintf(format, err))
}

// parseTags splits a comma-separated tag list into individual tag names.
// Empty entries and surrounding whitespace are dropped.
func parseTags(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// intArg extracts an integer argument, returning def when absent.
// JSON numbers arrive as float64.
func intArg(args map[string]interface{}, key string, def int) int {
	if v, ok := args[key].(float64); ok {
		return int(v)
	}
	return def
}

// stringArg extracts a string argument, returning def when absent or empty.
func stringArg(args map[string]interface{}, key, def string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return def
}
