package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mvp-joe/export-diff/internal/analyzer"
	"github.com/mvp-joe/export-diff/internal/diff"
	"github.com/mvp-joe/export-diff/internal/encoding"
	mcputils "github.com/mvp-joe/export-diff/internal/mcp-utils"
)

// AddAnalyzeDiffTool registers the analyze_diff tool with an MCP server.
func AddAnalyzeDiffTool(s *server.MCPServer) {
	tool := mcp.NewTool(
		"analyze_diff",
		mcp.WithDescription("Compare two versions of a TypeScript/TSX module and list the top-level exports that were Added, Removed or Modified. Formatting and comments are ignored."),
		mcp.WithString("old_code",
			mcp.Required(),
			mcp.Description("Source text of the old version (may be empty)")),
		mcp.WithString("new_code",
			mcp.Required(),
			mcp.Description("Source text of the new version (may be empty)")),
		mcp.WithString("format",
			mcp.Description("Result encoding: json (default) or yaml")),
		mcp.WithBoolean("pretty",
			mcp.Description("Indent JSON output")),
	)

	s.AddTool(tool, createAnalyzeDiffHandler())
}

// AddAnalyzePatchTool registers the analyze_patch tool with an MCP server.
func AddAnalyzePatchTool(s *server.MCPServer) {
	tool := mcp.NewTool(
		"analyze_patch",
		mcp.WithDescription("Recover the old version of a TypeScript/TSX module by reversing a unified diff against the new version, then list the exports that were Added, Removed or Modified."),
		mcp.WithString("new_code",
			mcp.Required(),
			mcp.Description("Source text after the patch was applied")),
		mcp.WithString("patch",
			mcp.Required(),
			mcp.Description("Unified diff that produced new_code")),
		mcp.WithString("format",
			mcp.Description("Result encoding: json (default) or yaml")),
		mcp.WithBoolean("pretty",
			mcp.Description("Indent JSON output")),
	)

	s.AddTool(tool, createAnalyzePatchHandler())
}

// AnalyzeDiffRequest represents the analyze_diff arguments.
type AnalyzeDiffRequest struct {
	OldCode string `json:"old_code"`
	NewCode string `json:"new_code"`
	Format  string `json:"format,omitempty"`
	Pretty  bool   `json:"pretty,omitempty"`
}

// AnalyzePatchRequest represents the analyze_patch arguments.
type AnalyzePatchRequest struct {
	NewCode string `json:"new_code"`
	Patch   string `json:"patch"`
	Format  string `json:"format,omitempty"`
	Pretty  bool   `json:"pretty,omitempty"`
}

func createAnalyzeDiffHandler() func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := mcputils.RequireArguments(request, "old_code", "new_code"); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		var req AnalyzeDiffRequest
		if err := mcputils.CoerceBindArguments(request, &req); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		records, err := analyzer.AnalyzeDiff(req.OldCode, req.NewCode)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return encodeResult(records, req.Format, req.Pretty)
	}
}

func createAnalyzePatchHandler() func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := mcputils.RequireArguments(request, "new_code", "patch"); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		var req AnalyzePatchRequest
		if err := mcputils.CoerceBindArguments(request, &req); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if req.Patch == "" {
			return mcp.NewToolResultError("patch parameter is required"), nil
		}

		records, err := analyzer.AnalyzePatch(req.NewCode, req.Patch)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return encodeResult(records, req.Format, req.Pretty)
	}
}

// encodeResult returns the change list as text, JSON unless format says otherwise.
func encodeResult(records []diff.ChangeRecord, format string, pretty bool) (*mcp.CallToolResult, error) {
	if format == "" {
		format = encoding.FormatJSON
	}
	data, err := encoding.Encode(records, strings.ToLower(format), pretty)
	if errors.Is(err, encoding.ErrUnknownFormat) {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(strings.TrimSuffix(string(data), "\n")), nil
}
