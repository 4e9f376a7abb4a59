package cli

import (
	"fmt"
	"os"

	"github.com/mvp-joe/export-diff/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server exposing the export diff tools",
	Long: `Start a Model Context Protocol (MCP) server on stdio so coding assistants can
call the export diff engine directly.

Tools:
- analyze_diff(old_code, new_code)
- analyze_patch(new_code, patch)

Example:
  exportdiff mcp`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	fmt.Fprintf(os.Stderr, "exportdiff MCP Server %s\n", Version)

	return mcp.NewServer(Version).Serve(commandContext(cmd))
}
