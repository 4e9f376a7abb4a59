package cli

import (
	"github.com/mvp-joe/export-diff/internal/analyzer"
	"github.com/spf13/cobra"
)

// patchCmd represents the patch command
var patchCmd = &cobra.Command{
	Use:   "patch NEW PATCH",
	Short: "Compare a file with the version before a unified diff was applied",
	Long: `Recover the old version of NEW by reversing PATCH (a unified diff, as produced
by git diff or diff -u), then print the exports that were Added, Removed or
Modified. Use "-" to read the patch from stdin.

Examples:
  git diff HEAD~1 -- src/index.ts | exportdiff patch src/index.ts -
`,
	Args: cobra.ExactArgs(2),
	RunE: runPatch,
}

func init() {
	rootCmd.AddCommand(patchCmd)
	patchCmd.Flags().BoolVar(&failOnChange, "fail-on-change", false, "Exit with status 2 when any export changed")
}

func runPatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	newCode, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}
	unified, err := readInput(cmd, args[1])
	if err != nil {
		return err
	}

	records, err := analyzer.AnalyzePatch(newCode, unified)
	if err != nil {
		return err
	}

	if err := writeResult(cmd.OutOrStdout(), records, &cfg.Output); err != nil {
		return err
	}
	return changeStatus(len(records))
}
