package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mvp-joe/export-diff/internal/analyzer"
	"github.com/mvp-joe/export-diff/internal/git"
	"github.com/spf13/cobra"
)

// gitOps is replaced in tests.
var gitOps = git.Default()

// gitCmd represents the git command
var gitCmd = &cobra.Command{
	Use:   "git [REV] FILE",
	Short: "Compare a working tree file with its version at a git revision",
	Long: `Compare FILE in the working tree with the same file at REV.

Without REV, a feature branch is compared against main (or master) and any
other checkout against HEAD. A file that does not exist at REV counts as empty.

Examples:
  exportdiff git src/index.ts
  exportdiff git v1.2.0 src/index.ts
`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runGit,
}

func init() {
	rootCmd.AddCommand(gitCmd)
	gitCmd.Flags().BoolVar(&failOnChange, "fail-on-change", false, "Exit with status 2 when any export changed")
}

func runGit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	file := args[len(args)-1]
	absFile, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", file, err)
	}
	root := gitOps.GetWorktreeRoot(filepath.Dir(absFile))

	var rev string
	if len(args) == 2 {
		rev = args[0]
	} else {
		rev = defaultRevision(root)
	}
	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "Comparing %s against %s\n", file, rev)
	}

	oldCode, err := gitOps.ShowFile(root, rev, absFile)
	if err != nil && !errors.Is(err, git.ErrNotInRevision) {
		return err
	}

	newCode := ""
	if data, err := os.ReadFile(absFile); err == nil {
		newCode = string(data)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}

	records, err := analyzer.AnalyzeDiff(oldCode, newCode)
	if err != nil {
		return err
	}

	if err := writeResult(cmd.OutOrStdout(), records, &cfg.Output); err != nil {
		return err
	}
	return changeStatus(len(records))
}

// defaultRevision picks main/master for feature branches and HEAD otherwise.
func defaultRevision(root string) string {
	current := gitOps.GetCurrentBranch(root)
	ancestor := gitOps.FindAncestorBranch(root, current)
	if ancestor != "" && ancestor != current {
		return ancestor
	}
	return "HEAD"
}
