package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mvp-joe/export-diff/internal/analyzer"
	"github.com/mvp-joe/export-diff/internal/config"
	"github.com/spf13/cobra"
)

var (
	failOnChange bool
	quietFlag    bool
)

// diffCmd represents the diff command
var diffCmd = &cobra.Command{
	Use:   "diff OLD NEW",
	Short: "Compare the exports of two files or two directories",
	Long: `Compare two versions of a TypeScript/TSX module and print the exports that
were Added, Removed or Modified.

When both arguments are directories, every file matching paths.include (and
not paths.ignore) is compared with the file at the same relative path on the
other side. A file missing on one side counts as empty.

Examples:
  # Compare two files
  exportdiff diff old/index.ts src/index.ts

  # Read the old version from stdin
  git show HEAD:src/index.ts | exportdiff diff - src/index.ts

  # Compare two source trees as YAML
  exportdiff diff --format yaml release-1.0/src src
`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().BoolVar(&failOnChange, "fail-on-change", false, "Exit with status 2 when any export changed")
	diffCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable the progress bar in directory mode")
}

func runDiff(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	oldPath, newPath := args[0], args[1]
	if isDir(oldPath) && isDir(newPath) {
		return runTreeDiff(cmd, oldPath, newPath, cfg)
	}
	if oldPath == "-" && newPath == "-" {
		return fmt.Errorf("only one side can be read from stdin")
	}

	oldCode, err := readInput(cmd, oldPath)
	if err != nil {
		return err
	}
	newCode, err := readInput(cmd, newPath)
	if err != nil {
		return err
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

func runTreeDiff(cmd *cobra.Command, oldDir, newDir string, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(commandContext(cmd))
	defer cancel()

	// Handle interrupt signals gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(cmd.ErrOrStderr(), "\nInterrupted! Cancelling diff...")
			cancel()
		case <-ctx.Done():
		}
	}()

	progress := newTreeProgress(cmd.ErrOrStderr(), quietFlag)
	results, err := analyzer.AnalyzeTree(ctx, oldDir, newDir, analyzer.TreeOptions{
		Include: cfg.Paths.Include,
		Ignore:  cfg.Paths.Ignore,
		OnStart: progress.OnStart,
		OnFile:  progress.OnFile,
	})
	progress.Finish()
	if err != nil {
		return err
	}

	if verbose {
		log.Printf("%d file(s) with export changes", len(results))
	}

	if err := writeResult(cmd.OutOrStdout(), results, &cfg.Output); err != nil {
		return err
	}
	return changeStatus(len(results))
}
