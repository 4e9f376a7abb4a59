package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mvp-joe/export-diff/internal/analyzer"
	"github.com/mvp-joe/export-diff/internal/watcher"
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch FILE...",
	Short: "Report export changes each time a file is saved",
	Long: `Watch one or more files and, after each save settles (watch.debounce_ms),
print the exports that changed since the previous version that parsed.
Saves that do not parse are reported on stderr and do not advance the baseline.

Example:
  exportdiff watch src/index.ts src/components/Button.tsx
`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(commandContext(cmd))
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	w, err := watcher.NewExportWatcher(args, cfg.Debounce())
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Stop()

	out := cmd.OutOrStdout()
	err = w.Start(ctx, func(ev watcher.Event) {
		if ev.Err != nil {
			log.Printf("%s: %v", ev.Path, ev.Err)
			return
		}
		result := analyzer.FileResult{Path: ev.Path, Changes: ev.Changes}
		if err := writeResult(out, result, &cfg.Output); err != nil {
			log.Printf("%s: %v", ev.Path, err)
		}
	})
	if err != nil {
		return err
	}

	log.Printf("Watching %d file(s) for export changes (Ctrl+C to stop)", len(args))

	select {
	case <-sigChan:
		fmt.Fprintln(cmd.ErrOrStderr(), "\nStopping watcher...")
	case <-ctx.Done():
	}
	return nil
}
