package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mvp-joe/export-diff/internal/config"
	"github.com/mvp-joe/export-diff/internal/encoding"
	"github.com/spf13/cobra"
)

// loadConfig loads configuration and applies --format and --pretty when given.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.NewFileLoader(cfgFile).Load()
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if cmd.Flags().Changed("format") {
		cfg.Output.Format = strings.ToLower(formatFlag)
	}
	if cmd.Flags().Changed("pretty") {
		cfg.Output.Pretty = prettyFlag
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "Output format: %s\n", cfg.Output.Format)
	}
	return cfg, nil
}

// writeResult encodes v and writes it followed by a newline.
func writeResult(w io.Writer, v any, out *config.OutputConfig) error {
	data, err := encoding.EncodeValue(v, out.Format, out.Pretty)
	if err != nil {
		return err
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}
	_, err = w.Write(data)
	return err
}

// readInput reads a source file; "-" reads standard input.
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// changeStatus returns ErrChangesDetected when failOnChange is set and count > 0.
func changeStatus(count int) error {
	if failOnChange && count > 0 {
		return ErrChangesDetected
	}
	return nil
}

// commandContext returns the command's context, or Background when unset.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
