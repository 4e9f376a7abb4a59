package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	verbose    bool
	formatFlag string
	prettyFlag bool
)

// ErrChangesDetected is returned by commands run with --fail-on-change when
// the diff is not empty. Execute maps it to exit status 2.
var ErrChangesDetected = errors.New("export changes detected")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "exportdiff",
	Short: "Report added, removed and modified exports between two TypeScript versions",
	Long: `exportdiff parses two versions of a TypeScript/TSX module and reports which
top-level exported declarations were Added, Removed or Modified.

Whitespace and comments are ignored; any other change to a declaration counts
as a modification. Results are written as JSON (default) or YAML.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, ErrChangesDetected) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .exportdiff/config.yml in the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "output format: json or yaml")
	rootCmd.PersistentFlags().BoolVar(&prettyFlag, "pretty", false, "indent JSON output")
}
