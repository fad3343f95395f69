package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"sttp"
	"sttp/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "sttp",
	Short: "sttp is a state transition table parser",
	Long: `sttp parses state transition tables described in csv format and
exports them as structured text (JSON/YAML), as a graph description
(DOT/Mermaid), or as a rendered image via graphviz.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")
}

// newParser builds a Parser for the table file given as the command's first
// argument, honoring the global verbosity flag.
func newParser(cmd *cobra.Command, args []string) *sttp.Parser {
	logger := logging.NewNop()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger = logging.New(slog.LevelDebug)
	}
	return sttp.New(args[0], sttp.WithLogger(logger))
}
