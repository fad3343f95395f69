package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sttp"
)

var exportCmd = &cobra.Command{
	Use:   "export <stt-file>",
	Short: "Print the structured representation of the state machine",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")
		if err := runExport(newParser(cmd, args), format); err != nil {
			fmt.Printf("Export failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	exportCmd.Flags().String("format", "json", "Export encoding: json or yaml")
	rootCmd.AddCommand(exportCmd)
}

func runExport(parser *sttp.Parser, format string) error {
	var out string
	var err error

	switch format {
	case "json":
		out, err = parser.JSON()
	case "yaml":
		out, err = parser.YAML()
	default:
		return fmt.Errorf("unsupported export format %q (expected json or yaml)", format)
	}
	if err != nil {
		return err
	}

	fmt.Println(out)
	return nil
}
