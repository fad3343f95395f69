package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sttp"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <stt-file>",
	Short: "Export the state machine graph description",
	Long:  `Prints the state machine as graphviz DOT source (default) or as a Mermaid flowchart.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		syntax, _ := cmd.Flags().GetString("syntax")
		if err := runGraph(newParser(cmd, args), syntax); err != nil {
			fmt.Printf("Graph export failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	graphCmd.Flags().String("syntax", "dot", "Graph description syntax: dot or mermaid")
	rootCmd.AddCommand(graphCmd)
}

func runGraph(parser *sttp.Parser, syntax string) error {
	var out string
	var err error

	switch syntax {
	case "dot":
		out, err = parser.DOT()
	case "mermaid":
		out, err = parser.Mermaid()
	default:
		return fmt.Errorf("unsupported graph syntax %q (expected dot or mermaid)", syntax)
	}
	if err != nil {
		return err
	}

	fmt.Print(out)
	return nil
}
