package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sttp/pkg/ports"
)

var renderCmd = &cobra.Command{
	Use:   "render <stt-file>",
	Short: "Render the state machine graph to an image",
	Long:  `Lays out the state machine graph with the local graphviz installation and writes it as an image file.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		formatStr, _ := cmd.Flags().GetString("format")
		view, _ := cmd.Flags().GetBool("view")

		format, err := ports.ParseFormat(formatStr)
		if err != nil {
			fmt.Printf("Render failed: %v\n", err)
			os.Exit(1)
		}

		parser := newParser(cmd, args)
		written, err := parser.Render(cmd.Context(), output, format, view)
		if err != nil {
			fmt.Printf("Render failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Rendered %s\n", written)
	},
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "Output file path (required)")
	renderCmd.Flags().String("format", string(ports.DefaultFormat), "Image format")
	renderCmd.Flags().Bool("view", false, "Open the rendered file after creation")
	_ = renderCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(renderCmd)
}
