package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sttp"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sttp",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sttp version %s\n", strings.TrimSpace(sttp.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
