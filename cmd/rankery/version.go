package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rankery/rankery"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of rankery",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rankery version %s\n", strings.TrimSpace(rankery.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
