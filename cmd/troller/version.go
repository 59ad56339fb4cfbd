package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/troller"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of troller",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "troller version %s\n", strings.TrimSpace(troller.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
