package main

import (
	"fmt"

	"github.com/aretw0/factors"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of factors",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "factors version %s\n", factors.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
