package main

import (
	"fmt"

	"github.com/aretw0/traits"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of traits",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "traits version %s\n", traits.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
