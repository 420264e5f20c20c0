package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/machina"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of machina",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("machina version %s\n", machina.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
