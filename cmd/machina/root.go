package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "machina",
	Short: "Machina is a single-tape Turing machine simulator",
	Long:  `Machina loads a declarative machine model (JSON, YAML or TOML) and runs it against an input string, step by step, until it halts.`,
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
	rootCmd.PersistentFlags().StringP("file", "f", "", "Path to the machine model file")
	rootCmd.PersistentFlags().StringP("format", "e", "", "Model format: json, yaml or toml (default: inferred from extension)")
}
