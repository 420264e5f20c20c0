package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/machina/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a model file for consistency",
	Long:  `Parses the model and reports structural problems: missing or duplicate start state, duplicate state names, transitions targeting unknown states.`,
	Run: func(cmd *cobra.Command, args []string) {
		file, _ := cmd.Flags().GetString("file")
		if !cmd.Flags().Changed("file") && len(args) > 0 {
			file = args[0]
		}
		format, _ := cmd.Flags().GetString("format")
		print, _ := cmd.Flags().GetBool("print")
		printFormat, _ := cmd.Flags().GetString("print-format")

		err := cli.Validate(cli.ValidateOptions{
			File:        file,
			Format:      format,
			Print:       print,
			PrintFormat: printFormat,
		})
		if err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().Bool("print", false, "Print the canonical form of the validated model")
	validateCmd.Flags().String("print-format", "json", "Format for --print: json, yaml or toml")
}
