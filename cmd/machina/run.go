package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/machina/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a machine against an input string",
	Long:  `Loads the model file, seeds the tape with the input string (from --input or stdin) and runs the machine until it halts or hits --limit.`,
	Run: func(cmd *cobra.Command, args []string) {
		file, _ := cmd.Flags().GetString("file")
		if !cmd.Flags().Changed("file") && len(args) > 0 {
			file = args[0]
		}
		if file == "" {
			fmt.Println("Error: no model file given (use --file or a positional argument).")
			os.Exit(1)
		}

		format, _ := cmd.Flags().GetString("format")
		input, _ := cmd.Flags().GetString("input")
		verbose, _ := cmd.Flags().GetBool("verbose")
		jsonMode, _ := cmd.Flags().GetBool("json")
		limit, _ := cmd.Flags().GetInt("limit")
		debug, _ := cmd.Flags().GetBool("debug")
		noColor, _ := cmd.Flags().GetBool("no-color")

		opts := cli.RunOptions{
			File:     file,
			Format:   format,
			Input:    input,
			InputSet: cmd.Flags().Changed("input"),
			Verbose:  verbose,
			JSON:     jsonMode,
			Limit:    limit,
			Debug:    debug,
			NoColor:  noColor,
		}
		if err := cli.Run(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("input", "i", "", "Input string for the tape (default: read a line from stdin)")
	runCmd.Flags().BoolP("verbose", "v", false, "Print every executed step")
	runCmd.Flags().Bool("json", false, "Emit the trace and result as JSON lines")
	runCmd.Flags().Int("limit", cli.DefaultLimit, "Halt after this many steps (-1 = unbounded)")
	runCmd.Flags().Bool("debug", false, "Enable debug logging on stderr")
	runCmd.Flags().Bool("no-color", false, "Disable terminal styling of the result")

	// Make 'run' the default if no command is provided.
	rootCmd.Run = runCmd.Run
}
