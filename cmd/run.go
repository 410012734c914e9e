/*
File    : go-lotus/cmd/run.go
Project : Lotus Interpreter
*/
package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/multipixels/go-lotus/file"
)

var runTimeout time.Duration

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Lotus script file",
	Long: `Execute a Lotus program from a file.

Examples:
  # Run a script file
  lotus run script.lts

  # Run with an evaluation timeout
  lotus run --timeout 5s script.lts`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return file.Run(args[0], os.Stdout, runTimeout)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().DurationVar(&runTimeout, "timeout", 0, "evaluation deadline (0 disables the timeout)")
}
