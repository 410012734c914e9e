/*
File    : go-lotus/cmd/repl.go
Project : Lotus Interpreter
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/multipixels/go-lotus/repl"
)

var replPrompt string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Lotus session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return repl.NewRepl(replPrompt).Start(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replPrompt, "prompt", ">> ", "prompt shown before each input line")
}
