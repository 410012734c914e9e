/*
File    : go-lotus/cmd/root.go
Project : Lotus Interpreter
*/

// Package cmd wires the Lotus interpreter's command-line interface.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is set by build flags.
var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "lotus",
	Short: "Lotus language interpreter",
	Long: `go-lotus is a Go implementation of the Lotus programming language.

Lotus is a small statically-typed imperative language with atomic values,
homogeneous collections, keyed dictionaries, strings, first-class
user-defined functions, and full control flow.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
