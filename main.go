/*
File    : go-lotus/main.go
Project : Lotus Interpreter
*/
package main

import (
	"os"

	"github.com/multipixels/go-lotus/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
