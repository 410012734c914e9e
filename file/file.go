/*
File    : go-lotus/file/file.go
Project : Lotus Interpreter
*/

// Package file runs Lotus programs from script files: it reads the source,
// reports parser errors, evaluates the program against a fresh top-level
// environment, and prints the final non-null value.
package file

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/multipixels/go-lotus/eval"
	"github.com/multipixels/go-lotus/lexer"
	"github.com/multipixels/go-lotus/objects"
	"github.com/multipixels/go-lotus/parser"
	"github.com/multipixels/go-lotus/scope"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
)

// Run executes the Lotus program in the named file, writing interpreter
// output to the given writer. An optional timeout bounds evaluation; zero
// means no deadline. The returned error covers host-level failures
// (unreadable file, parse errors); runtime errors are printed like any
// other evaluation result.
func Run(path string, writer io.Writer, timeout time.Duration) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read file %s: %w", path, err)
	}

	par := parser.NewParser(lexer.NewLexer(string(source)))
	program := par.ParseProgram()

	if par.HasErrors() {
		for _, parseError := range par.Errors() {
			redColor.Fprintf(writer, "Parser error: %s\n", parseError)
		}
		return fmt.Errorf("%s: %d parse error(s)", path, len(par.Errors()))
	}

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)
	if timeout > 0 {
		evaluator.SetDeadline(time.Now().Add(timeout))
	}

	result := evaluator.Eval(program, scope.NewScope(nil))

	if result != nil && result.GetType() != objects.NullType {
		if result.GetType() == objects.ErrorType {
			redColor.Fprintf(writer, "%s\n", result.Inspect())
		} else {
			yellowColor.Fprintf(writer, "%s\n", result.Inspect())
		}
	}

	return nil
}
