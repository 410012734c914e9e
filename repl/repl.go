/*
File    : go-lotus/repl/repl.go
Project : Lotus Interpreter

Package repl implements the Read-Eval-Print Loop for the Lotus interpreter.
The REPL provides an interactive environment where users can:
- Enter Lotus code line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for errors and results

The REPL uses the readline library for line editing and integrates with the
parser and evaluator to execute user input. Bindings persist across lines:
the same top-level environment is reused for the whole session.
*/
package repl

import (
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/multipixels/go-lotus/eval"
	"github.com/multipixels/go-lotus/lexer"
	"github.com/multipixels/go-lotus/objects"
	"github.com/multipixels/go-lotus/parser"
	"github.com/multipixels/go-lotus/scope"
)

// Each REPL line is evaluated under this deadline so runaway loops hand
// control back to the prompt.
const evaluationTimeout = 1000 * time.Millisecond

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the interactive session configuration.
type Repl struct {
	Prompt string // Command prompt shown to the user (e.g. ">> ")
}

// NewRepl creates a REPL with the given prompt.
func NewRepl(prompt string) *Repl {
	return &Repl{Prompt: prompt}
}

// Start reads lines until EOF or ".exit", evaluating each against a shared
// top-level environment and printing non-null results.
func (r *Repl) Start(writer io.Writer) error {
	cyanColor.Fprintln(writer, "Lotus interpreter")
	cyanColor.Fprintln(writer, "Type your code and press enter. Type '.exit' to quit.")

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)
	environment := scope.NewScope(nil)

	for {
		line, err := rl.Readline()
		if err != nil {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			break
		}

		rl.SaveHistory(line)

		executeLine(writer, line, evaluator, environment)
	}

	return nil
}

func executeLine(writer io.Writer, line string, evaluator *eval.Evaluator, environment *scope.Scope) {
	par := parser.NewParser(lexer.NewLexer(line))
	program := par.ParseProgram()

	if par.HasErrors() {
		for _, parseError := range par.Errors() {
			redColor.Fprintf(writer, "Parser error: %s\n", parseError)
		}
		return
	}

	evaluator.SetDeadline(time.Now().Add(evaluationTimeout))
	result := evaluator.Eval(program, environment)

	if result == nil || result.GetType() == objects.NullType {
		return
	}

	if result.GetType() == objects.ErrorType {
		redColor.Fprintf(writer, "%s\n", result.Inspect())
	} else {
		yellowColor.Fprintf(writer, "%s\n", result.Inspect())
	}
}
