/*
File    : go-lotus/eval/evaluator.go
Project : Lotus Interpreter
*/

// Package eval implements the tree-walking evaluator of the Lotus
// interpreter. Evaluation is a recursive descent over the AST that threads
// the current environment frame and an optional deadline; Return, Break,
// Continue, and Error objects propagate upward until a construct handles
// them (a function call, a loop, or the program root).
package eval

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/multipixels/go-lotus/objects"
	"github.com/multipixels/go-lotus/parser"
	"github.com/multipixels/go-lotus/scope"
)

// Evaluator holds the state shared by a whole evaluation: the output sink
// for builtins, the optional deadline, and the free builtin functions.
type Evaluator struct {
	Writer   io.Writer                   // Output writer for builtin functions (default: os.Stdout)
	Deadline time.Time                   // Absolute evaluation deadline; zero value means no timeout
	Builtins map[string]*objects.Builtin // Free builtin functions (log)
}

// NewEvaluator creates an evaluator writing to standard output, with no
// deadline, and the builtin table populated.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		Writer: os.Stdout,
		Builtins: map[string]*objects.Builtin{
			"log": {Fn: objects.LogBuiltin},
		},
	}
}

// SetWriter redirects builtin output, for tests and embedding hosts.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// SetDeadline arms the evaluation timeout. Evaluation past the deadline
// returns an Error and unwinds.
func (e *Evaluator) SetDeadline(deadline time.Time) {
	e.Deadline = deadline
}

// Eval evaluates a single AST node against the given scope and returns the
// resulting runtime value. This is the interpreter's main dispatch; it is
// re-entered for every child node.
func (e *Evaluator) Eval(node parser.Node, scp *scope.Scope) objects.LotusObject {
	if !e.Deadline.IsZero() && time.Now().After(e.Deadline) {
		return createError("Evaluation of the program timed out.")
	}

	if node == nil {
		return objects.NULL_OBJECT
	}

	switch node := node.(type) {
	case *parser.Program:
		return e.evalProgram(node, scp)
	case *parser.Identifier:
		return e.evalIdentifier(node, scp)
	case *parser.BlockStatement:
		return e.evalBlockStatement(node, scp)
	case *parser.IntegerLiteral:
		return &objects.Integer{Value: node.Value}
	case *parser.FloatLiteral:
		return &objects.Float{Value: node.Value}
	case *parser.BooleanLiteral:
		return objects.GetBoolean(node.Value)
	case *parser.CharacterLiteral:
		return &objects.Character{Value: node.Value}
	case *parser.CollectionLiteral:
		return e.evalCollectionLiteral(node, scp)
	case *parser.DictionaryLiteral:
		return e.evalDictionaryLiteral(node, scp)
	case *parser.StringLiteral:
		return evalStringLiteral(node)
	case *parser.PrefixExpression:
		return e.evalPrefixExpression(node, scp)
	case *parser.PostfixExpression:
		return e.evalPostfixExpression(node, scp)
	case *parser.InfixExpression:
		return e.evalInfixExpression(node, scp)
	case *parser.CallExpression:
		return e.evalCallExpression(node, scp)
	case *parser.IndexExpression:
		return e.evalIndexExpression(node, scp)
	case *parser.DeclareVariableStatement:
		return e.evalDeclareVariableStatement(node, scp)
	case *parser.DeclareCollectionStatement:
		return e.evalDeclareCollectionStatement(node, scp)
	case *parser.DeclareDictionaryStatement:
		return e.evalDeclareDictionaryStatement(node, scp)
	case *parser.DeclareFunctionStatement:
		return e.evalDeclareFunctionStatement(node, scp)
	case *parser.ReturnStatement:
		return e.evalReturnStatement(node, scp)
	case *parser.ExpressionStatement:
		return e.Eval(node.Expression, scp)
	case *parser.IfStatement:
		return e.evalIfStatement(node, scp)
	case *parser.WhileStatement:
		return e.evalWhileStatement(node, scp)
	case *parser.DoWhileStatement:
		return e.evalDoWhileStatement(node, scp)
	case *parser.ForStatement:
		return e.evalForStatement(node, scp)
	case *parser.IterateStatement:
		return e.evalIterateStatement(node, scp)
	case *parser.BreakStatement:
		return objects.BREAK_OBJECT
	case *parser.ContinueStatement:
		return objects.CONTINUE_OBJECT
	default:
		return objects.NULL_OBJECT
	}
}

// evalProgram runs the top-level statement list. A top-level return is the
// program's result; loop-control sentinels reaching this level are errors.
func (e *Evaluator) evalProgram(program *parser.Program, scp *scope.Scope) objects.LotusObject {
	var result objects.LotusObject = objects.NULL_OBJECT

	for _, statement := range program.Statements {
		result = e.Eval(statement, scp)

		switch result.GetType() {
		case objects.ReturnType:
			return result.(*objects.Return).Value
		case objects.ErrorType:
			return result
		case objects.BreakType:
			return createError("Attempted to break outside a loop.")
		case objects.ContinueType:
			return createError("Attempted to continue outside a loop.")
		}
	}

	return result
}

// evalBlockStatement runs a statement list, propagating Return, Break,
// Continue, and Error to the caller. A block that completes normally
// evaluates to Null.
func (e *Evaluator) evalBlockStatement(block *parser.BlockStatement, scp *scope.Scope) objects.LotusObject {
	for _, statement := range block.Statements {
		result := e.Eval(statement, scp)

		switch result.GetType() {
		case objects.ReturnType, objects.ErrorType, objects.BreakType, objects.ContinueType:
			return result
		}
	}

	return objects.NULL_OBJECT
}

// evalExpressions evaluates an expression list strictly left to right,
// short-circuiting on the first error.
func (e *Evaluator) evalExpressions(expressions []parser.ExpressionNode, scp *scope.Scope) ([]objects.LotusObject, objects.LotusObject) {
	result := make([]objects.LotusObject, 0, len(expressions))

	for _, expression := range expressions {
		evaluated := e.Eval(expression, scp)
		if IsError(evaluated) {
			return nil, evaluated
		}
		result = append(result, evaluated)
	}

	return result, nil
}

// evalIdentifier resolves a name through the scope chain, falling back to
// the free builtin table.
func (e *Evaluator) evalIdentifier(identifier *parser.Identifier, scp *scope.Scope) objects.LotusObject {
	if result, ok := scp.LookUp(identifier.Name); ok {
		return result
	}

	if builtin, ok := e.Builtins[identifier.Name]; ok {
		return builtin
	}

	return createError("'%s' is not defined.", identifier.Name)
}

// isTruthy maps a runtime value to a Boolean for use in a condition.
// Defined only for Boolean (identity), Integer and Float (non-zero).
func (e *Evaluator) isTruthy(obj objects.LotusObject) objects.LotusObject {
	switch obj := obj.(type) {
	case *objects.Boolean:
		return objects.GetBoolean(obj.Value)
	case *objects.Integer:
		return objects.GetBoolean(obj.Value != 0)
	case *objects.Float:
		return objects.GetBoolean(obj.Value != 0)
	default:
		return createError("'%s' is not a valid truthy value.", obj.Inspect())
	}
}

// createError builds a first-class Error value.
func createError(format string, a ...interface{}) *objects.Error {
	return &objects.Error{Message: fmt.Sprintf(format, a...)}
}

// IsError reports whether the object is a runtime error.
func IsError(obj objects.LotusObject) bool {
	return obj != nil && obj.GetType() == objects.ErrorType
}

// unwrapReturnValue strips the Return wrapper at a function call boundary.
func unwrapReturnValue(obj objects.LotusObject) objects.LotusObject {
	if returnValue, ok := obj.(*objects.Return); ok {
		return returnValue.Value
	}
	return obj
}
