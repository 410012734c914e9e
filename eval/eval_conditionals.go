/*
File    : go-lotus/eval/eval_conditionals.go
Project : Lotus Interpreter
*/
package eval

import (
	"github.com/multipixels/go-lotus/objects"
	"github.com/multipixels/go-lotus/parser"
	"github.com/multipixels/go-lotus/scope"
)

// evalIfStatement walks an if / else-if / else chain. A nil condition is a
// terminal else branch. Each taken branch evaluates in a fresh child
// environment.
func (e *Evaluator) evalIfStatement(node *parser.IfStatement, scp *scope.Scope) objects.LotusObject {
	// A nil condition encodes a bare else clause
	if node.Condition == nil {
		return e.Eval(node.Consequence, scope.NewScope(scp))
	}

	condition := e.Eval(node.Condition, scp)
	if IsError(condition) {
		return condition
	}

	truthy := e.isTruthy(condition)
	if IsError(truthy) {
		return truthy
	}

	ifScope := scope.NewScope(scp)

	if truthy.(*objects.Boolean).Value {
		return e.Eval(node.Consequence, ifScope)
	}
	if node.Alternative != nil {
		return e.Eval(node.Alternative, ifScope)
	}
	return objects.NULL_OBJECT
}
