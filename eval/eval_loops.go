/*
File    : go-lotus/eval/eval_loops.go
Project : Lotus Interpreter
*/
package eval

import (
	"github.com/multipixels/go-lotus/objects"
	"github.com/multipixels/go-lotus/parser"
	"github.com/multipixels/go-lotus/scope"
)

// evalWhileStatement loops while the condition is truthy. The loop owns a
// child environment; each iteration's body runs in a fresh frame nested
// inside it. Break ends the loop normally; Continue advances it; Return
// and Error propagate.
func (e *Evaluator) evalWhileStatement(node *parser.WhileStatement, scp *scope.Scope) objects.LotusObject {
	loopScope := scope.NewScope(scp)

	for {
		condition := e.Eval(node.Condition, scp)
		if IsError(condition) {
			return condition
		}

		truthy := e.isTruthy(condition)
		if IsError(truthy) {
			return truthy
		}
		if !truthy.(*objects.Boolean).Value {
			break
		}

		result := e.Eval(node.Consequence, scope.NewScope(loopScope))

		switch result.GetType() {
		case objects.ErrorType, objects.ReturnType:
			return result
		case objects.BreakType:
			return objects.NULL_OBJECT
		case objects.ContinueType:
			continue
		}
	}

	return objects.NULL_OBJECT
}

// evalDoWhileStatement runs the body once before the first condition
// check, then behaves like while.
func (e *Evaluator) evalDoWhileStatement(node *parser.DoWhileStatement, scp *scope.Scope) objects.LotusObject {
	loopScope := scope.NewScope(scp)

	for {
		result := e.Eval(node.Consequence, scope.NewScope(loopScope))

		switch result.GetType() {
		case objects.ErrorType, objects.ReturnType:
			return result
		case objects.BreakType:
			return objects.NULL_OBJECT
		}

		condition := e.Eval(node.Condition, scp)
		if IsError(condition) {
			return condition
		}

		truthy := e.isTruthy(condition)
		if IsError(truthy) {
			return truthy
		}
		if !truthy.(*objects.Boolean).Value {
			break
		}
	}

	return objects.NULL_OBJECT
}

// evalForStatement runs a counted loop. The initialization, condition, and
// update clauses share one frame nested in the enclosing scope; each body
// iteration gets its own frame inside that, so the update clause sees the
// initialization binding but body declarations do not leak to the next
// iteration. Continue still runs the update clause.
func (e *Evaluator) evalForStatement(node *parser.ForStatement, scp *scope.Scope) objects.LotusObject {
	conditionScope := scope.NewScope(scp)

	initialization := e.Eval(node.Initialization, conditionScope)
	if IsError(initialization) {
		return initialization
	}

	for {
		condition := e.Eval(node.Condition, conditionScope)
		if IsError(condition) {
			return condition
		}

		truthy := e.isTruthy(condition)
		if IsError(truthy) {
			return truthy
		}
		if !truthy.(*objects.Boolean).Value {
			break
		}

		result := e.Eval(node.Consequence, scope.NewScope(conditionScope))

		switch result.GetType() {
		case objects.ErrorType, objects.ReturnType:
			return result
		case objects.BreakType:
			return objects.NULL_OBJECT
		}

		updation := e.Eval(node.Updation, conditionScope)
		if IsError(updation) {
			return updation
		}
	}

	return objects.NULL_OBJECT
}

// evalIterateStatement walks the elements of a collection, or the keys of
// a dictionary in insertion order. All iterations share one frame so the
// loop variable keeps its identity; the variable is rebound at the top of
// each iteration.
func (e *Evaluator) evalIterateStatement(node *parser.IterateStatement, scp *scope.Scope) objects.LotusObject {
	evaluated := e.Eval(node.Collection, scp)
	if IsError(evaluated) {
		return evaluated
	}

	var elements []objects.LotusObject
	switch evaluated := evaluated.(type) {
	case *objects.Collection:
		elements = evaluated.Values
	case *objects.Dictionary:
		elements = evaluated.Keys()
	default:
		return createError("Expected to see a collection to iterate over. Instead got a(n) '%s'.",
			evaluated.GetType())
	}

	iterateScope := scope.NewScope(scp)

	for _, value := range elements {
		iterateScope.Bind(node.Var.Name, value)

		result := e.Eval(node.Consequence, iterateScope)

		switch result.GetType() {
		case objects.ErrorType, objects.ReturnType:
			return result
		case objects.BreakType:
			return objects.NULL_OBJECT
		}
	}

	return objects.NULL_OBJECT
}
