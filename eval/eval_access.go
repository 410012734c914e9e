/*
File    : go-lotus/eval/eval_access.go
Project : Lotus Interpreter
*/
package eval

import (
	"github.com/multipixels/go-lotus/function"
	"github.com/multipixels/go-lotus/objects"
	"github.com/multipixels/go-lotus/parser"
	"github.com/multipixels/go-lotus/scope"
)

// evalCallExpression evaluates a call site. User functions are checked for
// arity, argument types against the declared parameter types, the presence
// of a return value, and the return value's type. Builtins are invoked
// as-is; they police themselves.
func (e *Evaluator) evalCallExpression(node *parser.CallExpression, scp *scope.Scope) objects.LotusObject {
	callee := e.Eval(node.Function, scp)
	if IsError(callee) {
		return callee
	}

	switch callee := callee.(type) {
	case *function.Function:
		if len(node.Parameters) != len(callee.Parameters) {
			return createError("'%s' was supplied with %d argument(s) instead of %d.",
				callee.Name, len(node.Parameters), len(callee.Parameters))
		}

		arguments, errObj := e.evalExpressions(node.Parameters, scp)
		if errObj != nil {
			return errObj
		}

		for i, argument := range arguments {
			expected := objects.TokenTypeToLotusType[callee.Parameters[i].Token.Type]
			if argument.GetType() != expected {
				return createError("Parameter '%s' was supplied with a value of type '%s' instead of type '%s' for the function call for '%s'.",
					callee.Parameters[i].Name.Name, argument.GetType(),
					callee.Parameters[i].Token.Literal, callee.Name)
			}
		}

		functionScope := scope.NewScope(callee.Scp)
		for i, parameter := range callee.Parameters {
			functionScope.Bind(parameter.Name.Name, arguments[i])
		}

		result := e.Eval(callee.Body, functionScope)

		switch result.GetType() {
		case objects.BreakType:
			return createError("Attempted to break outside a loop.")
		case objects.ContinueType:
			return createError("Attempted to continue outside a loop.")
		case objects.ErrorType:
			return result
		}

		result = unwrapReturnValue(result)

		if result.GetType() == objects.NullType {
			return createError("'%s' has no return value.", callee.Name)
		}

		if result.GetType() != callee.ReturnType {
			return createError("'%s' produced a value of type '%s' instead of type '%s'.",
				node.String(), result.GetType(), callee.ReturnType)
		}

		return result
	case *objects.Builtin:
		arguments, errObj := e.evalExpressions(node.Parameters, scp)
		if errObj != nil {
			return errObj
		}

		return callee.Fn(e.Writer, arguments, callee.Receiver)
	default:
		return createError("'%s' is not a function.", node.Function.String())
	}
}

// evalIndexExpression reads through an index: collections and strings take
// a non-negative integer index in bounds; dictionaries take a key of their
// declared key type.
func (e *Evaluator) evalIndexExpression(node *parser.IndexExpression, scp *scope.Scope) objects.LotusObject {
	expression := e.Eval(node.Collection, scp)
	if IsError(expression) {
		return expression
	}

	index := e.Eval(node.Index, scp)
	if IsError(index) {
		return index
	}

	if expression.GetType() != objects.DictionaryType && index.GetType() != objects.IntegerType {
		return createError("Invalid index: '%s'", index.Inspect())
	}
	if dictionary, ok := expression.(*objects.Dictionary); ok && index.GetType() != dictionary.KeyType {
		return createError("Dictionary has keys of type: '%s'. Got type: '%s'",
			dictionary.KeyType, index.GetType())
	}

	switch expression := expression.(type) {
	case *objects.Collection:
		position := index.(*objects.Integer).Value
		if position < 0 {
			return createError("Invalid index: '%s'", index.Inspect())
		}
		if int(position) >= len(expression.Values) {
			return createError("Index out of bounds.")
		}
		return expression.Values[position]
	case *objects.String:
		position := index.(*objects.Integer).Value
		if position < 0 {
			return createError("Invalid index: '%s'", index.Inspect())
		}
		if int(position) >= len(expression.Value) {
			return createError("Index out of bounds.")
		}
		return &objects.Character{Value: expression.Value[position]}
	case *objects.Dictionary:
		value, ok := expression.Get(index)
		if !ok {
			return createError("Index not in dictionary.")
		}
		return value
	default:
		return createError("'%s' is not an indexable value.", expression.Inspect())
	}
}

// evalMemberAccess resolves obj.member to a property value or a builtin
// bound to its receiver.
func (e *Evaluator) evalMemberAccess(node *parser.InfixExpression, scp *scope.Scope) objects.LotusObject {
	left := e.Eval(node.Left, scp)
	if IsError(left) {
		return left
	}

	name := node.Right.String()
	if identifier, ok := node.Right.(*parser.Identifier); ok {
		name = identifier.Name
	}

	member, ok := objects.Member(left, name)
	if !ok {
		return createError("%s is not a member variable or function for an object of type %s.",
			name, left.GetType())
	}

	return member
}
