/*
File    : go-lotus/eval/eval_assignments.go
Project : Lotus Interpreter
*/
package eval

import (
	"strings"

	"github.com/multipixels/go-lotus/objects"
	"github.com/multipixels/go-lotus/parser"
	"github.com/multipixels/go-lotus/scope"
)

// isCompoundAssignOperator reports whether the operator is one of the
// compound assignment forms.
func isCompoundAssignOperator(operator string) bool {
	switch operator {
	case "+=", "-=", "*=", "/=", "%=":
		return true
	}
	return false
}

// assignIdentifier rewrites "name = value". The name must already be bound
// somewhere on the scope chain, and the value's runtime type must equal the
// bound value's type. The mutation targets the containing frame; the
// expression itself evaluates to Null.
func (e *Evaluator) assignIdentifier(identifier *parser.Identifier, valueNode parser.ExpressionNode, scp *scope.Scope) objects.LotusObject {
	saved, ok := scp.LookUp(identifier.Name)
	if !ok {
		return createError("'%s' is not defined.", identifier.Name)
	}

	value := e.Eval(valueNode, scp)
	if IsError(value) {
		return value
	}

	if saved.GetType() != value.GetType() {
		return createError("Cannot assign '%s' of type '%s' a value of type '%s'.",
			identifier.Name, saved.GetType(), value.GetType())
	}

	scp.Reassign(identifier.Name, value)

	return objects.NULL_OBJECT
}

// assignIndexValue writes a value through an index expression target,
// dispatching on the container kind: collections check bounds and element
// type, dictionaries check the key type and insert missing keys, strings
// are immutable.
func (e *Evaluator) assignIndexValue(target *parser.IndexExpression, value objects.LotusObject, scp *scope.Scope) objects.LotusObject {
	container := e.Eval(target.Collection, scp)
	if IsError(container) {
		return container
	}

	index := e.Eval(target.Index, scp)
	if IsError(index) {
		return index
	}

	switch container := container.(type) {
	case *objects.Collection:
		if index.GetType() != objects.IntegerType {
			return createError("Invalid index: '%s'", index.Inspect())
		}

		position := index.(*objects.Integer).Value
		if position < 0 {
			return createError("Invalid index: '%s'", index.Inspect())
		}
		if int(position) >= len(container.Values) {
			return createError("Index out of bounds.")
		}

		if value.GetType() != container.ElementType {
			return createError("'The collection has values of type '%s'. Got value of type '%s'.",
				container.ElementType, value.GetType())
		}

		container.Values[position] = value
		return objects.NULL_OBJECT
	case *objects.Dictionary:
		if index.GetType() != container.KeyType {
			return createError("Dictionary has keys of type: '%s'. Got type: '%s'",
				container.KeyType, index.GetType())
		}

		container.Set(index, value)
		return objects.NULL_OBJECT
	case *objects.String:
		return createError("Strings are immutable.")
	default:
		return createError("'%s' is not an indexable value.", container.Inspect())
	}
}

// assignCompound rewrites "target ⊕= value" as "target = target ⊕ value",
// with the same promotion and zero checks as the plain binary operator and
// the same type discipline as plain assignment. A target that is not a
// modifiable location reports the whole compound operator as unsupported.
func (e *Evaluator) assignCompound(node *parser.InfixExpression, scp *scope.Scope) objects.LotusObject {
	baseOperator := strings.TrimSuffix(node.Operator, "=")

	switch target := node.Left.(type) {
	case *parser.Identifier:
		saved, ok := scp.LookUp(target.Name)
		if !ok {
			return createError("'%s' is not defined.", target.Name)
		}

		value := e.Eval(node.Right, scp)
		if IsError(value) {
			return value
		}

		computed := evalBinaryOperation(saved, baseOperator, value)
		if IsError(computed) {
			return computed
		}

		if computed.GetType() != saved.GetType() {
			return createError("Cannot assign '%s' of type '%s' a value of type '%s'.",
				target.Name, saved.GetType(), computed.GetType())
		}

		scp.Reassign(target.Name, computed)
		return objects.NULL_OBJECT
	case *parser.IndexExpression:
		current := e.evalIndexExpression(target, scp)
		if IsError(current) {
			return current
		}

		value := e.Eval(node.Right, scp)
		if IsError(value) {
			return value
		}

		computed := evalBinaryOperation(current, baseOperator, value)
		if IsError(computed) {
			return computed
		}

		return e.assignIndexValue(target, computed, scp)
	}

	// The target is not a modifiable location (e.g. "5 += 3;").
	left := e.Eval(node.Left, scp)
	if IsError(left) {
		return left
	}

	right := e.Eval(node.Right, scp)
	if IsError(right) {
		return right
	}

	return unsupportedInfix(left, node.Operator, right)
}

// applyIncrementDecrement performs ++ and -- on a modifiable location.
// Postfix forms yield the pre-mutation value; prefix forms mutate first and
// yield the new value.
func (e *Evaluator) applyIncrementDecrement(target parser.ExpressionNode, operator string, scp *scope.Scope, prefix bool) objects.LotusObject {
	switch target := target.(type) {
	case *parser.Identifier:
		saved, ok := scp.LookUp(target.Name)
		if !ok {
			return createError("'%s' is not defined.", target.Name)
		}

		updated, ok := stepValue(saved, operator)
		if !ok {
			return incrementDecrementError(saved, operator, prefix)
		}

		scp.Reassign(target.Name, updated)

		if prefix {
			return updated
		}
		return saved
	case *parser.IndexExpression:
		current := e.evalIndexExpression(target, scp)
		if IsError(current) {
			return current
		}

		updated, ok := stepValue(current, operator)
		if !ok {
			return incrementDecrementError(current, operator, prefix)
		}

		if result := e.assignIndexValue(target, updated, scp); IsError(result) {
			return result
		}

		if prefix {
			return updated
		}
		return current
	default:
		return createError("'%s' is not a modifiable value.", target.String())
	}
}

// stepValue produces the value one step up or down from the given integer
// or float.
func stepValue(value objects.LotusObject, operator string) (objects.LotusObject, bool) {
	delta := int32(1)
	if operator == "--" {
		delta = -1
	}

	switch value := value.(type) {
	case *objects.Integer:
		return &objects.Integer{Value: value.Value + delta}, true
	case *objects.Float:
		return &objects.Float{Value: value.Value + float32(delta)}, true
	default:
		return nil, false
	}
}

func incrementDecrementError(value objects.LotusObject, operator string, prefix bool) *objects.Error {
	if prefix {
		return createError("'%s%s' is not supported.", operator, value.GetType())
	}
	return createError("'%s%s' is not supported.", value.GetType(), operator)
}
