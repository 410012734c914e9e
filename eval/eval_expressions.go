/*
File    : go-lotus/eval/eval_expressions.go
Project : Lotus Interpreter
*/
package eval

import (
	"strings"

	"github.com/multipixels/go-lotus/objects"
	"github.com/multipixels/go-lotus/parser"
	"github.com/multipixels/go-lotus/scope"
)

// evalCollectionLiteral evaluates [v1, v2, ...]. The first element sets
// the collection's element type; later elements must match it.
func (e *Evaluator) evalCollectionLiteral(node *parser.CollectionLiteral, scp *scope.Scope) objects.LotusObject {
	if len(node.Values) == 0 {
		return &objects.Collection{ElementType: objects.NullType}
	}

	collection := &objects.Collection{ElementType: objects.NullType}

	for _, value := range node.Values {
		evaluated := e.Eval(value, scp)
		if IsError(evaluated) {
			return evaluated
		}

		if collection.ElementType != objects.NullType && evaluated.GetType() != collection.ElementType {
			return createError("The collection %s must have uniform typing of elements.", node.String())
		}

		if collection.ElementType == objects.NullType {
			collection.ElementType = evaluated.GetType()
		}
		collection.Values = append(collection.Values, evaluated)
	}

	return collection
}

// evalDictionaryLiteral evaluates {k1: v1, ...} preserving insertion
// order. Keys must be hashable and unique; key and value types must each
// be uniform.
func (e *Evaluator) evalDictionaryLiteral(node *parser.DictionaryLiteral, scp *scope.Scope) objects.LotusObject {
	dictionary := objects.NewDictionary()

	for _, pair := range node.Pairs {
		key := e.Eval(pair.Key, scp)
		if IsError(key) {
			return key
		}

		if !isHashableType(key.GetType()) {
			return createError("Invalid dictionary key type. %s is not a hashable type.", key.GetType())
		}

		if dictionary.KeyType != objects.NullType && key.GetType() != dictionary.KeyType {
			return createError("Dictionary has mismatching key types.")
		}
		if dictionary.KeyType == objects.NullType {
			dictionary.KeyType = key.GetType()
		}

		if dictionary.Has(key) {
			return createError("Dictionary initialized with duplicate key.")
		}

		value := e.Eval(pair.Value, scp)
		if IsError(value) {
			return value
		}

		if dictionary.ValueType != objects.NullType && value.GetType() != dictionary.ValueType {
			return createError("Dictionary has mismatching value types.")
		}
		if dictionary.ValueType == objects.NullType {
			dictionary.ValueType = value.GetType()
		}

		dictionary.Set(key, value)
	}

	return dictionary
}

// isHashableType reports whether values of the type may key a dictionary.
func isHashableType(t objects.LotusType) bool {
	switch t {
	case objects.IntegerType, objects.FloatType, objects.BooleanType, objects.CharacterType:
		return true
	}
	return false
}

// evalStringLiteral assembles a String value from the literal's character
// collection.
func evalStringLiteral(node *parser.StringLiteral) objects.LotusObject {
	var value strings.Builder
	for _, child := range node.Characters.Values {
		character := child.(*parser.CharacterLiteral)
		value.WriteByte(character.Value)
	}
	return &objects.String{Value: value.String()}
}

// evalPrefixExpression evaluates !x, -x, and the mutate-first forms ++x
// and --x.
func (e *Evaluator) evalPrefixExpression(node *parser.PrefixExpression, scp *scope.Scope) objects.LotusObject {
	if node.Operator == "++" || node.Operator == "--" {
		return e.applyIncrementDecrement(node.Right, node.Operator, scp, true)
	}

	right := e.Eval(node.Right, scp)
	if IsError(right) {
		return right
	}

	switch node.Operator {
	case "!":
		return evalBangOperatorExpression(right)
	case "-":
		return evalMinusPrefixOperatorExpression(right)
	default:
		return createError("'%s%s' is not supported.", node.Operator, right.GetType())
	}
}

// evalBangOperatorExpression produces true iff the operand is zero or
// false.
func evalBangOperatorExpression(expression objects.LotusObject) objects.LotusObject {
	switch expression := expression.(type) {
	case *objects.Integer:
		return objects.GetBoolean(expression.Value == 0)
	case *objects.Float:
		return objects.GetBoolean(expression.Value == 0)
	case *objects.Boolean:
		return objects.GetBoolean(!expression.Value)
	default:
		return createError("'!%s' is not supported.", expression.GetType())
	}
}

// evalMinusPrefixOperatorExpression negates an integer or float.
func evalMinusPrefixOperatorExpression(expression objects.LotusObject) objects.LotusObject {
	switch expression := expression.(type) {
	case *objects.Integer:
		return &objects.Integer{Value: -expression.Value}
	case *objects.Float:
		return &objects.Float{Value: -expression.Value}
	default:
		return createError("'-%s' is not supported.", expression.GetType())
	}
}

// evalPostfixExpression evaluates x++ and x--, which yield the
// pre-mutation value.
func (e *Evaluator) evalPostfixExpression(node *parser.PostfixExpression, scp *scope.Scope) objects.LotusObject {
	return e.applyIncrementDecrement(node.Left, node.Operator, scp, false)
}

// evalInfixExpression dispatches the infix operator families: assignment
// rewriting, compound assignment, member access, and plain binary
// operations.
func (e *Evaluator) evalInfixExpression(node *parser.InfixExpression, scp *scope.Scope) objects.LotusObject {
	if node.Operator == "." {
		return e.evalMemberAccess(node, scp)
	}

	if node.Operator == "=" {
		switch left := node.Left.(type) {
		case *parser.Identifier:
			return e.assignIdentifier(left, node.Right, scp)
		case *parser.IndexExpression:
			value := e.Eval(node.Right, scp)
			if IsError(value) {
				return value
			}
			return e.assignIndexValue(left, value, scp)
		}
	}

	if isCompoundAssignOperator(node.Operator) {
		return e.assignCompound(node, scp)
	}

	left := e.Eval(node.Left, scp)
	if IsError(left) {
		return left
	}

	right := e.Eval(node.Right, scp)
	if IsError(right) {
		return right
	}

	return evalBinaryOperation(left, node.Operator, right)
}

// evalBinaryOperation applies a binary operator to two runtime values.
// Mixed integer/float operands promote the integer to float and recurse.
func evalBinaryOperation(left objects.LotusObject, operator string, right objects.LotusObject) objects.LotusObject {
	switch left := left.(type) {
	case *objects.Integer:
		if right, ok := right.(*objects.Integer); ok {
			return evalIntegerInfixExpression(left, operator, right)
		}
		if right, ok := right.(*objects.Float); ok {
			return evalFloatInfixExpression(&objects.Float{Value: float32(left.Value)}, operator, right)
		}
	case *objects.Float:
		if rightInteger, ok := right.(*objects.Integer); ok {
			return evalFloatInfixExpression(left, operator, &objects.Float{Value: float32(rightInteger.Value)})
		}
		if right, ok := right.(*objects.Float); ok {
			return evalFloatInfixExpression(left, operator, right)
		}
	case *objects.Boolean:
		if right, ok := right.(*objects.Boolean); ok {
			return evalBooleanInfixExpression(left, operator, right)
		}
	case *objects.Character:
		if right, ok := right.(*objects.Character); ok {
			return evalCharacterInfixExpression(left, operator, right)
		}
	}

	return unsupportedInfix(left, operator, right)
}

func evalIntegerInfixExpression(left *objects.Integer, operator string, right *objects.Integer) objects.LotusObject {
	switch operator {
	case "+":
		return &objects.Integer{Value: left.Value + right.Value}
	case "-":
		return &objects.Integer{Value: left.Value - right.Value}
	case "*":
		return &objects.Integer{Value: left.Value * right.Value}
	case "/":
		if right.Value == 0 {
			return createError("Attempted division by zero.")
		}
		return &objects.Integer{Value: left.Value / right.Value}
	case "%":
		if right.Value == 0 {
			return createError("Attempted modulo by zero.")
		}
		return &objects.Integer{Value: left.Value % right.Value}
	case "<":
		return objects.GetBoolean(left.Value < right.Value)
	case "<=":
		return objects.GetBoolean(left.Value <= right.Value)
	case ">":
		return objects.GetBoolean(left.Value > right.Value)
	case ">=":
		return objects.GetBoolean(left.Value >= right.Value)
	case "==":
		return objects.GetBoolean(left.Value == right.Value)
	case "!=":
		return objects.GetBoolean(left.Value != right.Value)
	default:
		return unsupportedInfix(left, operator, right)
	}
}

func evalFloatInfixExpression(left *objects.Float, operator string, right *objects.Float) objects.LotusObject {
	switch operator {
	case "+":
		return &objects.Float{Value: left.Value + right.Value}
	case "-":
		return &objects.Float{Value: left.Value - right.Value}
	case "*":
		return &objects.Float{Value: left.Value * right.Value}
	case "/":
		if right.Value == 0 {
			return createError("Attempted division by zero.")
		}
		return &objects.Float{Value: left.Value / right.Value}
	case "<":
		return objects.GetBoolean(left.Value < right.Value)
	case "<=":
		return objects.GetBoolean(left.Value <= right.Value)
	case ">":
		return objects.GetBoolean(left.Value > right.Value)
	case ">=":
		return objects.GetBoolean(left.Value >= right.Value)
	case "==":
		return objects.GetBoolean(left.Value == right.Value)
	case "!=":
		return objects.GetBoolean(left.Value != right.Value)
	default:
		return unsupportedInfix(left, operator, right)
	}
}

func evalBooleanInfixExpression(left *objects.Boolean, operator string, right *objects.Boolean) objects.LotusObject {
	switch operator {
	case "&&":
		return objects.GetBoolean(left.Value && right.Value)
	case "||":
		return objects.GetBoolean(left.Value || right.Value)
	case "==":
		return objects.GetBoolean(left.Value == right.Value)
	case "!=":
		return objects.GetBoolean(left.Value != right.Value)
	default:
		return unsupportedInfix(left, operator, right)
	}
}

func evalCharacterInfixExpression(left *objects.Character, operator string, right *objects.Character) objects.LotusObject {
	switch operator {
	case "==":
		return objects.GetBoolean(left.Value == right.Value)
	case "!=":
		return objects.GetBoolean(left.Value != right.Value)
	default:
		return unsupportedInfix(left, operator, right)
	}
}

func unsupportedInfix(left objects.LotusObject, operator string, right objects.LotusObject) objects.LotusObject {
	return createError("'%s %s %s' is not supported.", left.GetType(), operator, right.GetType())
}
