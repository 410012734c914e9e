/*
File    : go-lotus/eval/eval_statements.go
Project : Lotus Interpreter
*/
package eval

import (
	"github.com/multipixels/go-lotus/function"
	"github.com/multipixels/go-lotus/objects"
	"github.com/multipixels/go-lotus/parser"
	"github.com/multipixels/go-lotus/scope"
)

// evalDeclareVariableStatement binds a new variable in the current frame
// after checking for a local shadow and verifying the initializer's runtime
// type against the declared type token.
func (e *Evaluator) evalDeclareVariableStatement(node *parser.DeclareVariableStatement, scp *scope.Scope) objects.LotusObject {
	if _, ok := scp.LookUpLocal(node.Name.Name); ok {
		return createError("Redefinition of '%s'.", node.Name.Name)
	}

	value := e.Eval(node.Value, scp)
	if IsError(value) {
		return value
	}

	if node.Token.Literal != string(value.GetType()) {
		return createError("'%s' is defined as type '%s', not '%s'.",
			node.Name.Name, node.Token.Literal, value.GetType())
	}

	scp.Bind(node.Name.Name, value)

	return objects.NULL_OBJECT
}

// evalDeclareCollectionStatement additionally reconciles the literal's
// inferred element type with the declared one; the NullType sentinel of an
// empty literal is accepted as undetermined.
func (e *Evaluator) evalDeclareCollectionStatement(node *parser.DeclareCollectionStatement, scp *scope.Scope) objects.LotusObject {
	if _, ok := scp.LookUpLocal(node.Name.Name); ok {
		return createError("Redefinition of '%s'.", node.Name.Name)
	}

	value := e.Eval(node.Value, scp)
	if IsError(value) {
		return value
	}

	if node.Token.Literal != string(value.GetType()) {
		return createError("'%s' is defined as type '%s', not '%s'.",
			node.Name.Name, node.Token.Literal, value.GetType())
	}

	collection := value.(*objects.Collection)

	if collection.ElementType != objects.NullType && node.TypeToken.Literal != string(collection.ElementType) {
		return createError("'%s' is a collection of '%s's, but got a collection of type '%s's.",
			node.Name.Name, node.TypeToken.Literal, collection.ElementType)
	}

	// An empty literal adopts the declared element type
	if collection.ElementType == objects.NullType {
		if elementType, ok := objects.TokenTypeToLotusType[node.TypeToken.Type]; ok {
			collection.ElementType = elementType
		}
	}

	scp.Bind(node.Name.Name, value)

	return objects.NULL_OBJECT
}

// evalDeclareDictionaryStatement reconciles the literal's inferred key and
// value types with the declared pair.
func (e *Evaluator) evalDeclareDictionaryStatement(node *parser.DeclareDictionaryStatement, scp *scope.Scope) objects.LotusObject {
	if _, ok := scp.LookUpLocal(node.Name.Name); ok {
		return createError("Redefinition of '%s'.", node.Name.Name)
	}

	value := e.Eval(node.Value, scp)
	if IsError(value) {
		return value
	}

	if node.Token.Literal != string(value.GetType()) {
		return createError("'%s' is defined as type '%s', not '%s'.",
			node.Name.Name, node.Token.Literal, value.GetType())
	}

	dictionary := value.(*objects.Dictionary)

	if dictionary.KeyType != objects.NullType &&
		(node.KeyTypeToken.Literal != string(dictionary.KeyType) ||
			node.ValueTypeToken.Literal != string(dictionary.ValueType)) {
		return createError("'%s' is a dictionary of <%s, %s> pairs, but got a dictionary of type <%s, %s> pairs.",
			node.Name.Name, node.KeyTypeToken.Literal, node.ValueTypeToken.Literal,
			dictionary.KeyType, dictionary.ValueType)
	}

	// An empty literal adopts the declared key and value types
	if dictionary.KeyType == objects.NullType {
		if keyType, ok := objects.TokenTypeToLotusType[node.KeyTypeToken.Type]; ok {
			dictionary.KeyType = keyType
		}
		if valueType, ok := objects.TokenTypeToLotusType[node.ValueTypeToken.Type]; ok {
			dictionary.ValueType = valueType
		}
	}

	scp.Bind(node.Name.Name, value)

	return objects.NULL_OBJECT
}

// evalDeclareFunctionStatement builds a Function value capturing the
// current environment and binds it under the declared name. The body is
// not executed.
func (e *Evaluator) evalDeclareFunctionStatement(node *parser.DeclareFunctionStatement, scp *scope.Scope) objects.LotusObject {
	functionType, ok := objects.TokenTypeToLotusType[node.Token.Type]
	if !ok {
		return createError("'%s' is not a valid function type.", node.Token.Literal)
	}

	result := &function.Function{
		ReturnType: functionType,
		Name:       node.Name.Name,
		Parameters: node.Parameters,
		Body:       node.Body.Body,
		Scp:        scp,
	}

	scp.Bind(node.Name.Name, result)

	return objects.NULL_OBJECT
}

// evalReturnStatement wraps the evaluated return value for propagation up
// to the enclosing call (or the program root).
func (e *Evaluator) evalReturnStatement(node *parser.ReturnStatement, scp *scope.Scope) objects.LotusObject {
	value := e.Eval(node.ReturnValue, scp)
	if IsError(value) {
		return value
	}
	return &objects.Return{Value: value}
}
