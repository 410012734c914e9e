/*
File    : go-lotus/function/function.go
Project : Lotus Interpreter
*/

// Package function defines the runtime value for user-declared Lotus
// functions. It lives outside the objects package so that a function can
// reference its AST body and captured scope without an import cycle.
package function

import (
	"strings"

	"github.com/multipixels/go-lotus/objects"
	"github.com/multipixels/go-lotus/parser"
	"github.com/multipixels/go-lotus/scope"
)

// Function is a first-class user-defined function: its declared return
// type, embedded name, parameter declarations, body, and the environment
// captured at the point of declaration (enabling recursion and
// self-reference).
type Function struct {
	ReturnType objects.LotusType
	Name       string
	Parameters []*parser.DeclareVariableStatement
	Body       *parser.BlockStatement
	Scp        *scope.Scope
}

func (f *Function) GetType() objects.LotusType {
	return objects.FunctionType
}

func (f *Function) Inspect() string {
	var output strings.Builder
	output.WriteString(string(f.ReturnType))
	output.WriteString("(")
	for i, parameter := range f.Parameters {
		output.WriteString(strings.TrimSuffix(parameter.String(), ";"))
		if i != len(f.Parameters)-1 {
			output.WriteString(", ")
		}
	}
	output.WriteString(")\n{\n")
	output.WriteString(f.Body.String())
	output.WriteString("}")
	return output.String()
}
