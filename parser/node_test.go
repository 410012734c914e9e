/*
File    : go-lotus/parser/node_test.go
Project : Lotus Interpreter
*/
package parser

import (
	"testing"

	"github.com/multipixels/go-lotus/lexer"
)

// TestNode_HandBuiltDeclaration builds a declaration by hand and checks
// the canonical source form, independent of the parser
func TestNode_HandBuiltDeclaration(t *testing.T) {
	statement := &DeclareVariableStatement{
		Token: lexer.NewToken(lexer.INTEGER_TYPE, "integer"),
		Name: Identifier{
			Token: lexer.NewToken(lexer.IDENTIFIER, "myVar"),
			Name:  "myVar",
		},
		Value: &Identifier{
			Token: lexer.NewToken(lexer.IDENTIFIER, "anotherVar"),
			Name:  "anotherVar",
		},
	}

	program := &Program{Statements: []StatementNode{statement}}

	if program.String() != "integer myVar = anotherVar;" {
		t.Errorf("unexpected program String: %q", program.String())
	}
	if statement.TokenLiteral() != "integer" {
		t.Errorf("unexpected TokenLiteral: %q", statement.TokenLiteral())
	}
}

// TestNode_ExpressionStrings checks the canonical forms of hand-built
// expression nodes
func TestNode_ExpressionStrings(t *testing.T) {
	infix := &InfixExpression{
		Token:    lexer.NewToken(lexer.PLUS, "+"),
		Left:     &IntegerLiteral{Token: lexer.NewToken(lexer.INTEGER_LITERAL, "1"), Value: 1},
		Operator: "+",
		Right:    &IntegerLiteral{Token: lexer.NewToken(lexer.INTEGER_LITERAL, "2"), Value: 2},
	}
	if infix.String() != "(1 + 2)" {
		t.Errorf("unexpected infix String: %q", infix.String())
	}

	prefix := &PrefixExpression{
		Token:    lexer.NewToken(lexer.BANG, "!"),
		Operator: "!",
		Right:    &BooleanLiteral{Token: lexer.NewToken(lexer.TRUE_LITERAL, "true"), Value: true},
	}
	if prefix.String() != "(!true)" {
		t.Errorf("unexpected prefix String: %q", prefix.String())
	}

	index := &IndexExpression{
		Token:      lexer.NewToken(lexer.LBRACKET, "["),
		Collection: &Identifier{Token: lexer.NewToken(lexer.IDENTIFIER, "c"), Name: "c"},
		Index:      &IntegerLiteral{Token: lexer.NewToken(lexer.INTEGER_LITERAL, "0"), Value: 0},
	}
	if index.String() != "(c[0])" {
		t.Errorf("unexpected index String: %q", index.String())
	}

	character := &CharacterLiteral{Token: lexer.NewToken(lexer.CHARACTER_LITERAL, "a"), Value: 'a'}
	if character.String() != "'a'" {
		t.Errorf("unexpected character String: %q", character.String())
	}

	float := &FloatLiteral{Token: lexer.NewToken(lexer.FLOAT_LITERAL, "5.5"), Value: 5.5}
	if float.String() != "5.5" {
		t.Errorf("unexpected float String: %q", float.String())
	}
}
