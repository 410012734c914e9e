/*
File    : go-lotus/parser/parser_literals.go
Project : Lotus Interpreter
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/multipixels/go-lotus/lexer"
)

// parseIntegerLiteral parses the current INTEGER_LITERAL token into a
// 32-bit integer node.
func (par *Parser) parseIntegerLiteral() ExpressionNode {
	value, err := strconv.ParseInt(par.currentToken.Literal, 10, 32)
	if err != nil {
		par.addError(fmt.Sprintf("Could not parse %s as an integer.", par.currentToken.Literal))
		return nil
	}

	return &IntegerLiteral{
		Token: par.currentToken,
		Value: int32(value),
	}
}

// parseFloatLiteral parses the current FLOAT_LITERAL token into a 32-bit
// float node. The lexer has already stripped the trailing 'f'.
func (par *Parser) parseFloatLiteral() ExpressionNode {
	value, err := strconv.ParseFloat(par.currentToken.Literal, 32)
	if err != nil {
		par.addError(fmt.Sprintf("Could not parse %s as a float.", par.currentToken.Literal))
		return nil
	}

	return &FloatLiteral{
		Token: par.currentToken,
		Value: float32(value),
	}
}

// parseBooleanLiteral parses true and false.
func (par *Parser) parseBooleanLiteral() ExpressionNode {
	return &BooleanLiteral{
		Token: par.currentToken,
		Value: par.currentTokenIs(lexer.TRUE_LITERAL),
	}
}

// parseCharacterLiteral parses the current CHARACTER_LITERAL token. The
// literal must be exactly one character long.
func (par *Parser) parseCharacterLiteral() ExpressionNode {
	if len(par.currentToken.Literal) != 1 {
		par.addError(fmt.Sprintf("Expected to see a single character. Got %d instead.",
			len(par.currentToken.Literal)))
	}

	expression := &CharacterLiteral{
		Token: par.currentToken,
	}
	if len(par.currentToken.Literal) > 0 {
		expression.Value = par.currentToken.Literal[0]
	}

	return expression
}

// parseStringLiteral expands the current STRING_LITERAL token into a node
// whose children are a synthetic collection of character literals, one per
// code unit, preserving the original ordering.
func (par *Parser) parseStringLiteral() ExpressionNode {
	stringLiteral := &StringLiteral{
		Token:      par.currentToken,
		Characters: &CollectionLiteral{},
	}

	for i := 0; i < len(par.currentToken.Literal); i++ {
		character := &CharacterLiteral{
			Token: lexer.Token{
				Type:    lexer.CHARACTER_LITERAL,
				Literal: string(par.currentToken.Literal[i]),
			},
			Value: par.currentToken.Literal[i],
		}
		stringLiteral.Characters.Values = append(stringLiteral.Characters.Values, character)
	}

	return stringLiteral
}
