/*
File    : go-lotus/parser/parser_collections.go
Project : Lotus Interpreter
*/
package parser

import "github.com/multipixels/go-lotus/lexer"

// parseCollectionLiteral parses [v1, v2, ...]. Element type uniformity is
// enforced at evaluation, not here.
func (par *Parser) parseCollectionLiteral() ExpressionNode {
	expression := &CollectionLiteral{
		Token: par.currentToken,
	}
	expression.Values = par.parseExpressionList(lexer.COMMA, lexer.RBRACKET)
	return expression
}

// parseDictionaryLiteral parses {k1: v1, k2: v2, ...} preserving insertion
// order. Duplicate keys are not rejected at parse time; they are rejected
// at evaluation.
func (par *Parser) parseDictionaryLiteral() ExpressionNode {
	expression := &DictionaryLiteral{
		Token: par.currentToken,
	}
	expression.Pairs = par.parseKeyValuePairs(lexer.COMMA, lexer.RBRACE)
	return expression
}

// parseExpressionList parses a separator-delimited list of expressions
// terminated by the given closer. On return the current token is the
// closer. Shared by collection literals and call argument lists.
func (par *Parser) parseExpressionList(separator, ender lexer.TokenType) []ExpressionNode {
	destination := make([]ExpressionNode, 0)

	for !par.peekTokenIs(ender) && !par.currentTokenIs(lexer.END_OF_FILE) {
		par.nextToken()

		expression := par.parseExpression(LOWEST)

		if par.peekTokenIs(separator) {
			par.nextToken()
		}

		if expression != nil {
			destination = append(destination, expression)
		}
	}
	par.nextToken()

	return destination
}

// parseKeyValuePairs parses the entries of a dictionary literal. Each entry
// is key, colon, value. On return the current token is the closer.
func (par *Parser) parseKeyValuePairs(separator, ender lexer.TokenType) []*DictionaryPair {
	destination := make([]*DictionaryPair, 0)

	for !par.peekTokenIs(ender) && !par.currentTokenIs(lexer.END_OF_FILE) {
		par.nextToken()

		key := par.parseExpression(LOWEST)

		if par.expectPeek(lexer.COLON) {
			par.nextToken()
		}

		value := par.parseExpression(LOWEST)

		if par.peekTokenIs(separator) {
			par.nextToken()
		}

		if key != nil && value != nil {
			destination = append(destination, &DictionaryPair{Key: key, Value: value})
		}
	}
	par.nextToken()

	return destination
}
