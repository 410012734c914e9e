/*
File    : go-lotus/parser/parser_expressions.go
Project : Lotus Interpreter
*/
package parser

import "github.com/multipixels/go-lotus/lexer"

// parseExpression is the heart of the Pratt parser. It applies the prefix
// function registered for the current token, then keeps folding infix and
// postfix operators into the left expression for as long as the peek token
// binds more tightly than the given precedence (and is not a semicolon).
func (par *Parser) parseExpression(precedence Precedence) ExpressionNode {
	prefix, ok := par.prefixParseFunctions[par.currentToken.Type]
	if !ok {
		par.noPrefixParseFunction(par.currentToken.Type)
		return nil
	}

	leftExpression := prefix()

	for !par.peekTokenIs(lexer.SEMICOLON) && precedence < par.peekPrecedence() {
		if infix, ok := par.infixParseFunctions[par.peekToken.Type]; ok {
			par.nextToken()
			leftExpression = infix(leftExpression)
			continue
		}

		if postfix, ok := par.postfixParseFunctions[par.peekToken.Type]; ok {
			par.nextToken()
			leftExpression = postfix(leftExpression)
			continue
		}

		return leftExpression
	}

	return leftExpression
}

// parseIdentifier builds an Identifier node from the current token.
func (par *Parser) parseIdentifier() ExpressionNode {
	return &Identifier{
		Token: par.currentToken,
		Name:  par.currentToken.Literal,
	}
}

// parsePrefixExpression parses !x, -x, ++x, and --x.
func (par *Parser) parsePrefixExpression() ExpressionNode {
	expression := &PrefixExpression{
		Token:    par.currentToken,
		Operator: par.currentToken.Literal,
	}

	par.nextToken()
	expression.Right = par.parseExpression(PREFIX)

	return expression
}

// parsePostfixExpression parses x++ and x--. The operand has already been
// parsed as the left expression.
func (par *Parser) parsePostfixExpression(left ExpressionNode) ExpressionNode {
	return &PostfixExpression{
		Token:    par.currentToken,
		Operator: par.currentToken.Literal,
		Left:     left,
	}
}

// parseInfixExpression parses every binary operator, including the
// assignment family and the member-access dot.
func (par *Parser) parseInfixExpression(left ExpressionNode) ExpressionNode {
	expression := &InfixExpression{
		Token:    par.currentToken,
		Left:     left,
		Operator: par.currentToken.Literal,
	}

	precedence := par.currentPrecedence()
	par.nextToken()
	expression.Right = par.parseExpression(precedence)

	return expression
}

// parseGroupedExpression parses a parenthesized sub-expression.
func (par *Parser) parseGroupedExpression() ExpressionNode {
	par.nextToken()

	expression := par.parseExpression(LOWEST)

	if !par.expectPeek(lexer.RPARENTHESIS) {
		return nil
	}

	return expression
}

// parseIndexExpression parses c[index] with the container already parsed as
// the left expression.
func (par *Parser) parseIndexExpression(left ExpressionNode) ExpressionNode {
	expression := &IndexExpression{
		Token:      par.currentToken,
		Collection: left,
	}

	par.nextToken()
	expression.Index = par.parseExpression(LOWEST)

	if !par.expectPeek(lexer.RBRACKET) {
		return nil
	}

	return expression
}
