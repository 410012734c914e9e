/*
File    : go-lotus/parser/parser_loops.go
Project : Lotus Interpreter
*/
package parser

import "github.com/multipixels/go-lotus/lexer"

// parseWhileStatement parses "while (cond) { body }".
func (par *Parser) parseWhileStatement() *WhileStatement {
	statement := &WhileStatement{
		Token: par.currentToken,
	}

	if !par.expectPeek(lexer.LPARENTHESIS) {
		return nil
	}

	par.nextToken()
	statement.Condition = par.parseExpression(LOWEST)

	if !par.expectPeek(lexer.RPARENTHESIS) {
		return nil
	}

	if !par.expectPeek(lexer.LBRACE) {
		return nil
	}

	statement.Consequence = par.parseBlockStatement()

	if !par.expectCurrent(lexer.RBRACE) {
		return nil
	}

	return statement
}

// parseDoWhileStatement parses "do { body } while (cond);".
func (par *Parser) parseDoWhileStatement() *DoWhileStatement {
	statement := &DoWhileStatement{
		Token: par.currentToken,
	}

	if !par.expectPeek(lexer.LBRACE) {
		return nil
	}

	statement.Consequence = par.parseBlockStatement()

	if !par.expectCurrent(lexer.RBRACE) {
		return nil
	}

	if !par.expectPeek(lexer.WHILE) {
		return nil
	}

	if !par.expectPeek(lexer.LPARENTHESIS) {
		return nil
	}

	par.nextToken()
	statement.Condition = par.parseExpression(LOWEST)

	if !par.expectPeek(lexer.RPARENTHESIS) {
		return nil
	}

	if !par.expectPeek(lexer.SEMICOLON) {
		return nil
	}

	return statement
}

// parseForStatement parses "for (init; cond; update) { body }". The
// initialization and update slots may be empty; the update statement is
// parsed without a terminator.
func (par *Parser) parseForStatement() *ForStatement {
	statement := &ForStatement{
		Token: par.currentToken,
	}

	if !par.expectPeek(lexer.LPARENTHESIS) {
		return nil
	}
	par.nextToken()

	if !par.currentTokenIs(lexer.SEMICOLON) {
		statement.Initialization = par.parseStatement()
	}
	par.nextToken()

	statement.Condition = par.parseStatement()

	if par.peekTokenIs(lexer.RPARENTHESIS) {
		statement.Updation = nil
	} else {
		par.nextToken()
		statement.Updation = par.parseStatementNoSemicolon()
	}

	if !par.expectPeek(lexer.RPARENTHESIS) {
		return nil
	}

	if !par.expectPeek(lexer.LBRACE) {
		return nil
	}

	statement.Consequence = par.parseBlockStatement()

	if !par.expectCurrent(lexer.RBRACE) {
		return nil
	}

	return statement
}

// parseIterateStatement parses "iterate (name : expr) { body }".
func (par *Parser) parseIterateStatement() *IterateStatement {
	statement := &IterateStatement{
		Token: par.currentToken,
	}

	if !par.expectPeek(lexer.LPARENTHESIS) {
		return nil
	}
	par.nextToken()

	identifier, ok := par.parseIdentifier().(*Identifier)
	if !ok {
		return nil
	}
	statement.Var = identifier

	if !par.expectPeek(lexer.COLON) {
		return nil
	}
	par.nextToken()

	statement.Collection = par.parseExpression(LOWEST)

	if !par.expectPeek(lexer.RPARENTHESIS) {
		return nil
	}

	if !par.expectPeek(lexer.LBRACE) {
		return nil
	}

	statement.Consequence = par.parseBlockStatement()

	if !par.expectCurrent(lexer.RBRACE) {
		return nil
	}

	return statement
}
