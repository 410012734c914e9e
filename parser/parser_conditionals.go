/*
File    : go-lotus/parser/parser_conditionals.go
Project : Lotus Interpreter
*/
package parser

import "github.com/multipixels/go-lotus/lexer"

// parseIfStatement parses the full if / else-if / else chain. The chain is
// encoded as nested IfStatement nodes; a bare else is an IfStatement with a
// nil condition.
func (par *Parser) parseIfStatement() *IfStatement {
	statement := &IfStatement{
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

	// Handling else-ifs and elses
	if par.peekTokenIs(lexer.ELSE) {
		par.nextToken()

		statement.Alternative = par.parseElseStatement()
		return statement
	}
	statement.Alternative = nil

	if !par.expectCurrent(lexer.RBRACE) {
		return nil
	}

	return statement
}

// parseElseStatement parses the alternative of an if statement: either an
// else-if (delegating back to parseIfStatement) or a terminal else block.
func (par *Parser) parseElseStatement() *IfStatement {
	if par.peekTokenIs(lexer.IF) {
		par.nextToken()
		return par.parseIfStatement()
	}

	statement := &IfStatement{
		Token: par.currentToken,
	}

	if !par.expectPeek(lexer.LBRACE) {
		return nil
	}

	statement.Condition = nil
	statement.Consequence = par.parseBlockStatement()
	statement.Alternative = nil

	if !par.expectCurrent(lexer.RBRACE) {
		return nil
	}

	return statement
}
