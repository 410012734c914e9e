/*
File    : go-lotus/parser/parser_statements.go
Project : Lotus Interpreter
*/
package parser

import "github.com/multipixels/go-lotus/lexer"

// parseVariableDeclaration parses "type name;" and "type name = expr;".
// The trailing semicolon is consumed by the caller.
func (par *Parser) parseVariableDeclaration() *DeclareVariableStatement {
	statement := &DeclareVariableStatement{
		Token: par.currentToken,
	}

	if !par.expectPeek(lexer.IDENTIFIER) {
		return nil
	}

	statement.Name.Token = par.currentToken
	statement.Name.Name = par.currentToken.Literal

	// Declaration without assignment
	if par.peekTokenIs(lexer.SEMICOLON) {
		return statement
	}

	// Declaration with assignment
	if !par.expectPeek(lexer.ASSIGN) {
		return nil
	}
	par.nextToken()

	statement.Value = par.parseExpression(LOWEST)

	return statement
}

// parseCollectionDeclaration parses "collection<type> name [= expr]".
func (par *Parser) parseCollectionDeclaration() *DeclareCollectionStatement {
	statement := &DeclareCollectionStatement{
		Token: par.currentToken,
	}

	if !par.expectPeek(lexer.LCHEVRON) {
		return nil
	}
	par.nextToken()

	statement.TypeToken = par.currentToken

	if !par.expectPeek(lexer.RCHEVRON) {
		return nil
	}

	if !par.expectPeek(lexer.IDENTIFIER) {
		return nil
	}

	statement.Name.Token = par.currentToken
	statement.Name.Name = par.currentToken.Literal

	// Declaration without assignment
	if par.peekTokenIs(lexer.SEMICOLON) {
		return statement
	}

	// Declaration with assignment
	if !par.expectPeek(lexer.ASSIGN) {
		return nil
	}
	par.nextToken()

	statement.Value = par.parseExpression(LOWEST)

	return statement
}

// parseDictionaryDeclaration parses "dictionary<keyType, valueType> name
// [= expr]".
func (par *Parser) parseDictionaryDeclaration() *DeclareDictionaryStatement {
	statement := &DeclareDictionaryStatement{
		Token: par.currentToken,
	}

	if !par.expectPeek(lexer.LCHEVRON) {
		return nil
	}
	par.nextToken()

	statement.KeyTypeToken = par.currentToken

	if !par.expectPeek(lexer.COMMA) {
		return nil
	}
	par.nextToken()

	statement.ValueTypeToken = par.currentToken

	if !par.expectPeek(lexer.RCHEVRON) {
		return nil
	}

	if !par.expectPeek(lexer.IDENTIFIER) {
		return nil
	}

	statement.Name.Token = par.currentToken
	statement.Name.Name = par.currentToken.Literal

	// Declaration without assignment
	if par.peekTokenIs(lexer.SEMICOLON) {
		return statement
	}

	// Declaration with assignment
	if !par.expectPeek(lexer.ASSIGN) {
		return nil
	}
	par.nextToken()

	statement.Value = par.parseExpression(LOWEST)

	return statement
}

// parseReturnStatement parses "return expr;".
func (par *Parser) parseReturnStatement() *ReturnStatement {
	statement := &ReturnStatement{
		Token: par.currentToken,
	}

	par.nextToken()

	statement.ReturnValue = par.parseExpression(LOWEST)

	if !par.expectPeek(lexer.SEMICOLON) {
		return nil
	}

	return statement
}

// parseExpressionStatement wraps an expression in statement position. The
// trailing semicolon is consumed by the caller.
func (par *Parser) parseExpressionStatement() *ExpressionStatement {
	statement := &ExpressionStatement{
		Token: par.currentToken,
	}
	statement.Expression = par.parseExpression(LOWEST)

	if statement.Expression == nil {
		return nil
	}

	return statement
}

// parseBlockStatement parses the statements between the current '{' and its
// matching '}'. On return the current token is the closing brace.
func (par *Parser) parseBlockStatement() *BlockStatement {
	statement := &BlockStatement{
		Token:      par.currentToken,
		Statements: make([]StatementNode, 0),
	}

	par.nextToken()

	for !par.currentTokenIs(lexer.RBRACE) && !par.currentTokenIs(lexer.END_OF_FILE) {
		subStatement := par.parseStatement()
		if subStatement != nil {
			statement.Statements = append(statement.Statements, subStatement)
		}
		par.nextToken()
	}

	return statement
}

// parseBreakStatement parses "break;".
func (par *Parser) parseBreakStatement() *BreakStatement {
	statement := &BreakStatement{
		Token: par.currentToken,
	}

	if !par.expectPeek(lexer.SEMICOLON) {
		return nil
	}

	return statement
}

// parseContinueStatement parses "continue;".
func (par *Parser) parseContinueStatement() *ContinueStatement {
	statement := &ContinueStatement{
		Token: par.currentToken,
	}

	if !par.expectPeek(lexer.SEMICOLON) {
		return nil
	}

	return statement
}
