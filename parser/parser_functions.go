/*
File    : go-lotus/parser/parser_functions.go
Project : Lotus Interpreter
*/
package parser

import "github.com/multipixels/go-lotus/lexer"

// parseFunctionDeclaration parses "type(params) name { body }". The leading
// type keyword is the current token; the parameter list uses variable
// declaration nodes without initializers.
func (par *Parser) parseFunctionDeclaration() *DeclareFunctionStatement {
	statement := &DeclareFunctionStatement{
		Token: par.currentToken,
	}

	if !par.expectPeek(lexer.LPARENTHESIS) {
		return nil
	}

	statement.Parameters = par.parseParameters()

	if !par.expectPeek(lexer.RPARENTHESIS) {
		return nil
	}

	if !par.expectPeek(lexer.IDENTIFIER) {
		return nil
	}

	statement.Name.Token = par.currentToken
	statement.Name.Name = par.currentToken.Literal

	if !par.expectPeek(lexer.LBRACE) {
		return nil
	}

	statement.Body = &FunctionLiteral{
		Token: par.currentToken,
		Body:  par.parseBlockStatement(),
	}

	if !par.expectCurrent(lexer.RBRACE) {
		return nil
	}

	return statement
}

// parseParameters parses the comma-separated "type name" pairs of a
// function declaration's parameter list. On return the peek token is the
// closing parenthesis.
func (par *Parser) parseParameters() []*DeclareVariableStatement {
	parameters := make([]*DeclareVariableStatement, 0)

	for !par.peekTokenIs(lexer.RPARENTHESIS) {
		par.nextToken()

		statement := &DeclareVariableStatement{
			Token: par.currentToken,
		}

		if !par.expectPeek(lexer.IDENTIFIER) {
			return parameters
		}

		statement.Name.Token = par.currentToken
		statement.Name.Name = par.currentToken.Literal
		statement.Value = nil

		if par.peekTokenIs(lexer.COMMA) {
			par.nextToken()
		}

		parameters = append(parameters, statement)
	}

	return parameters
}

// parseCallExpression parses "callee(arguments)" with the callee already
// parsed as the left expression.
func (par *Parser) parseCallExpression(left ExpressionNode) ExpressionNode {
	expression := &CallExpression{
		Token:    par.currentToken,
		Function: left,
	}
	expression.Parameters = par.parseExpressionList(lexer.COMMA, lexer.RPARENTHESIS)

	return expression
}
