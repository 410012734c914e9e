/*
File    : go-lotus/parser/parser.go
Project : Lotus Interpreter
*/

/*
Package parser implements a Pratt parser (also known as top-down operator
precedence parser) for the Lotus programming language.

The parser converts a stream of tokens from the lexer into an Abstract
Syntax Tree (AST). It handles:
- Expressions (prefix, infix, postfix, literals, identifiers)
- Statements (typed declarations, control flow, loop controls)
- Functions (declarations and calls)
- Loops (while, do-while, for, iterate)
- Collections, dictionaries, and strings (literals and indexing)
- Operator precedence and associativity

Key Features:
- Pratt parsing algorithm for efficient expression parsing
- Two-token lookahead (current and peek)
- Error collection (doesn't abort on first error)
- String-literal expansion into character collections
*/
package parser

import (
	"fmt"

	"github.com/multipixels/go-lotus/lexer"
)

// Parser represents the parser state. It maintains all the information
// needed to parse Lotus source code into an Abstract Syntax Tree.
type Parser struct {
	lex *lexer.Lexer // Lexer producing the token stream

	currentToken lexer.Token // Current token being processed
	peekToken    lexer.Token // Next token (for lookahead)

	// Function maps for Pratt parsing
	// These maps associate token types with their parsing functions
	prefixParseFunctions  map[lexer.TokenType]prefixParseFunction
	infixParseFunctions   map[lexer.TokenType]infixParseFunction
	postfixParseFunctions map[lexer.TokenType]postfixParseFunction

	// Collected parsing errors; parsing continues on a best-effort basis
	errors []string
}

// NewParser creates and initializes a new Parser instance reading from the
// given lexer. This is the main entry point for creating a parser.
func NewParser(lex *lexer.Lexer) *Parser {
	par := &Parser{
		lex:    lex,
		errors: make([]string, 0),
	}

	par.prefixParseFunctions = make(map[lexer.TokenType]prefixParseFunction)
	par.infixParseFunctions = make(map[lexer.TokenType]infixParseFunction)
	par.postfixParseFunctions = make(map[lexer.TokenType]postfixParseFunction)

	par.registerPrefixFunctions(par.parseIdentifier, lexer.IDENTIFIER)
	par.registerPrefixFunctions(par.parseIntegerLiteral, lexer.INTEGER_LITERAL)
	par.registerPrefixFunctions(par.parseFloatLiteral, lexer.FLOAT_LITERAL)
	par.registerPrefixFunctions(par.parseBooleanLiteral, lexer.TRUE_LITERAL, lexer.FALSE_LITERAL)
	par.registerPrefixFunctions(par.parseCharacterLiteral, lexer.CHARACTER_LITERAL)
	par.registerPrefixFunctions(par.parseStringLiteral, lexer.STRING_LITERAL)
	par.registerPrefixFunctions(par.parseCollectionLiteral, lexer.LBRACKET)
	par.registerPrefixFunctions(par.parseDictionaryLiteral, lexer.LBRACE)
	par.registerPrefixFunctions(par.parsePrefixExpression, lexer.BANG, lexer.MINUS,
		lexer.INCREMENT, lexer.DECREMENT)
	par.registerPrefixFunctions(par.parseGroupedExpression, lexer.LPARENTHESIS)

	par.registerPostfixFunctions(par.parsePostfixExpression, lexer.INCREMENT, lexer.DECREMENT)

	par.registerInfixFunctions(par.parseInfixExpression,
		lexer.PLUS, lexer.MINUS, lexer.ASTERIK, lexer.SLASH, lexer.PERCENT,
		lexer.RCHEVRON, lexer.GEQ, lexer.LCHEVRON, lexer.LEQ,
		lexer.EQ, lexer.NEQ, lexer.AND, lexer.OR,
		lexer.ASSIGN, lexer.PLUS_ASSIGN, lexer.MINUS_ASSIGN,
		lexer.ASTERIK_ASSIGN, lexer.SLASH_ASSIGN, lexer.PERCENT_ASSIGN,
		lexer.DOT)
	par.registerInfixFunctions(par.parseCallExpression, lexer.LPARENTHESIS)
	par.registerInfixFunctions(par.parseIndexExpression, lexer.LBRACKET)

	// Populate current and peek tokens
	par.nextToken()
	par.nextToken()

	return par
}

// ParseProgram parses the whole token stream into a Program node. On parse
// errors the returned program may be incomplete; callers decide whether to
// proceed by consulting Errors.
func (par *Parser) ParseProgram() *Program {
	program := &Program{
		Statements: make([]StatementNode, 0),
	}

	for par.currentToken.Type != lexer.END_OF_FILE {
		statement := par.parseStatement()
		if statement != nil {
			program.Statements = append(program.Statements, statement)
		}
		par.nextToken()
	}

	return program
}

// parseStatement dispatches on the current token to the matching statement
// parser. Most statements require a trailing semicolon; block-bodied
// statements (if, loops, function declarations) do not.
func (par *Parser) parseStatement() StatementNode {
	switch par.currentToken.Type {
	case lexer.INTEGER_TYPE, lexer.FLOAT_TYPE, lexer.BOOLEAN_TYPE,
		lexer.CHARACTER_TYPE, lexer.STRING_TYPE:
		if par.peekTokenIs(lexer.LPARENTHESIS) {
			statement := par.parseFunctionDeclaration()
			if statement == nil {
				return nil
			}
			return statement
		}
		statement := par.parseVariableDeclaration()
		if statement == nil || !par.expectPeek(lexer.SEMICOLON) {
			return nil
		}
		return statement
	case lexer.COLLECTION_TYPE:
		statement := par.parseCollectionDeclaration()
		if statement == nil || !par.expectPeek(lexer.SEMICOLON) {
			return nil
		}
		return statement
	case lexer.DICTIONARY_TYPE:
		statement := par.parseDictionaryDeclaration()
		if statement == nil || !par.expectPeek(lexer.SEMICOLON) {
			return nil
		}
		return statement
	case lexer.RETURN:
		statement := par.parseReturnStatement()
		if statement == nil {
			return nil
		}
		return statement
	case lexer.IF:
		statement := par.parseIfStatement()
		if statement == nil {
			return nil
		}
		return statement
	case lexer.WHILE:
		statement := par.parseWhileStatement()
		if statement == nil {
			return nil
		}
		return statement
	case lexer.DO:
		statement := par.parseDoWhileStatement()
		if statement == nil {
			return nil
		}
		return statement
	case lexer.FOR:
		statement := par.parseForStatement()
		if statement == nil {
			return nil
		}
		return statement
	case lexer.ITERATE:
		statement := par.parseIterateStatement()
		if statement == nil {
			return nil
		}
		return statement
	case lexer.BREAK:
		statement := par.parseBreakStatement()
		if statement == nil {
			return nil
		}
		return statement
	case lexer.CONTINUE:
		statement := par.parseContinueStatement()
		if statement == nil {
			return nil
		}
		return statement
	default:
		statement := par.parseExpressionStatement()
		if statement == nil || !par.expectPeek(lexer.SEMICOLON) {
			return nil
		}
		return statement
	}
}

// parseStatementNoSemicolon parses a statement without consuming a trailing
// terminator. Used for the update slot of a for loop.
func (par *Parser) parseStatementNoSemicolon() StatementNode {
	switch par.currentToken.Type {
	case lexer.INTEGER_TYPE, lexer.FLOAT_TYPE, lexer.BOOLEAN_TYPE,
		lexer.CHARACTER_TYPE, lexer.STRING_TYPE:
		if par.peekTokenIs(lexer.LPARENTHESIS) {
			statement := par.parseFunctionDeclaration()
			if statement == nil {
				return nil
			}
			return statement
		}
		statement := par.parseVariableDeclaration()
		if statement == nil {
			return nil
		}
		return statement
	default:
		statement := par.parseExpressionStatement()
		if statement == nil {
			return nil
		}
		return statement
	}
}

// nextToken shifts the two-token lookahead window by one token.
func (par *Parser) nextToken() {
	par.currentToken = par.peekToken
	par.peekToken = par.lex.NextToken()
}

// currentTokenIs reports whether the current token has the given type.
func (par *Parser) currentTokenIs(tokenType lexer.TokenType) bool {
	return par.currentToken.Type == tokenType
}

// peekTokenIs reports whether the peek token has the given type.
func (par *Parser) peekTokenIs(tokenType lexer.TokenType) bool {
	return par.peekToken.Type == tokenType
}

// expectPeek advances if the peek token has the expected type; otherwise it
// records an error and leaves the window unchanged.
func (par *Parser) expectPeek(tokenType lexer.TokenType) bool {
	if par.peekTokenIs(tokenType) {
		par.nextToken()
		return true
	}
	par.expectedPeekError(tokenType)
	return false
}

// expectCurrent checks the current token without advancing.
func (par *Parser) expectCurrent(tokenType lexer.TokenType) bool {
	if par.currentTokenIs(tokenType) {
		return true
	}
	par.expectedPeekError(tokenType)
	return false
}

// expectedPeekError records an "Expected X. Got Y instead." error for the
// peek token.
func (par *Parser) expectedPeekError(expected lexer.TokenType) {
	par.addError(fmt.Sprintf("Expected %s. Got %s instead.", expected, par.peekToken.Type))
}

// noPrefixParseFunction records an error for a token that cannot begin an
// expression.
func (par *Parser) noPrefixParseFunction(tokenType lexer.TokenType) {
	par.addError(fmt.Sprintf("No prefix function defined for %s.", tokenType))
}

func (par *Parser) addError(msg string) {
	par.errors = append(par.errors, msg)
}

// Errors returns the accumulated parse errors.
func (par *Parser) Errors() []string {
	return par.errors
}

// HasErrors reports whether any parse error was recorded.
func (par *Parser) HasErrors() bool {
	return len(par.errors) > 0
}
