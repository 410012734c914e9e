/*
File    : go-lotus/parser/parser_precedence.go
Project : Lotus Interpreter
*/
package parser

import "github.com/multipixels/go-lotus/lexer"

// Precedence is the binding power of an operator during Pratt parsing.
type Precedence int

// The precedence ladder, ascending. A token absent from the precedence
// table parses at LOWEST.
const (
	LOWEST        Precedence = iota // default
	ASSIGNMENT                      // = and the compound assignments
	LOGICAL_OR                      // ||
	LOGICAL_AND                     // &&
	EQUALS                          // == and !=
	LESSGREATER                     // < <= > >=
	SUM                             // a + b
	PRODUCT                         // a * b
	PREFIX                          // -x or !x
	CALL                            // function call, increment/decrement
	INDEX                           // collection indexing
	MEMBER_ACCESS                   // dot operator
)

// precedenceOfTokenType maps operator token types to their precedence.
var precedenceOfTokenType = map[lexer.TokenType]Precedence{
	lexer.ASSIGN:         ASSIGNMENT,
	lexer.PLUS_ASSIGN:    ASSIGNMENT,
	lexer.MINUS_ASSIGN:   ASSIGNMENT,
	lexer.ASTERIK_ASSIGN: ASSIGNMENT,
	lexer.SLASH_ASSIGN:   ASSIGNMENT,
	lexer.PERCENT_ASSIGN: ASSIGNMENT,
	lexer.OR:             LOGICAL_OR,
	lexer.AND:            LOGICAL_AND,
	lexer.EQ:             EQUALS,
	lexer.NEQ:            EQUALS,
	lexer.LEQ:            LESSGREATER,
	lexer.LCHEVRON:       LESSGREATER,
	lexer.GEQ:            LESSGREATER,
	lexer.RCHEVRON:       LESSGREATER,
	lexer.PLUS:           SUM,
	lexer.MINUS:          SUM,
	lexer.ASTERIK:        PRODUCT,
	lexer.SLASH:          PRODUCT,
	lexer.PERCENT:        PRODUCT,
	lexer.LPARENTHESIS:   CALL,
	lexer.INCREMENT:      CALL,
	lexer.DECREMENT:      CALL,
	lexer.LBRACKET:       INDEX,
	lexer.DOT:            MEMBER_ACCESS,
}

// peekPrecedence returns the precedence of the peek token, or LOWEST if it
// is not an operator.
func (par *Parser) peekPrecedence() Precedence {
	if precedence, ok := precedenceOfTokenType[par.peekToken.Type]; ok {
		return precedence
	}
	return LOWEST
}

// currentPrecedence returns the precedence of the current token, or LOWEST
// if it is not an operator.
func (par *Parser) currentPrecedence() Precedence {
	if precedence, ok := precedenceOfTokenType[par.currentToken.Type]; ok {
		return precedence
	}
	return LOWEST
}

// Parse function signatures for the three dispatch tables.
type (
	prefixParseFunction  func() ExpressionNode
	infixParseFunction   func(ExpressionNode) ExpressionNode
	postfixParseFunction func(ExpressionNode) ExpressionNode
)

// registerPrefixFunctions registers a prefix parse function for the given
// token types.
func (par *Parser) registerPrefixFunctions(f prefixParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.prefixParseFunctions[tokenType] = f
	}
}

// registerInfixFunctions registers an infix parse function for the given
// token types.
func (par *Parser) registerInfixFunctions(f infixParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.infixParseFunctions[tokenType] = f
	}
}

// registerPostfixFunctions registers a postfix parse function for the given
// token types.
func (par *Parser) registerPostfixFunctions(f postfixParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.postfixParseFunctions[tokenType] = f
	}
}
