/*
File    : go-lotus/lexer/lexer_test.go
Project : Lotus Interpreter
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// represents a test case for ConsumeTokens
// Input: source code
// ExpectedTokens: list of expected tokens
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

// TestLexer_ConsumeTokens tests operators, delimiters, and general token
// stream production
func TestLexer_ConsumeTokens(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: `integer x = 5;`,
			ExpectedTokens: []Token{
				NewToken(INTEGER_TYPE, "integer"),
				NewToken(IDENTIFIER, "x"),
				NewToken(ASSIGN, "="),
				NewToken(INTEGER_LITERAL, "5"),
				NewToken(SEMICOLON, ";"),
			},
		},
		{
			Input: ` { } + [ ] abc __under_score `,
			ExpectedTokens: []Token{
				NewToken(LBRACE, "{"),
				NewToken(RBRACE, "}"),
				NewToken(PLUS, "+"),
				NewToken(LBRACKET, "["),
				NewToken(RBRACKET, "]"),
				NewToken(IDENTIFIER, "abc"),
				NewToken(IDENTIFIER, "__under_score"),
			},
		},
		{
			Input: `= == ! != < <= > >= && || & |`,
			ExpectedTokens: []Token{
				NewToken(ASSIGN, "="),
				NewToken(EQ, "=="),
				NewToken(BANG, "!"),
				NewToken(NEQ, "!="),
				NewToken(LCHEVRON, "<"),
				NewToken(LEQ, "<="),
				NewToken(RCHEVRON, ">"),
				NewToken(GEQ, ">="),
				NewToken(AND, "&&"),
				NewToken(OR, "||"),
				NewToken(AMPERSAND, "&"),
				NewToken(PIPE, "|"),
			},
		},
		{
			Input: `+ += ++x - -= * *= / /= % %=`,
			ExpectedTokens: []Token{
				NewToken(PLUS, "+"),
				NewToken(PLUS_ASSIGN, "+="),
				NewToken(INCREMENT, "++"),
				NewToken(IDENTIFIER, "x"),
				NewToken(MINUS, "-"),
				NewToken(MINUS_ASSIGN, "-="),
				NewToken(ASTERIK, "*"),
				NewToken(ASTERIK_ASSIGN, "*="),
				NewToken(SLASH, "/"),
				NewToken(SLASH_ASSIGN, "/="),
				NewToken(PERCENT, "%"),
				NewToken(PERCENT_ASSIGN, "%="),
			},
		},
		{
			Input: `, : ; . ( ) < >`,
			ExpectedTokens: []Token{
				NewToken(COMMA, ","),
				NewToken(COLON, ":"),
				NewToken(SEMICOLON, ";"),
				NewToken(DOT, "."),
				NewToken(LPARENTHESIS, "("),
				NewToken(RPARENTHESIS, ")"),
				NewToken(LCHEVRON, "<"),
				NewToken(RCHEVRON, ">"),
			},
		},
		{
			// Digits do not continue identifiers in Lotus
			Input: `abc123`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER, "abc"),
				NewToken(INTEGER_LITERAL, "123"),
			},
		},
		{
			Input: `@`,
			ExpectedTokens: []Token{
				NewToken(ILLEGAL, "ILLEGAL"),
			},
		},
	}

	for _, tt := range tests {
		lex := NewLexer(tt.Input)
		tokens := lex.ConsumeTokens()
		assert.Equal(t, tt.ExpectedTokens, tokens, "input: %q", tt.Input)
	}
}

// TestLexer_Keywords verifies every keyword maps to its dedicated token type
func TestLexer_Keywords(t *testing.T) {
	input := `integer boolean float character collection dictionary string ` +
		`if else do while for iterate return true false break continue`

	expected := []TokenType{
		INTEGER_TYPE, BOOLEAN_TYPE, FLOAT_TYPE, CHARACTER_TYPE, COLLECTION_TYPE,
		DICTIONARY_TYPE, STRING_TYPE, IF, ELSE, DO, WHILE, FOR, ITERATE, RETURN,
		TRUE_LITERAL, FALSE_LITERAL, BREAK, CONTINUE,
	}

	lex := NewLexer(input)
	for _, expectedType := range expected {
		token := lex.NextToken()
		assert.Equal(t, expectedType, token.Type)
	}
	assert.Equal(t, END_OF_FILE, lex.NextToken().Type)
}

// TestLexer_Numbers verifies integer, float, and illegal numeric
// classification
func TestLexer_Numbers(t *testing.T) {
	tests := []struct {
		Input           string
		ExpectedType    TokenType
		ExpectedLiteral string
	}{
		{"5", INTEGER_LITERAL, "5"},
		{"117", INTEGER_LITERAL, "117"},
		{"5f", FLOAT_LITERAL, "5"},
		{"4.5f", FLOAT_LITERAL, "4.5"},
		{"0.125f", FLOAT_LITERAL, "0.125"},
		// A dot with no 'f' suffix is not a valid literal
		{"4.5", ILLEGAL_NUMERIC, "4.5"},
		{"1.2.3", ILLEGAL_NUMERIC, "1.2.3"},
		{"5.f", ILLEGAL_NUMERIC, "5.f"},
		{"5f5", ILLEGAL_NUMERIC, "5f5"},
		{"5ff", ILLEGAL_NUMERIC, "5ff"},
	}

	for _, tt := range tests {
		lex := NewLexer(tt.Input)
		token := lex.NextToken()
		assert.Equal(t, tt.ExpectedType, token.Type, "input: %q", tt.Input)
		assert.Equal(t, tt.ExpectedLiteral, token.Literal, "input: %q", tt.Input)
	}
}

// TestLexer_StringsAndCharacters verifies quoted literal scanning,
// including unterminated literals which keep their accumulated text
func TestLexer_StringsAndCharacters(t *testing.T) {
	tests := []struct {
		Input           string
		ExpectedType    TokenType
		ExpectedLiteral string
	}{
		{`"hello"`, STRING_LITERAL, "hello"},
		{`""`, STRING_LITERAL, ""},
		{`"spaces and 123"`, STRING_LITERAL, "spaces and 123"},
		{`"unterminated`, STRING_LITERAL, "unterminated"},
		{`'a'`, CHARACTER_LITERAL, "a"},
		{`''`, CHARACTER_LITERAL, ""},
		// Too long; rejected later by the parser
		{`'ab'`, CHARACTER_LITERAL, "ab"},
	}

	for _, tt := range tests {
		lex := NewLexer(tt.Input)
		token := lex.NextToken()
		assert.Equal(t, tt.ExpectedType, token.Type, "input: %q", tt.Input)
		assert.Equal(t, tt.ExpectedLiteral, token.Literal, "input: %q", tt.Input)
	}
}

// TestLexer_Comments verifies both comment forms, and that '--' is still
// lexed as the decrement operator in operand positions
func TestLexer_Comments(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: "-- a full line comment\n5;",
			ExpectedTokens: []Token{
				NewToken(INTEGER_LITERAL, "5"),
				NewToken(SEMICOLON, ";"),
			},
		},
		{
			Input: "5; -* a multi-line\ncomment *- 6;",
			ExpectedTokens: []Token{
				NewToken(INTEGER_LITERAL, "5"),
				NewToken(SEMICOLON, ";"),
				NewToken(INTEGER_LITERAL, "6"),
				NewToken(SEMICOLON, ";"),
			},
		},
		{
			Input: "a--;",
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER, "a"),
				NewToken(DECREMENT, "--"),
				NewToken(SEMICOLON, ";"),
			},
		},
		{
			Input: "--a;",
			ExpectedTokens: []Token{
				NewToken(DECREMENT, "--"),
				NewToken(IDENTIFIER, "a"),
				NewToken(SEMICOLON, ";"),
			},
		},
		{
			Input: "integer x = 5; -- trailing note",
			ExpectedTokens: []Token{
				NewToken(INTEGER_TYPE, "integer"),
				NewToken(IDENTIFIER, "x"),
				NewToken(ASSIGN, "="),
				NewToken(INTEGER_LITERAL, "5"),
				NewToken(SEMICOLON, ";"),
			},
		},
	}

	for _, tt := range tests {
		lex := NewLexer(tt.Input)
		tokens := lex.ConsumeTokens()
		assert.Equal(t, tt.ExpectedTokens, tokens, "input: %q", tt.Input)
	}
}

// TestLexer_TokenKindCompleteness checks that every token kind in the
// closed set is producible as the first token of some input
func TestLexer_TokenKindCompleteness(t *testing.T) {
	tests := map[TokenType]string{
		ILLEGAL:           "@",
		ILLEGAL_NUMERIC:   "1.2.3",
		END_OF_FILE:       "",
		ASSIGN:            "=",
		PLUS:              "+",
		PLUS_ASSIGN:       "+=",
		INCREMENT:         "++",
		MINUS:             "-",
		MINUS_ASSIGN:      "-=",
		DECREMENT:         "--a",
		ASTERIK:           "*",
		ASTERIK_ASSIGN:    "*=",
		SLASH:             "/",
		SLASH_ASSIGN:      "/=",
		PERCENT:           "%",
		PERCENT_ASSIGN:    "%=",
		BANG:              "!",
		AMPERSAND:         "&",
		PIPE:              "|",
		AND:               "&&",
		OR:                "||",
		EQ:                "==",
		NEQ:               "!=",
		LEQ:               "<=",
		GEQ:               ">=",
		COMMA:             ",",
		COLON:             ":",
		SEMICOLON:         ";",
		DOT:               ".",
		LPARENTHESIS:      "(",
		RPARENTHESIS:      ")",
		LBRACE:            "{",
		RBRACE:            "}",
		LBRACKET:          "[",
		RBRACKET:          "]",
		LCHEVRON:          "<",
		RCHEVRON:          ">",
		INTEGER_TYPE:      "integer",
		BOOLEAN_TYPE:      "boolean",
		FLOAT_TYPE:        "float",
		CHARACTER_TYPE:    "character",
		COLLECTION_TYPE:   "collection",
		DICTIONARY_TYPE:   "dictionary",
		STRING_TYPE:       "string",
		IF:                "if",
		ELSE:              "else",
		DO:                "do",
		WHILE:             "while",
		FOR:               "for",
		ITERATE:           "iterate",
		RETURN:            "return",
		TRUE_LITERAL:      "true",
		FALSE_LITERAL:     "false",
		INTEGER_LITERAL:   "5",
		FLOAT_LITERAL:     "5f",
		CHARACTER_LITERAL: "'a'",
		STRING_LITERAL:    `"s"`,
		IDENTIFIER:        "name",
		BREAK:             "break",
		CONTINUE:          "continue",
	}

	for expectedType, input := range tests {
		lex := NewLexer(input)
		token := lex.NextToken()
		assert.Equal(t, expectedType, token.Type, "input: %q", input)
	}
}
