/*
File    : go-lotus/lexer/lexer_utils.go
Project : Lotus Interpreter
*/
package lexer

// isDigit checks if the given byte is an ASCII decimal digit ('0'..'9').
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isLetter checks if the given byte is an ASCII letter (a-z, A-Z).
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// validIdentifierChar checks if the given byte may appear in an identifier.
// Digits are intentionally excluded; Lotus identifiers are letters and
// underscores only.
func validIdentifierChar(c byte) bool {
	return isLetter(c) || c == '_'
}
