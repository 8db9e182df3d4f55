package lexer

// TokenType represents the type of a token.
type TokenType string

// Token types for the declaration language. Keywords (class, interface,
// extends, implements, public, static, metadata) are context-sensitive and
// arrive as IDENTIFIER tokens; the parser inspects their values.
const (
	IDENTIFIER TokenType = "IDENTIFIER" // Names and keywords (e.g. Runnable, extends, int)
	DOT        TokenType = "DOT"        // . (qualified-name separator)
	COMMA      TokenType = "COMMA"      // , (name-list and argument separator)
	SEMI       TokenType = "SEMI"       // ; (statement terminator)
	LBRACE     TokenType = "LBRACE"     // {
	RBRACE     TokenType = "RBRACE"     // }
	LPAREN     TokenType = "LPAREN"     // (
	RPAREN     TokenType = "RPAREN"     // )
)

// Token represents a single token from the lexer.
type Token struct {
	Type   TokenType `json:"type"`
	Value  string    `json:"value"`
	Line   int       `json:"line"`
	Column int       `json:"col"`
}

// NewToken creates a new token with the given properties.
func NewToken(typ TokenType, value string, line, col int) Token {
	return Token{
		Type:   typ,
		Value:  value,
		Line:   line,
		Column: col,
	}
}

// IsIdentifier returns true if the token is an identifier.
func (t Token) IsIdentifier() bool {
	return t.Type == IDENTIFIER
}

// Is returns true if the token is an identifier with the given value.
// Used by the parser to recognize context-sensitive keywords.
func (t Token) Is(value string) bool {
	return t.Type == IDENTIFIER && t.Value == value
}
