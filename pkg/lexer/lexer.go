// Package lexer provides tokenization for Java declaration descriptions.
//
// The declaration language is whitespace-insensitive; the lexer skips
// spaces, tabs, newlines and // line comments while tracking line and
// column positions for diagnostics.
//
// Token Types:
//
//	IDENTIFIER - Names and keywords (e.g. Runnable, extends, int)
//	DOT        - Qualified-name separator
//	COMMA      - Name-list and argument separator
//	SEMI       - Statement terminator
//	LBRACE     - {
//	RBRACE     - }
//	LPAREN     - (
//	RPAREN     - )
//
// Output Format (JSON array):
//
//	[{"type": "IDENTIFIER", "value": "Runnable", "line": 1, "col": 0}, ...]
package lexer

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
)

// Lexer tokenizes declaration source text.
type Lexer struct {
	input  string // The source text being tokenized
	pos    int    // Current position in input
	line   int    // Current line number (1-indexed)
	col    int    // Current column number (0-indexed)
	tokens []Token
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{
		input:  input,
		pos:    0,
		line:   1,
		col:    0,
		tokens: make([]Token, 0),
	}
}

// NewFromReader creates a new Lexer from an io.Reader.
func NewFromReader(r io.Reader) (*Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input")
	}
	return New(string(data)), nil
}

// Tokenize processes the entire input and returns all tokens.
func (l *Lexer) Tokenize() ([]Token, error) {
	for !l.isAtEnd() {
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}
	return l.tokens, nil
}

// TokenizeJSON processes the input and returns tokens as a JSON array.
func (l *Lexer) TokenizeJSON() (string, error) {
	tokens, err := l.Tokenize()
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(tokens)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal tokens")
	}
	return string(data), nil
}

func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekNext() byte {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

func (l *Lexer) advance() byte {
	ch := l.input[l.pos]
	l.pos++
	l.col++
	return ch
}

func (l *Lexer) addTokenAt(typ TokenType, value string, line, col int) {
	l.tokens = append(l.tokens, NewToken(typ, value, line, col))
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// scanToken scans a single token from the current position.
func (l *Lexer) scanToken() error {
	char := l.peek()

	switch char {
	case ' ', '\t', '\r':
		l.advance()
		return nil

	case '\n':
		l.advance()
		l.line++
		l.col = 0
		return nil

	case '/':
		if l.peekNext() == '/' {
			for !l.isAtEnd() && l.peek() != '\n' {
				l.advance()
			}
			return nil
		}
		return errors.Newf("unexpected character %q at line %d, col %d", string(char), l.line, l.col)

	case '.':
		startCol := l.col
		l.advance()
		l.addTokenAt(DOT, ".", l.line, startCol)
		return nil

	case ',':
		startCol := l.col
		l.advance()
		l.addTokenAt(COMMA, ",", l.line, startCol)
		return nil

	case ';':
		startCol := l.col
		l.advance()
		l.addTokenAt(SEMI, ";", l.line, startCol)
		return nil

	case '{':
		startCol := l.col
		l.advance()
		l.addTokenAt(LBRACE, "{", l.line, startCol)
		return nil

	case '}':
		startCol := l.col
		l.advance()
		l.addTokenAt(RBRACE, "}", l.line, startCol)
		return nil

	case '(':
		startCol := l.col
		l.advance()
		l.addTokenAt(LPAREN, "(", l.line, startCol)
		return nil

	case ')':
		startCol := l.col
		l.advance()
		l.addTokenAt(RPAREN, ")", l.line, startCol)
		return nil

	default:
		if isAlpha(char) {
			return l.scanIdentifier()
		}
		return errors.Newf("unexpected character %q at line %d, col %d", string(char), l.line, l.col)
	}
}

// scanIdentifier scans an identifier starting at the current position.
func (l *Lexer) scanIdentifier() error {
	startCol := l.col
	start := l.pos
	for !l.isAtEnd() && isAlphaNumeric(l.peek()) {
		l.advance()
	}
	l.addTokenAt(IDENTIFIER, l.input[start:l.pos], l.line, startCol)
	return nil
}
