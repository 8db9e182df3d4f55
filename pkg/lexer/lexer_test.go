package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_BasicTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "empty input",
			input:    "",
			expected: []Token{},
		},
		{
			name:  "single dot",
			input: ".",
			expected: []Token{
				{Type: DOT, Value: ".", Line: 1, Column: 0},
			},
		},
		{
			name:  "braces",
			input: "{}",
			expected: []Token{
				{Type: LBRACE, Value: "{", Line: 1, Column: 0},
				{Type: RBRACE, Value: "}", Line: 1, Column: 1},
			},
		},
		{
			name:  "parens comma semi",
			input: "(,);",
			expected: []Token{
				{Type: LPAREN, Value: "(", Line: 1, Column: 0},
				{Type: COMMA, Value: ",", Line: 1, Column: 1},
				{Type: RPAREN, Value: ")", Line: 1, Column: 2},
				{Type: SEMI, Value: ";", Line: 1, Column: 3},
			},
		},
		{
			name:  "identifier",
			input: "Runnable",
			expected: []Token{
				{Type: IDENTIFIER, Value: "Runnable", Line: 1, Column: 0},
			},
		},
		{
			name:  "identifier with digits and underscore",
			input: "arg_2",
			expected: []Token{
				{Type: IDENTIFIER, Value: "arg_2", Line: 1, Column: 0},
			},
		},
		{
			name:  "qualified name",
			input: "a.b.TestClass1",
			expected: []Token{
				{Type: IDENTIFIER, Value: "a", Line: 1, Column: 0},
				{Type: DOT, Value: ".", Line: 1, Column: 1},
				{Type: IDENTIFIER, Value: "b", Line: 1, Column: 2},
				{Type: DOT, Value: ".", Line: 1, Column: 3},
				{Type: IDENTIFIER, Value: "TestClass1", Line: 1, Column: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := New(tt.input).Tokenize()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestTokenize_WhitespaceAndComments(t *testing.T) {
	input := "class A {\n\t// instance state\n\tint x; // trailing\n}\n"
	tokens, err := New(input).Tokenize()
	require.NoError(t, err)

	values := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		values = append(values, tok.Value)
	}
	assert.Equal(t, []string{"class", "A", "{", "int", "x", ";", "}"}, values)

	// Positions survive the skipped comment line.
	assert.Equal(t, 3, tokens[3].Line)
	assert.Equal(t, 1, tokens[3].Column)
}

func TestTokenize_KeywordsAreIdentifiers(t *testing.T) {
	tokens, err := New("public class extends implements metadata").Tokenize()
	require.NoError(t, err)
	require.Len(t, tokens, 5)
	for _, tok := range tokens {
		assert.True(t, tok.IsIdentifier())
	}
	assert.True(t, tokens[1].Is("class"))
	assert.False(t, tokens[1].Is("interface"))
}

func TestTokenize_UnexpectedCharacter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"at sign", "class @", `unexpected character "@" at line 1, col 6`},
		{"digit leading", "class A {\n  1bad;\n}", `unexpected character "1" at line 2, col 2`},
		{"lone slash", "a / b", `unexpected character "/" at line 1, col 2`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.input).Tokenize()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestTokenizeJSON(t *testing.T) {
	out, err := New("a.b").TokenizeJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"type": "IDENTIFIER", "value": "a", "line": 1, "col": 0},
		{"type": "DOT", "value": ".", "line": 1, "col": 1},
		{"type": "IDENTIFIER", "value": "b", "line": 1, "col": 2}
	]`, out)
}

func TestNewFromReader(t *testing.T) {
	l, err := NewFromReader(strings.NewReader("interface X {}"))
	require.NoError(t, err)
	tokens, err := l.Tokenize()
	require.NoError(t, err)
	assert.Len(t, tokens, 4)
}
