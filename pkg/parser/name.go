package parser

import (
	"github.com/cockroachdb/errors"

	"github.com/chazu/tanuki/pkg/ast"
	"github.com/chazu/tanuki/pkg/lexer"
)

// ReadName turns a contiguous run of tokens into a qualified name. The run
// must alternate identifier, dot, identifier, ..., starting and ending on an
// identifier.
func ReadName(tokens []lexer.Token) (ast.Name, error) {
	if len(tokens) == 0 {
		return ast.Name{}, errors.New("expected a name, got no tokens")
	}
	var segments []string
	expectIdentifier := true
	for _, tok := range tokens {
		if expectIdentifier {
			if !tok.IsIdentifier() {
				return ast.Name{}, errors.Newf("expected an identifier, got %q at line %d, col %d", tok.Value, tok.Line, tok.Column)
			}
			segments = append(segments, tok.Value)
			expectIdentifier = false
		} else {
			if tok.Type != lexer.DOT {
				return ast.Name{}, errors.Newf("expected a dot, got %q at line %d, col %d", tok.Value, tok.Line, tok.Column)
			}
			expectIdentifier = true
		}
	}
	if expectIdentifier {
		last := tokens[len(tokens)-1]
		return ast.Name{}, errors.Newf("expected an identifier after %q at line %d, col %d", last.Value, last.Line, last.Column)
	}
	return ast.NewName(segments...), nil
}

// readNameList parses a comma-separated list of qualified names. Empty
// chunks are skipped, so an empty run yields an empty list.
func readNameList(tokens []lexer.Token) ([]ast.Name, error) {
	names := []ast.Name{}
	start := 0
	for i := 0; i <= len(tokens); i++ {
		if i == len(tokens) || tokens[i].Type == lexer.COMMA {
			if i > start {
				name, err := ReadName(tokens[start:i])
				if err != nil {
					return nil, err
				}
				names = append(names, name)
			}
			start = i + 1
		}
	}
	return names, nil
}
