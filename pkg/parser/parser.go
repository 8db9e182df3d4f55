// Package parser converts token streams into declaration trees.
//
// The input is a sequence of class/interface declarations optionally
// followed by a trailing metadata block of header-only stubs:
//
//	definition    := visibility? ('class' | 'interface') header body
//	header        := qualifiedName ('extends' nameList)? ('implements' nameList)?
//	body          := '{' (constructor | method)* '}'
//	metadataBlock := 'metadata' '{' (headerOnlyDefinition ';')* '}'
//
// Any malformed input aborts the whole parse with a descriptive error; no
// partial result is ever returned.
package parser

import (
	"github.com/cockroachdb/errors"

	"github.com/chazu/tanuki/pkg/ast"
	"github.com/chazu/tanuki/pkg/lexer"
)

// Parser consumes a token slice produced by the lexer.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// Parse turns a token stream into declarations plus metadata stubs.
func Parse(tokens []lexer.Token) (*ast.Definitions, error) {
	p := &Parser{tokens: tokens}
	return p.parse()
}

func (p *Parser) parse() (*ast.Definitions, error) {
	defs := &ast.Definitions{
		Definitions: []ast.Definition{},
		Metadata: ast.Metadata{
			Classes:    []ast.ClassStub{},
			Interfaces: []ast.InterfaceStub{},
		},
	}
	for !p.atEnd() {
		if p.peek().Is("metadata") {
			p.advance()
			if err := p.parseMetadata(&defs.Metadata); err != nil {
				return nil, err
			}
			if !p.atEnd() {
				return nil, errors.Newf("metadata block must be the last element of the input, got %q at line %d, col %d",
					p.peek().Value, p.peek().Line, p.peek().Column)
			}
			break
		}
		def, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		defs.Definitions = append(defs.Definitions, def)
	}
	return defs, nil
}

func (p *Parser) parseDefinition() (ast.Definition, error) {
	public := false
	if !p.atEnd() && p.peek().Is("public") {
		public = true
		p.advance()
	}
	_, isInterface, err := p.readIntroducer()
	if err != nil {
		return ast.Definition{}, err
	}
	header := p.collectHeader()

	if isInterface {
		name, extends, err := parseInterfaceHeader(header)
		if err != nil {
			return ast.Definition{}, err
		}
		// Interface bodies carry no declarations; the contents are ignored.
		if _, err := p.readBody(name); err != nil {
			return ast.Definition{}, err
		}
		return ast.Definition{Interface: &ast.Interface{
			Name:    name,
			Public:  public,
			Extends: extends,
		}}, nil
	}

	name, extends, implements, err := parseClassHeader(header)
	if err != nil {
		return ast.Definition{}, err
	}
	body, err := p.readBody(name)
	if err != nil {
		return ast.Definition{}, err
	}
	methods, constructors, err := parseClassBody(body, name)
	if err != nil {
		return ast.Definition{}, err
	}
	return ast.Definition{Class: &ast.Class{
		Name:         name,
		Public:       public,
		Extends:      extends,
		Implements:   implements,
		Methods:      methods,
		Constructors: constructors,
	}}, nil
}

// readIntroducer consumes the class/interface keyword.
func (p *Parser) readIntroducer() (isClass, isInterface bool, err error) {
	if p.atEnd() {
		return false, false, errors.New(`expected "class" or "interface", got end of input`)
	}
	tok := p.peek()
	isClass = tok.Is("class")
	isInterface = tok.Is("interface")
	if !isClass && !isInterface {
		return false, false, errors.Newf(`expected "class" or "interface", got %q at line %d, col %d`,
			tok.Value, tok.Line, tok.Column)
	}
	p.advance()
	return isClass, isInterface, nil
}

// collectHeader gathers tokens up to, but not including, the opening brace
// of the declaration body.
func (p *Parser) collectHeader() []lexer.Token {
	start := p.pos
	for !p.atEnd() && p.peek().Type != lexer.LBRACE {
		p.advance()
	}
	return p.tokens[start:p.pos]
}

// readBody consumes a brace-delimited body and returns the tokens inside it.
func (p *Parser) readBody(name ast.Name) ([]lexer.Token, error) {
	if p.atEnd() {
		return nil, errors.Newf("expected a body enclosed in braces for %s, got end of input", name)
	}
	p.advance() // consume '{' (collectHeader stopped right before it)
	start := p.pos
	depth := 1
	for !p.atEnd() {
		switch p.peek().Type {
		case lexer.LBRACE:
			depth++
		case lexer.RBRACE:
			depth--
			if depth == 0 {
				body := p.tokens[start:p.pos]
				p.advance()
				return body, nil
			}
		}
		p.advance()
	}
	return nil, errors.Newf("expected %q to close the body of %s, got end of input", "}", name)
}

// parseMetadata parses the brace-delimited list of header-only stubs.
func (p *Parser) parseMetadata(meta *ast.Metadata) error {
	if p.atEnd() {
		return errors.New(`expected braces after "metadata", got end of input`)
	}
	if p.peek().Type != lexer.LBRACE {
		return errors.Newf(`expected braces after "metadata", got %q at line %d, col %d`,
			p.peek().Value, p.peek().Line, p.peek().Column)
	}
	p.advance()
	for {
		if p.atEnd() {
			return errors.Newf("expected %q to close the metadata block, got end of input", "}")
		}
		if p.peek().Type == lexer.RBRACE {
			p.advance()
			return nil
		}
		isClass, isInterface, err := p.readIntroducer()
		if err != nil {
			return err
		}
		header, err := p.collectStubHeader()
		if err != nil {
			return err
		}
		if isInterface {
			name, extends, err := parseInterfaceHeader(header)
			if err != nil {
				return err
			}
			meta.Interfaces = append(meta.Interfaces, ast.InterfaceStub{Name: name, Extends: extends})
		}
		if isClass {
			name, extends, implements, err := parseClassHeader(header)
			if err != nil {
				return err
			}
			meta.Classes = append(meta.Classes, ast.ClassStub{Name: name, Extends: extends, Implements: implements})
		}
	}
}

// collectStubHeader gathers a stub's header tokens. Stubs are terminated by
// a semicolon or by an empty brace pair; bodies are never parsed.
func (p *Parser) collectStubHeader() ([]lexer.Token, error) {
	start := p.pos
	for !p.atEnd() {
		switch p.peek().Type {
		case lexer.SEMI:
			header := p.tokens[start:p.pos]
			p.advance()
			return header, nil
		case lexer.LBRACE:
			header := p.tokens[start:p.pos]
			if err := p.skipBraces(); err != nil {
				return nil, err
			}
			return header, nil
		case lexer.RBRACE:
			return nil, errors.Newf("expected %q to terminate a metadata declaration, got %q at line %d, col %d",
				";", "}", p.peek().Line, p.peek().Column)
		}
		p.advance()
	}
	return nil, errors.Newf("expected %q to terminate a metadata declaration, got end of input", ";")
}

// skipBraces consumes a balanced brace pair and everything inside it.
func (p *Parser) skipBraces() error {
	p.advance() // consume '{'
	depth := 1
	for !p.atEnd() {
		switch p.peek().Type {
		case lexer.LBRACE:
			depth++
		case lexer.RBRACE:
			depth--
			if depth == 0 {
				p.advance()
				return nil
			}
		}
		p.advance()
	}
	return errors.Newf("expected %q to close a metadata declaration, got end of input", "}")
}

// parseInterfaceHeader reads the interface name and its optional extends
// list. The "extends" keyword hard-terminates the name.
func parseInterfaceHeader(tokens []lexer.Token) (ast.Name, []ast.Name, error) {
	end := len(tokens)
	for i, tok := range tokens {
		if tok.Is("extends") {
			end = i
			break
		}
	}
	name, err := ReadName(tokens[:end])
	if err != nil {
		return ast.Name{}, nil, err
	}
	extends := []ast.Name{}
	if end < len(tokens) {
		extends, err = readNameList(tokens[end+1:])
		if err != nil {
			return ast.Name{}, nil, err
		}
	}
	return name, extends, nil
}

// parseClassHeader reads the class name and its optional extends (single
// name) and implements (name list) clauses, which may appear in either
// order but each at most once.
func parseClassHeader(tokens []lexer.Token) (name ast.Name, extends ast.Name, implements []ast.Name, err error) {
	implements = []ast.Name{}
	end := len(tokens)
	for i, tok := range tokens {
		if tok.Is("extends") || tok.Is("implements") {
			end = i
			break
		}
	}
	name, err = ReadName(tokens[:end])
	if err != nil {
		return
	}
	rest := tokens[end:]
	seenExtends, seenImplements := false, false
	for len(rest) > 0 {
		keyword := rest[0]
		clauseEnd := len(rest)
		for i := 1; i < len(rest); i++ {
			if rest[i].Is("extends") || rest[i].Is("implements") {
				clauseEnd = i
				break
			}
		}
		clause := rest[1:clauseEnd]
		switch {
		case keyword.Is("extends"):
			if seenExtends {
				err = errors.Newf(`duplicate "extends" clause for %s at line %d, col %d`, name, keyword.Line, keyword.Column)
				return
			}
			seenExtends = true
			extends, err = ReadName(clause)
			if err != nil {
				return
			}
		case keyword.Is("implements"):
			if seenImplements {
				err = errors.Newf(`duplicate "implements" clause for %s at line %d, col %d`, name, keyword.Line, keyword.Column)
				return
			}
			seenImplements = true
			implements, err = readNameList(clause)
			if err != nil {
				return
			}
		}
		rest = rest[clauseEnd:]
	}
	return
}

// parseClassBody splits a class body on statement terminators and parses
// each chunk as a constructor or a method. A chunk is a constructor when,
// minus a leading visibility keyword, it is exactly the class's own
// qualified name followed by an argument list.
func parseClassBody(tokens []lexer.Token, className ast.Name) ([]ast.Method, []ast.Constructor, error) {
	methods := []ast.Method{}
	constructors := []ast.Constructor{}
	start := 0
	for i := 0; i <= len(tokens); i++ {
		if i < len(tokens) && tokens[i].Type != lexer.SEMI {
			continue
		}
		chunk := tokens[start:i]
		start = i + 1
		if len(chunk) == 0 {
			continue
		}
		method, constructor, err := parseMember(chunk, className)
		if err != nil {
			return nil, nil, err
		}
		if constructor != nil {
			constructors = append(constructors, *constructor)
		} else {
			methods = append(methods, *method)
		}
	}
	return methods, constructors, nil
}

func parseMember(chunk []lexer.Token, className ast.Name) (*ast.Method, *ast.Constructor, error) {
	head, argTokens, err := splitArguments(chunk)
	if err != nil {
		return nil, nil, err
	}
	arguments, err := parseArguments(argTokens)
	if err != nil {
		return nil, nil, err
	}

	public := false
	for _, tok := range head {
		if tok.Is("public") {
			public = true
		}
	}

	if isConstructor(head, className) {
		return nil, &ast.Constructor{Arguments: arguments, Public: public}, nil
	}

	static := false
	filtered := make([]lexer.Token, 0, len(head))
	for _, tok := range head {
		if tok.Is("public") {
			continue
		}
		if tok.Is("static") {
			static = true
			continue
		}
		filtered = append(filtered, tok)
	}
	if len(filtered) == 0 {
		return nil, nil, errors.Newf("expected a method name and return type before the argument list at line %d", chunk[0].Line)
	}
	nameTok := filtered[len(filtered)-1]
	if !nameTok.IsIdentifier() {
		return nil, nil, errors.Newf("expected a method name, got %q at line %d, col %d", nameTok.Value, nameTok.Line, nameTok.Column)
	}
	returnType, err := ReadName(filtered[:len(filtered)-1])
	if err != nil {
		return nil, nil, err
	}
	return &ast.Method{
		Name:       nameTok.Value,
		ReturnType: returnType,
		Arguments:  arguments,
		Public:     public,
		Static:     static,
	}, nil, nil
}

// splitArguments separates a member chunk into its leading tokens and the
// contents of the trailing parenthesized argument list.
func splitArguments(chunk []lexer.Token) (head, args []lexer.Token, err error) {
	last := chunk[len(chunk)-1]
	if last.Type != lexer.RPAREN {
		return nil, nil, errors.Newf("expected method arguments in parenthesis, got %q at line %d, col %d",
			last.Value, last.Line, last.Column)
	}
	depth := 0
	for i := len(chunk) - 1; i >= 0; i-- {
		switch chunk[i].Type {
		case lexer.RPAREN:
			depth++
		case lexer.LPAREN:
			depth--
			if depth == 0 {
				return chunk[:i], chunk[i+1 : len(chunk)-1], nil
			}
		}
	}
	return nil, nil, errors.Newf("expected %q to open the argument list at line %d", "(", last.Line)
}

// isConstructor reports whether the chunk head, minus a leading visibility
// keyword, is exactly the enclosing class's qualified name.
func isConstructor(head []lexer.Token, className ast.Name) bool {
	if len(head) > 0 && head[0].Is("public") {
		head = head[1:]
	}
	name, err := ReadName(head)
	if err != nil {
		return false
	}
	return name.Equal(className)
}

// parseArguments splits the argument-list tokens on commas; in each chunk
// the final token is the argument's binding name and the preceding tokens
// form its qualified type name.
func parseArguments(tokens []lexer.Token) ([]ast.Argument, error) {
	arguments := []ast.Argument{}
	start := 0
	for i := 0; i <= len(tokens); i++ {
		if i < len(tokens) && tokens[i].Type != lexer.COMMA {
			continue
		}
		chunk := tokens[start:i]
		start = i + 1
		if len(chunk) == 0 {
			continue
		}
		nameTok := chunk[len(chunk)-1]
		if !nameTok.IsIdentifier() {
			return nil, errors.Newf("expected argument name, got %q at line %d, col %d", nameTok.Value, nameTok.Line, nameTok.Column)
		}
		argType, err := ReadName(chunk[:len(chunk)-1])
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, ast.Argument{Name: nameTok.Value, Type: argType})
	}
	return arguments, nil
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) advance() {
	p.pos++
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}
